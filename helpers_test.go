package turtle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func noSleep() HostBindings {
	return HostBindings{Sleep: func(time.Duration) {}}
}

func newTestWindow(t *testing.T) (*Window, *RecordingSurface) {
	t.Helper()
	surface := NewRecordingSurface(400, 300)
	w := Open(surface, noSleep(), DefaultOptions())
	t.Cleanup(w.Close)
	return w, surface
}

// newTestTurtle returns a turtle that jumps instead of animating.
func newTestTurtle(t *testing.T) (*Turtle, *RecordingSurface) {
	t.Helper()
	w, surface := newTestWindow(t)
	tu, err := w.NewTurtle()
	require.NoError(t, err)
	tu.SetSpeed(0)
	return tu, surface
}

// angleDiff returns a-b folded into (-full/2, full/2].
func angleDiff(a, b, full float64) float64 {
	d := math.Mod(a-b, full)
	if d > full/2 {
		d -= full
	}
	if d <= -full/2 {
		d += full
	}
	return d
}
