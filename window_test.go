package turtle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSetup(t *testing.T) {
	var placed [4]int
	host := HostBindings{
		Sleep:      func(time.Duration) {},
		ScreenSize: func() (int, int) { return 1280, 1024 },
		Geometry:   func(w, h, x, y int) { placed = [4]int{w, h, x, y} },
	}
	w := Open(NewRecordingSurface(200, 200), host, DefaultOptions())
	t.Cleanup(w.Close)
	assert.Equal(t, [4]int{800, 600, -20, -50}, placed)

	require.NoError(t, w.Setup(0.5, 0.75))
	width, height, x, y := w.Geometry()
	assert.Equal(t, [4]int{640, 768, 320, 128}, [4]int{width, height, x, y})
	assert.Equal(t, placed, [4]int{width, height, x, y})

	require.NoError(t, w.Setup(400, 300))
	width, height, _, _ = w.Geometry()
	assert.Equal(t, 400, width)
	assert.Equal(t, 300, height)
	assert.Equal(t, 400, w.Screen().WindowWidth())

	assert.True(t, errors.Is(w.Setup(0, 1), ErrInvalidArgument))
}

func TestWindowClose(t *testing.T) {
	quits := 0
	w := Open(NewRecordingSurface(100, 100), HostBindings{
		Sleep: func(time.Duration) {},
		Quit:  func() { quits++ },
	}, Options{})
	assert.True(t, w.Running())
	assert.Equal(t, "arrow", w.opts.Shape)

	tu, err := w.NewTurtle()
	require.NoError(t, err)
	w.Bye()
	w.Close()
	assert.False(t, w.Running())
	assert.Equal(t, 1, quits)
	assert.ErrorIs(t, tu.Forward(10), ErrTerminated)
}

func TestWindowSavePNGNeedsRaster(t *testing.T) {
	w, _ := newTestWindow(t)
	assert.ErrorIs(t, w.SavePNG(t.TempDir()+"/x.png"), ErrInvalidArgument)
}

func TestWindowSecondScreen(t *testing.T) {
	w, _ := newTestWindow(t)
	other := NewRecordingSurface(50, 50)
	s := w.NewScreen(other)
	assert.NotSame(t, w.Screen(), s)

	tu, err := NewTurtle(s, "circle", ModeLogo)
	require.NoError(t, err)
	tu.SetSpeed(0)
	require.NoError(t, tu.Forward(10))
	assert.Len(t, other.ItemsOf(ItemLine), 1)
	assert.InDelta(t, 0, tu.Heading(), 1e-9)
	assert.True(t, tu.Pos().Approx(V(0, 10), 1e-9))
}

func TestWindowWorldCoordinates(t *testing.T) {
	w, surface := newTestWindow(t)
	require.NoError(t, w.SetWorldCoordinates(-2, -2, 2, 2))
	assert.Equal(t, 100.0, w.Screen().XScale())
	assert.Equal(t, 75.0, w.Screen().YScale())
	assert.Equal(t, Rect{Min: V(-200, -150), Max: V(200, 150)}, surface.ScrollRegion())
}

func TestDefaultWindow(t *testing.T) {
	w, surface := newTestWindow(t)
	SetDefault(w)
	t.Cleanup(func() { SetDefault(nil) })

	tu := DefaultTurtle()
	assert.Same(t, tu, DefaultTurtle())
	SetSpeed(0)
	require.NoError(t, Forward(20))
	require.NoError(t, Left(90))
	require.NoError(t, Forward(20))
	assert.True(t, Pos().Approx(V(20, 20), 1e-9))
	assert.InDelta(t, 90, Heading(), 1e-9)
	assert.Len(t, surface.ItemsOf(ItemLine), 1)

	Bye()
	assert.False(t, w.Running())
	defaultMu.Lock()
	assert.Nil(t, defaultWindow)
	assert.Nil(t, defaultTurtle)
	defaultMu.Unlock()
}

func TestWindowCloseEndsMainloop(t *testing.T) {
	surface := NewRecordingSurface(400, 300)
	loop := NewLoop()
	host := loop.Bindings()
	host.Sleep = func(time.Duration) {}
	w := Open(surface, host, DefaultOptions())
	tu, err := w.NewTurtle()
	require.NoError(t, err)
	tu.SetSpeed(0)

	loop.After(0, func() {
		assert.NoError(t, tu.Forward(10))
		w.Close()
		assert.ErrorIs(t, tu.Forward(10), ErrTerminated)
	})
	assert.NoError(t, w.Mainloop())
	assert.False(t, w.Running())
}
