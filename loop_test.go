package turtle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopTimerOrder(t *testing.T) {
	l := NewLoop()
	now := time.Unix(100, 0)
	l.now = func() time.Time { return now }

	var got []string
	l.After(20*time.Millisecond, func() { got = append(got, "late") })
	l.After(10*time.Millisecond, func() { got = append(got, "first") })
	l.After(10*time.Millisecond, func() { got = append(got, "second") })
	l.After(0, func() { got = append(got, "now") })

	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, []string{"now"}, got)

	now = now.Add(15 * time.Millisecond)
	assert.Equal(t, 2, l.RunPending())
	now = now.Add(time.Second)
	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, []string{"now", "first", "second", "late"}, got)
	assert.True(t, l.idle())
}

func TestLoopRunReturnsWhenIdle(t *testing.T) {
	l := NewLoop()
	ran := false
	l.After(time.Millisecond, func() { ran = true })
	require.NoError(t, l.Run(context.Background()))
	assert.True(t, ran)
}

func TestLoopStop(t *testing.T) {
	l := NewLoop()
	l.BindKey("q", l.Stop)
	go l.KeyRelease("q")
	require.NoError(t, l.Run(context.Background()))

	// a pending stop is kept for the next run
	l.Stop()
	l.Stop()
	require.NoError(t, l.Run(context.Background()))
}

func TestLoopContextCancel(t *testing.T) {
	l := NewLoop()
	l.BindClick(1, func(float64, float64) {})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := l.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoopUnbind(t *testing.T) {
	l := NewLoop()
	clicks := 0
	l.BindClick(1, func(float64, float64) { clicks++ })
	l.Click(1, 0, 0)
	l.RunPending()
	l.BindClick(1, nil)
	l.Click(1, 0, 0)
	l.RunPending()
	assert.Equal(t, 1, clicks)
	assert.True(t, l.idle())
}

func TestLoopBindingsDriveWindow(t *testing.T) {
	l := NewLoop()
	host := l.Bindings()
	host.Sleep = func(time.Duration) {}
	w := Open(NewRecordingSurface(100, 100), host, DefaultOptions())

	done := make(chan error, 1)
	go func() { done <- w.ExitOnClick() }()
	// give the goroutine time to bind the click
	require.Eventually(t, func() bool {
		l.Click(1, 0, 0)
		select {
		case err := <-done:
			assert.NoError(t, err)
			return true
		case <-time.After(5 * time.Millisecond):
			return false
		}
	}, time.Second, 10*time.Millisecond)
	assert.False(t, w.Running())
}

func TestLoopPost(t *testing.T) {
	l := NewLoop()
	ran := 0
	done := make(chan struct{})
	go func() {
		l.Post(func() { ran++ })
		close(done)
	}()
	<-done
	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, 1, ran)
}
