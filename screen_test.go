package turtle

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenDefaults(t *testing.T) {
	w, _ := newTestWindow(t)
	s := w.Screen()
	assert.Equal(t, 1, s.Tracer())
	assert.Equal(t, StartDelay, s.Delay())
	assert.Equal(t, 1.0, s.ColorMode())
	assert.Equal(t, "white", s.BgColor())
	assert.Equal(t, "nopic", s.BgPic())
	assert.Equal(t, 1.0, s.XScale())
	w2, h2 := s.ScreenSize()
	assert.Equal(t, 400, w2)
	assert.Equal(t, 300, h2)
	assert.Same(t, s, w.NewScreen(s.Surface()))
}

func TestScreenTracerOff(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.SetTracer(0))
	assert.Equal(t, StandardDelay, tu.Delay())

	before := surface.Updates()
	for i := 0; i < 5; i++ {
		require.NoError(t, tu.Forward(10))
		require.NoError(t, tu.Left(72))
	}
	assert.Equal(t, before, surface.Updates())
	assert.Empty(t, surface.ItemsOf(ItemLine))

	require.NoError(t, tu.Update())
	assert.Equal(t, before+1, surface.Updates())
	assert.Len(t, surface.ItemsOf(ItemLine), 1)
}

func TestScreenTracerEveryNth(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.SetTracer(2))
	before := surface.Updates()
	for i := 0; i < 4; i++ {
		require.NoError(t, tu.Forward(10))
	}
	assert.Equal(t, 2, surface.Updates()-before)
}

func TestScreenTracerNoAnimation(t *testing.T) {
	tu, surface := newTestTurtle(t)
	tu.SetSpeed(1)
	require.NoError(t, tu.SetTracer(3))
	before := surface.Updates()
	require.NoError(t, tu.Forward(100))
	// tracing other than 1 jumps
	assert.LessOrEqual(t, surface.Updates()-before, 1)
	assert.Equal(t, V(100, 0), tu.Pos())
}

func TestScreenDelaySleeps(t *testing.T) {
	surface := NewRecordingSurface(100, 100)
	var slept []time.Duration
	w := Open(surface, HostBindings{Sleep: func(d time.Duration) { slept = append(slept, d) }}, DefaultOptions())
	t.Cleanup(w.Close)
	s := w.Screen()
	require.NoError(t, s.SetDelay(25))
	slept = nil
	require.NoError(t, s.Update())
	assert.Equal(t, []time.Duration{25 * time.Millisecond}, slept)

	assert.True(t, errors.Is(s.SetDelay(-1), ErrInvalidArgument))
	assert.True(t, errors.Is(s.SetTracer(-1), ErrInvalidArgument))
}

func TestScreenWorldCoords(t *testing.T) {
	tu, surface := newTestTurtle(t)
	s := tu.Screen()
	require.NoError(t, s.SetWorldCoords(0, 0, 100, 100))
	assert.Equal(t, 4.0, s.XScale())
	assert.Equal(t, 3.0, s.YScale())
	assert.Equal(t, Rect{Min: V(0, -300), Max: V(400, 0)}, surface.ScrollRegion())

	require.NoError(t, tu.Goto(10, 10))
	lines := surface.ItemsOf(ItemLine)
	require.Len(t, lines, 1)
	assert.Equal(t, []Vec2{{0, 0}, {40, -30}}, lines[0].Points)
	// world origin sits in the lower left pixel corner
	assert.Equal(t, V(0, 300), surface.PixelPoint(V(0, 0)))

	err := s.SetWorldCoords(1, 0, 1, 10)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 4.0, s.XScale())

	require.NoError(t, s.SetXScale(2))
	assert.Equal(t, 2.0, s.XScale())
	assert.Error(t, s.SetYScale(0))
}

func TestScreenOnClickUsesWorldCoords(t *testing.T) {
	loop := NewLoop()
	host := loop.Bindings()
	host.Sleep = func(time.Duration) {}
	w := Open(NewRecordingSurface(400, 300), host, DefaultOptions())
	t.Cleanup(w.Close)
	s := w.Screen()
	require.NoError(t, s.SetWorldCoords(-50, -50, 50, 50))

	var got Vec2
	s.OnClick(1, func(x, y float64) { got = V(x, y) })
	loop.Click(1, 40, -30)
	loop.Click(2, 1, 1)
	assert.Equal(t, 2, loop.RunPending())
	assert.Equal(t, V(10, 10), got)

	keys := 0
	s.OnKey("space", func() { keys++ })
	s.Listen()
	loop.KeyRelease("space")
	loop.KeyRelease("space")
	loop.RunPending()
	assert.Equal(t, 2, keys)

	s.OnKey("space", nil)
	loop.KeyRelease("space")
	loop.RunPending()
	assert.Equal(t, 2, keys)
}

func TestScreenColorMode(t *testing.T) {
	w, surface := newTestWindow(t)
	s := w.Screen()
	assert.True(t, errors.Is(s.SetColorMode(100), ErrInvalidArgument))
	require.NoError(t, s.SetColorMode(255))
	require.NoError(t, s.SetBgColor(RGB(255, 255, 0)))
	assert.Equal(t, "#ffff00", surface.Background())
	assert.True(t, errors.Is(s.SetBgColor(Named("nope")), ErrInvalidColor))
}

func TestScreenBgPic(t *testing.T) {
	w, surface := newTestWindow(t)
	s := w.Screen()
	pic := image.NewRGBA(image.Rect(0, 0, 4, 4))
	loads := 0
	s.SetImageLoader(func(name string) (image.Image, error) {
		loads++
		if name == "missing.gif" {
			return nil, errors.New("not found")
		}
		return pic, nil
	})

	line := surface.CreateLine()
	require.NoError(t, s.SetBgPic("sky.gif"))
	assert.Equal(t, "sky.gif", s.BgPic())
	items := surface.Items()
	require.NotEmpty(t, items)
	assert.Equal(t, ItemImage, items[0].Kind)
	assert.Same(t, pic, items[0].Image.(*image.RGBA))
	assert.NotEqual(t, line, items[0].ID)

	require.NoError(t, s.SetBgPic("nopic"))
	assert.Empty(t, surface.ItemsOf(ItemImage))
	require.NoError(t, s.SetBgPic("sky.gif"))
	assert.Equal(t, 1, loads)

	assert.Error(t, s.SetBgPic("missing.gif"))
	assert.Equal(t, "sky.gif", s.BgPic())
}

func TestScreenAddImageShape(t *testing.T) {
	w, surface := newTestWindow(t)
	s := w.Screen()
	pic := image.NewRGBA(image.Rect(0, 0, 8, 8))
	s.SetImageLoader(func(string) (image.Image, error) { return pic, nil })

	assert.True(t, errors.Is(s.AddImageShape("ball.png"), ErrInvalidArgument))
	require.NoError(t, s.AddImageShape("ball.gif"))
	assert.Contains(t, s.Shapes(), "ball.gif")

	tu, err := NewTurtle(s, "ball.gif", ModeStandard)
	require.NoError(t, err)
	tu.SetSpeed(0)
	require.NoError(t, tu.Goto(10, 20))
	var icon Item
	for _, it := range surface.ItemsOf(ItemImage) {
		if it.Image == image.Image(pic) {
			icon = it
		}
	}
	assert.Equal(t, V(10, -20), icon.At)
}

func TestScreenResetAndTurtles(t *testing.T) {
	w, _ := newTestWindow(t)
	a, err := w.NewTurtle()
	require.NoError(t, err)
	b, err := w.NewTurtle()
	require.NoError(t, err)
	a.SetSpeed(0)
	b.SetSpeed(0)
	require.NoError(t, a.Forward(10))
	require.NoError(t, b.Back(10))

	s := w.Screen()
	assert.Equal(t, []*Turtle{a, b}, s.Turtles())
	require.NoError(t, s.Reset())
	assert.Equal(t, Vec2{}, a.Pos())
	assert.Equal(t, Vec2{}, b.Pos())
}

func TestScreenResize(t *testing.T) {
	w, surface := newTestWindow(t)
	s := w.Screen()
	require.NoError(t, s.Resize(1000, 800))
	assert.Equal(t, 1000, s.ScreenWidth())
	assert.Equal(t, 800, s.ScreenHeight())
	sw, sh := surface.Size()
	assert.Equal(t, 1000, sw)
	assert.Equal(t, 800, sh)
	assert.Error(t, s.Resize(0, 10))
	assert.Equal(t, 800, s.WindowWidth())
	assert.Equal(t, 600, s.WindowHeight())
}

func TestScreenOnTimer(t *testing.T) {
	loop := NewLoop()
	now := time.Unix(0, 0)
	loop.now = func() time.Time { return now }
	host := loop.Bindings()
	host.Sleep = func(time.Duration) {}
	w := Open(NewRecordingSurface(100, 100), host, DefaultOptions())
	t.Cleanup(w.Close)

	fired := false
	w.Screen().OnTimer(50, func() { fired = true })
	loop.RunPending()
	assert.False(t, fired)
	now = now.Add(50 * time.Millisecond)
	loop.RunPending()
	assert.True(t, fired)
}
