package turtle

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"slices"
	"strings"
	"time"
)

// Screen is the drawing context of one surface: it owns the shape registry,
// the background, the color mode, the world transform and the update
// throttle shared by every turtle drawing on the surface.
type Screen struct {
	win     *Window
	surface Surface
	shapes  *ShapeRegistry

	bgpics    map[string]image.Image
	bgpicName string
	bgpicItem ItemID
	loadImage func(name string) (image.Image, error)

	colormode     float64
	tracing       int
	delay         int
	updateCounter int
	turtles       []*Turtle

	canvWidth, canvHeight int
	xscale, yscale        float64
}

func newScreen(win *Window, surface Surface) *Screen {
	w, h := surface.Size()
	s := &Screen{
		win:        win,
		surface:    surface,
		shapes:     NewShapeRegistry(),
		bgpics:     map[string]image.Image{"nopic": nil},
		bgpicName:  "nopic",
		loadImage:  decodeImageFile,
		colormode:  1.0,
		tracing:    1,
		delay:      StartDelay,
		canvWidth:  w,
		canvHeight: h,
		xscale:     1,
		yscale:     1,
	}
	surface.SetScrollRegion(centeredRegion(w, h))
	s.bgpicItem = surface.CreateImage(nil)
	return s
}

func decodeImageFile(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Window returns the window the screen belongs to.
func (s *Screen) Window() *Window { return s.win }

// Surface returns the surface the screen draws on.
func (s *Screen) Surface() Surface { return s.surface }

// SetImageLoader replaces how image shapes and background pictures are
// read from names.
func (s *Screen) SetImageLoader(load func(name string) (image.Image, error)) {
	s.loadImage = load
}

// AddShape registers shape under name, replacing any earlier shape.
func (s *Screen) AddShape(name string, shape Shape) error {
	return s.shapes.Add(name, shape)
}

// AddImageShape loads a gif file and registers it under its file name.
// Image shapes do not rotate with the turtle.
func (s *Screen) AddImageShape(name string) error {
	if !strings.HasSuffix(strings.ToLower(name), ".gif") {
		return argError("image shape %q is not a gif file", name)
	}
	img, err := s.loadImage(name)
	if err != nil {
		return fmt.Errorf("image shape: %w", err)
	}
	return s.shapes.Add(name, &ImageShape{Image: img})
}

// Shape returns the shape registered under name.
func (s *Screen) Shape(name string) (Shape, error) {
	return s.shapes.Get(name)
}

// Shapes returns the sorted names of all available shapes.
func (s *Screen) Shapes() []string {
	return s.shapes.Names()
}

// ColorMode returns 1.0 or 255.
func (s *Screen) ColorMode() float64 { return s.colormode }

// SetColorMode sets how RGB triples are read: 1.0 or 255.
func (s *Screen) SetColorMode(mode float64) error {
	if mode != 1.0 && mode != 255 {
		return argError("color mode %v", mode)
	}
	s.colormode = mode
	return nil
}

// ResolveColor returns the surface color string for c.
func (s *Screen) ResolveColor(c Color) (string, error) {
	return resolveColor(c, s.colormode)
}

// BgColor returns the background color.
func (s *Screen) BgColor() string {
	return s.surface.Background()
}

// SetBgColor sets the background color and redraws.
func (s *Screen) SetBgColor(c Color) error {
	color, err := s.ResolveColor(c)
	if err != nil {
		return err
	}
	s.surface.SetBackground(color)
	s.surface.Update()
	return nil
}

// BgPic returns the name of the background picture, "nopic" if none.
func (s *Screen) BgPic() string { return s.bgpicName }

// SetBgPic shows the named picture below all items. "nopic" removes it.
func (s *Screen) SetBgPic(name string) error {
	img, ok := s.bgpics[name]
	if !ok {
		var err error
		img, err = s.loadImage(name)
		if err != nil {
			return fmt.Errorf("background picture: %w", err)
		}
		s.bgpics[name] = img
	}
	s.surface.DrawImage(s.bgpicItem, Vec2{}, img)
	s.surface.Lower(s.bgpicItem)
	s.bgpicName = name
	return nil
}

// Turtles returns the turtles drawing on the screen in creation order.
func (s *Screen) Turtles() []*Turtle {
	return slices.Clone(s.turtles)
}

// Reset resets every turtle on the screen.
func (s *Screen) Reset() error {
	for _, t := range s.turtles {
		if err := t.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Tracer returns the tracing level: 0 off, n>0 redraw every n-th update.
func (s *Screen) Tracer() int { return s.tracing }

// SetTracer sets the tracing level and restores the standard delay.
func (s *Screen) SetTracer(n int) error {
	return s.SetTracerDelay(n, StandardDelay)
}

// SetTracerDelay sets the tracing level and the delay in milliseconds.
func (s *Screen) SetTracerDelay(n, delay int) error {
	if n < 0 || delay < 0 {
		return argError("tracer %d delay %d", n, delay)
	}
	s.tracing = n
	s.updateCounter = 0
	s.delay = delay
	Logger().Debug("tracer", "n", n, "delay", delay)
	return s.refresh(false)
}

// Delay returns the pause after each redraw in milliseconds.
func (s *Screen) Delay() int { return s.delay }

// SetDelay sets the pause after each redraw in milliseconds.
func (s *Screen) SetDelay(ms int) error {
	if ms < 0 {
		return argError("delay %d", ms)
	}
	s.delay = ms
	return nil
}

func (s *Screen) incrementCounter() {
	if s.tracing > 0 {
		s.updateCounter = (s.updateCounter + 1) % s.tracing
	}
}

// refresh presents the surface when the throttle allows it and then waits
// for the configured delay.
func (s *Screen) refresh(forced bool) error {
	if !s.win.Running() {
		return ErrTerminated
	}
	if s.tracing == 0 && !forced {
		return nil
	}
	if s.updateCounter == 0 || forced {
		s.surface.Update()
		s.win.host.Sleep(time.Duration(s.delay) * time.Millisecond)
	}
	return nil
}

// Update redraws every turtle on the screen regardless of tracing.
func (s *Screen) Update() error {
	for _, t := range s.turtles {
		t.drawIcon()
		t.drawCurrentLine()
	}
	return s.refresh(true)
}

// Resize changes the canvas size. Drawings are kept.
func (s *Screen) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return argError("canvas size %dx%d", width, height)
	}
	s.canvWidth, s.canvHeight = width, height
	s.surface.Resize(width, height)
	Logger().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// ScreenSize returns the canvas size.
func (s *Screen) ScreenSize() (int, int) { return s.canvWidth, s.canvHeight }

// ScreenWidth returns the canvas width.
func (s *Screen) ScreenWidth() int { return s.canvWidth }

// ScreenHeight returns the canvas height.
func (s *Screen) ScreenHeight() int { return s.canvHeight }

// WindowWidth returns the width of the window holding the canvas.
func (s *Screen) WindowWidth() int { return s.win.width }

// WindowHeight returns the height of the window holding the canvas.
func (s *Screen) WindowHeight() int { return s.win.height }

// OnClick calls fn with world coordinates when button btn is clicked.
// A nil fn removes the binding.
func (s *Screen) OnClick(btn int, fn func(x, y float64)) {
	if fn == nil {
		s.win.host.BindClick(btn, nil)
		return
	}
	s.win.host.BindClick(btn, func(x, y float64) {
		p := s.toWorld(V(x, y))
		fn(p.X, p.Y)
	})
}

// OnKey calls fn when key is released. A nil fn removes the binding.
func (s *Screen) OnKey(key string, fn func()) {
	s.win.host.BindKey(key, fn)
}

// Listen directs key events to the screen.
func (s *Screen) Listen() {
	s.win.host.Focus()
}

// OnTimer calls fn once after ms milliseconds.
func (s *Screen) OnTimer(ms int, fn func()) {
	s.win.host.After(time.Duration(ms)*time.Millisecond, fn)
}

// XScale returns pixels per world unit along x.
func (s *Screen) XScale() float64 { return s.xscale }

// YScale returns pixels per world unit along y.
func (s *Screen) YScale() float64 { return s.yscale }

// SetXScale sets pixels per world unit along x.
func (s *Screen) SetXScale(f float64) error {
	if f == 0 {
		return argError("x scale 0")
	}
	s.xscale = f
	return nil
}

// SetYScale sets pixels per world unit along y.
func (s *Screen) SetYScale(f float64) error {
	if f == 0 {
		return argError("y scale 0")
	}
	s.yscale = f
	return nil
}

// SetWorldCoords maps the world rectangle (llx,lly)-(urx,ury) onto the
// whole canvas.
func (s *Screen) SetWorldCoords(llx, lly, urx, ury float64) error {
	xspan, yspan := urx-llx, ury-lly
	if xspan == 0 || yspan == 0 {
		return argError("world coordinates (%v,%v)-(%v,%v)", llx, lly, urx, ury)
	}
	s.xscale = float64(s.canvWidth) / xspan
	s.yscale = float64(s.canvHeight) / yspan
	x1 := llx * s.xscale
	y1 := -ury * s.yscale
	s.surface.SetScrollRegion(Rect{
		Min: V(x1, y1),
		Max: V(x1+float64(s.canvWidth), y1+float64(s.canvHeight)),
	})
	return nil
}

// scaled maps a world point to scaled world units, y still up.
func (s *Screen) scaled(p Vec2) Vec2 {
	return V(p.X*s.xscale, p.Y*s.yscale)
}

// toSurface maps a world point to surface coordinates.
func (s *Screen) toSurface(p Vec2) Vec2 {
	return V(p.X*s.xscale, -p.Y*s.yscale)
}

// toWorld maps surface coordinates back to world coordinates.
func (s *Screen) toWorld(p Vec2) Vec2 {
	return V(p.X/s.xscale, -p.Y/s.yscale)
}

func (s *Screen) drawLine(id ItemID, pts []Vec2, color string, width float64) {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = s.toSurface(p)
	}
	s.surface.DrawLine(id, out, color, width)
}

// drawPoly draws pts on a polygon item. Points already scaled by the caller
// pass xform false and only get their y flipped.
func (s *Screen) drawPoly(id ItemID, pts []Vec2, fill, outline string, width float64, top, xform bool) {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		if xform {
			out[i] = s.toSurface(p)
		} else {
			out[i] = V(p.X, -p.Y)
		}
	}
	s.surface.DrawPolygon(id, out, fill, outline, width)
	if top {
		s.surface.Raise(id)
	}
}

func (s *Screen) attach(t *Turtle) {
	s.turtles = append(s.turtles, t)
}

func (s *Screen) detach(t *Turtle) {
	if i := slices.Index(s.turtles, t); i >= 0 {
		s.turtles = slices.Delete(s.turtles, i, i+1)
	}
}
