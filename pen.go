package turtle

import "math"

// PenState is a snapshot of a turtle's drawing attributes. Colors are held
// as resolved surface color strings; the empty string is no color.
type PenState struct {
	Shown      bool
	Down       bool
	PenColor   string
	FillColor  string
	Size       float64
	Speed      int
	ResizeMode ResizeMode
	Stretch    float64
	Outline    float64
}

func defaultPen(rm ResizeMode) PenState {
	return PenState{
		Shown:      true,
		Down:       true,
		PenColor:   "black",
		Size:       1,
		Speed:      3,
		ResizeMode: rm,
		Stretch:    1,
		Outline:    1,
	}
}

var speedNames = map[string]int{
	"fastest": 0,
	"fast":    10,
	"normal":  6,
	"slow":    3,
	"slowest": 1,
}

// speedValue maps a requested speed onto 0..10. Values outside (0.5, 10.5)
// mean no animation.
func speedValue(s float64) int {
	if s > 0.5 && s < 10.5 {
		return int(math.RoundToEven(s))
	}
	return 0
}

// PenOption changes one pen attribute in SetPen.
type PenOption func(s *Screen, p *PenState) error

// WithState replaces every attribute with those of p.
func WithState(p PenState) PenOption {
	return func(_ *Screen, dst *PenState) error {
		*dst = p
		return nil
	}
}

// WithShown shows or hides the turtle.
func WithShown(shown bool) PenOption {
	return func(_ *Screen, p *PenState) error {
		p.Shown = shown
		return nil
	}
}

// WithDown lowers or raises the pen.
func WithDown(down bool) PenOption {
	return func(_ *Screen, p *PenState) error {
		p.Down = down
		return nil
	}
}

// WithPenColor sets the line color.
func WithPenColor(c Color) PenOption {
	return func(s *Screen, p *PenState) error {
		v, err := s.ResolveColor(c)
		if err != nil {
			return err
		}
		p.PenColor = v
		return nil
	}
}

// WithFillColor sets the fill color.
func WithFillColor(c Color) PenOption {
	return func(s *Screen, p *PenState) error {
		v, err := s.ResolveColor(c)
		if err != nil {
			return err
		}
		p.FillColor = v
		return nil
	}
}

// WithSize sets the line width.
func WithSize(width float64) PenOption {
	return func(_ *Screen, p *PenState) error {
		if width < 0 {
			return argError("pen size %v", width)
		}
		p.Size = width
		return nil
	}
}

// WithSpeed sets the animation speed, see SetSpeed.
func WithSpeed(speed float64) PenOption {
	return func(_ *Screen, p *PenState) error {
		p.Speed = speedValue(speed)
		return nil
	}
}

// WithResizeMode sets how the icon follows the pen.
func WithResizeMode(rm ResizeMode) PenOption {
	return func(_ *Screen, p *PenState) error {
		p.ResizeMode = rm
		return nil
	}
}

// WithStretch sets the icon stretch factor used in user resize mode.
func WithStretch(f float64) PenOption {
	return func(_ *Screen, p *PenState) error {
		if f <= 0 {
			return argError("stretch factor %v", f)
		}
		p.Stretch = f
		return nil
	}
}

// WithOutline sets the icon outline width used in user resize mode.
func WithOutline(w float64) PenOption {
	return func(_ *Screen, p *PenState) error {
		if w <= 0 {
			return argError("outline width %v", w)
		}
		p.Outline = w
		return nil
	}
}

// Pen returns a snapshot of the pen that SetPen(WithState(p)) restores.
func (t *Turtle) Pen() PenState { return t.pen }

// SetPen applies opts in order. Nothing changes if an option fails.
func (t *Turtle) SetPen(opts ...PenOption) error {
	p := t.pen
	for _, opt := range opts {
		if err := opt(t.screen, &p); err != nil {
			return err
		}
	}
	t.checkpoint(ActionPen)
	return t.applyPen(p)
}

// applyPen installs p, closing the line batch first if the line would
// look different from here on.
func (t *Turtle) applyPen(p PenState) error {
	if p.Down != t.pen.Down || p.PenColor != t.pen.PenColor || p.Size != t.pen.Size {
		t.newLine(true)
	}
	t.pen = p
	return t.update(true, false)
}

// PenUp lifts the pen; moves no longer draw.
func (t *Turtle) PenUp() {
	if !t.pen.Down {
		return
	}
	t.checkpoint(ActionPen)
	t.pen.Down = false
	t.newLine(false)
}

// PenDown lowers the pen; moves draw again.
func (t *Turtle) PenDown() {
	if t.pen.Down {
		return
	}
	t.checkpoint(ActionPen)
	t.newLine(true)
	t.pen.Down = true
}

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool { return t.pen.Down }

// PenSize returns the line width.
func (t *Turtle) PenSize() float64 { return t.pen.Size }

// SetPenSize sets the line width. In auto resize mode the icon follows.
func (t *Turtle) SetPenSize(width float64) error {
	if width < 0 {
		return argError("pen size %v", width)
	}
	t.checkpoint(ActionPen)
	t.newLine(true)
	t.pen.Size = width
	return t.update(true, false)
}

// Speed returns the animation speed, 0 meaning no animation.
func (t *Turtle) Speed() int { return t.pen.Speed }

// SetSpeed sets the animation speed. Numbers in (0.5, 10.5) are rounded
// to 1..10; anything else is 0, which turns animation off.
func (t *Turtle) SetSpeed(speed float64) {
	t.pen.Speed = speedValue(speed)
}

// SetSpeedName sets the speed by name: fastest, fast, normal, slow or
// slowest.
func (t *Turtle) SetSpeedName(name string) error {
	v, ok := speedNames[name]
	if !ok {
		return argError("speed %q", name)
	}
	t.pen.Speed = v
	return nil
}

// Color returns the pen and fill colors.
func (t *Turtle) Color() (pen, fill string) {
	return t.pen.PenColor, t.pen.FillColor
}

// SetColor sets pen and fill color from one color, two colors, three
// numbers or six numbers; see ColorArgs.
func (t *Turtle) SetColor(args ...any) error {
	pc, fc, err := ColorArgs(args...)
	if err != nil {
		return err
	}
	p, err := t.screen.ResolveColor(pc)
	if err != nil {
		return err
	}
	f, err := t.screen.ResolveColor(fc)
	if err != nil {
		return err
	}
	t.checkpoint(ActionPen)
	if p != t.pen.PenColor {
		t.newLine(true)
	}
	t.pen.PenColor, t.pen.FillColor = p, f
	return t.update(true, false)
}

// PenColor returns the line color.
func (t *Turtle) PenColor() string { return t.pen.PenColor }

// SetPenColor sets the line color and the icon outline.
func (t *Turtle) SetPenColor(c Color) error {
	v, err := t.screen.ResolveColor(c)
	if err != nil {
		return err
	}
	t.checkpoint(ActionPen)
	t.newLine(true)
	t.pen.PenColor = v
	return t.update(true, false)
}

// FillColor returns the fill color.
func (t *Turtle) FillColor() string { return t.pen.FillColor }

// SetFillColor sets the fill color and the icon interior.
func (t *Turtle) SetFillColor(c Color) error {
	v, err := t.screen.ResolveColor(c)
	if err != nil {
		return err
	}
	t.checkpoint(ActionPen)
	t.pen.FillColor = v
	return t.update(true, false)
}

// ShowTurtle makes the icon visible.
func (t *Turtle) ShowTurtle() error {
	t.checkpoint(ActionPen)
	t.pen.Shown = true
	return t.update(true, false)
}

// HideTurtle makes the icon invisible, which also speeds up drawing.
func (t *Turtle) HideTurtle() error {
	t.checkpoint(ActionPen)
	t.pen.Shown = false
	return t.update(true, false)
}

// IsVisible reports whether the icon is shown.
func (t *Turtle) IsVisible() bool { return t.pen.Shown }

// ResizeMode returns how the icon follows the pen.
func (t *Turtle) ResizeMode() ResizeMode { return t.pen.ResizeMode }

// SetResizeMode sets how the icon follows the pen.
func (t *Turtle) SetResizeMode(rm ResizeMode) error {
	t.checkpoint(ActionPen)
	t.pen.ResizeMode = rm
	return t.update(true, false)
}

// TurtleSize returns the stretch factor and outline width.
func (t *Turtle) TurtleSize() (stretch, outline float64) {
	return t.pen.Stretch, t.pen.Outline
}

// SetTurtleSize sets the stretch factor and outline width used in user
// resize mode. Zero leaves a value unchanged.
func (t *Turtle) SetTurtleSize(stretch, outline float64) error {
	if stretch < 0 || outline < 0 {
		return argError("turtle size %v, %v", stretch, outline)
	}
	t.checkpoint(ActionPen)
	if stretch > 0 {
		t.pen.Stretch = stretch
	}
	if outline > 0 {
		t.pen.Outline = outline
	}
	return t.update(true, false)
}
