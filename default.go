package turtle

import "sync"

var (
	defaultMu     sync.Mutex
	defaultWindow *Window
	defaultTurtle *Turtle
)

// Default returns the process-wide window. The first call opens it on an
// 800x600 RasterSurface driven by a fresh Loop; after Close the next call
// opens a new one.
func Default() *Window {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultWindow == nil {
		opts := DefaultOptions()
		loop := NewLoop()
		defaultWindow = Open(NewRasterSurface(opts.CanvWidth, opts.CanvHeight), loop.Bindings(), opts)
	}
	return defaultWindow
}

// SetDefault makes w the process-wide window used by the package-level
// functions.
func SetDefault(w *Window) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultWindow = w
	defaultTurtle = nil
}

func forgetDefault(w *Window) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultWindow == w {
		defaultWindow = nil
		defaultTurtle = nil
	}
}

// DefaultTurtle returns the turtle the package-level functions drive,
// creating it on the default window on first use.
func DefaultTurtle() *Turtle {
	w := Default()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTurtle != nil && defaultTurtle.screen.win == w {
		return defaultTurtle
	}
	t, err := w.NewTurtle()
	if t == nil {
		Logger().Warn("default turtle shape unavailable", "shape", w.opts.Shape, "err", err)
		t, _ = NewTurtle(w.Screen(), "arrow", w.opts.Mode)
	}
	defaultTurtle = t
	return t
}

// Commands is the operation set shared by *Turtle and the package-level
// functions.
type Commands interface {
	Forward(distance float64) error
	Back(distance float64) error
	Left(angle float64) error
	Right(angle float64) error
	Goto(x, y float64) error
	SetPos(p Vec2) error
	SetX(x float64) error
	SetY(y float64) error
	Home() error
	SetHeading(heading float64) error
	Circle(radius float64) error
	Arc(radius, extent float64) error
	ArcSteps(radius, extent float64, steps int) error

	Pos() Vec2
	XCor() float64
	YCor() float64
	Heading() float64
	Towards(p Vec2) float64
	Distance(p Vec2) float64
	Mode() Mode
	SetMode(m Mode) error
	Degrees(fullcircle float64) error
	Radians()

	PenUp()
	PenDown()
	IsDown() bool
	PenSize() float64
	SetPenSize(width float64) error
	Speed() int
	SetSpeed(speed float64)
	SetSpeedName(name string) error
	Color() (pen, fill string)
	SetColor(args ...any) error
	PenColor() string
	SetPenColor(c Color) error
	FillColor() string
	SetFillColor(c Color) error
	ShowTurtle() error
	HideTurtle() error
	IsVisible() bool
	Pen() PenState
	SetPen(opts ...PenOption) error
	ResizeMode() ResizeMode
	SetResizeMode(rm ResizeMode) error
	TurtleSize() (stretch, outline float64)
	SetTurtleSize(stretch, outline float64) error

	Reset() error
	Clear() error
	ClearN(n int) error
	Update() error
	Tracer() int
	SetTracer(n int) error
	SetTracerDelay(n, delay int) error
	Delay() int
	SetDelay(ms int) error
	ShapeName() string
	SetShape(name string) error
	Fill(flag bool) error
	BeginFill() error
	EndFill() error
	Filling() bool
	Dot(size float64, c Color) error
	Write(text string, move bool, align Align, font Font) error
	PolyStart()
	PolyEnd()
	Poly() []Vec2
	Undo() error
	SetUndoBuffer(size int) error
}

var _ Commands = (*Turtle)(nil)

func Forward(distance float64) error { return DefaultTurtle().Forward(distance) }
func Back(distance float64) error { return DefaultTurtle().Back(distance) }
func Left(angle float64) error { return DefaultTurtle().Left(angle) }
func Right(angle float64) error { return DefaultTurtle().Right(angle) }
func Fd(distance float64) error { return DefaultTurtle().Fd(distance) }
func Bk(distance float64) error { return DefaultTurtle().Bk(distance) }
func Lt(angle float64) error { return DefaultTurtle().Lt(angle) }
func Rt(angle float64) error { return DefaultTurtle().Rt(angle) }
func Seth(heading float64) error { return DefaultTurtle().Seth(heading) }
func Goto(x, y float64) error { return DefaultTurtle().Goto(x, y) }
func SetPos(p Vec2) error { return DefaultTurtle().SetPos(p) }
func SetX(x float64) error { return DefaultTurtle().SetX(x) }
func SetY(y float64) error { return DefaultTurtle().SetY(y) }
func Home() error { return DefaultTurtle().Home() }
func SetHeading(heading float64) error { return DefaultTurtle().SetHeading(heading) }
func Circle(radius float64) error { return DefaultTurtle().Circle(radius) }
func Arc(radius, extent float64) error { return DefaultTurtle().Arc(radius, extent) }
func ArcSteps(radius, extent float64, steps int) error {
	return DefaultTurtle().ArcSteps(radius, extent, steps)
}

func Pos() Vec2 { return DefaultTurtle().Pos() }
func XCor() float64 { return DefaultTurtle().XCor() }
func YCor() float64 { return DefaultTurtle().YCor() }
func Heading() float64 { return DefaultTurtle().Heading() }
func Towards(p Vec2) float64 { return DefaultTurtle().Towards(p) }
func Distance(p Vec2) float64 { return DefaultTurtle().Distance(p) }
func SetMode(m Mode) error { return DefaultTurtle().SetMode(m) }
func Degrees(fullcircle float64) error { return DefaultTurtle().Degrees(fullcircle) }
func Radians() { DefaultTurtle().Radians() }

func PenUp() { DefaultTurtle().PenUp() }
func PenDown() { DefaultTurtle().PenDown() }
func PenSize() float64 { return DefaultTurtle().PenSize() }
func SetPenSize(width float64) error { return DefaultTurtle().SetPenSize(width) }
func Speed() int { return DefaultTurtle().Speed() }
func SetSpeed(speed float64) { DefaultTurtle().SetSpeed(speed) }
func SetSpeedName(name string) error { return DefaultTurtle().SetSpeedName(name) }
func SetColor(args ...any) error { return DefaultTurtle().SetColor(args...) }
func SetPenColor(c Color) error { return DefaultTurtle().SetPenColor(c) }
func SetFillColor(c Color) error { return DefaultTurtle().SetFillColor(c) }
func ShowTurtle() error { return DefaultTurtle().ShowTurtle() }
func HideTurtle() error { return DefaultTurtle().HideTurtle() }
func SetPen(opts ...PenOption) error { return DefaultTurtle().SetPen(opts...) }
func SetResizeMode(rm ResizeMode) error { return DefaultTurtle().SetResizeMode(rm) }
func SetTurtleSize(stretch, outline float64) error {
	return DefaultTurtle().SetTurtleSize(stretch, outline)
}

func Reset() error { return DefaultTurtle().Reset() }
func Clear() error { return DefaultTurtle().Clear() }
func ClearN(n int) error { return DefaultTurtle().ClearN(n) }
func Update() error { return DefaultTurtle().Update() }
func Tracer() int { return DefaultTurtle().Tracer() }
func SetTracer(n int) error { return DefaultTurtle().SetTracer(n) }
func SetTracerDelay(n, delay int) error { return DefaultTurtle().SetTracerDelay(n, delay) }
func SetDelay(ms int) error { return DefaultTurtle().SetDelay(ms) }
func SetShape(name string) error { return DefaultTurtle().SetShape(name) }
func Fill(flag bool) error { return DefaultTurtle().Fill(flag) }
func BeginFill() error { return DefaultTurtle().BeginFill() }
func EndFill() error { return DefaultTurtle().EndFill() }
func Dot(size float64, c Color) error { return DefaultTurtle().Dot(size, c) }
func Write(text string, move bool, align Align, font Font) error {
	return DefaultTurtle().Write(text, move, align, font)
}
func PolyStart() { DefaultTurtle().PolyStart() }
func PolyEnd() { DefaultTurtle().PolyEnd() }
func Poly() []Vec2 { return DefaultTurtle().Poly() }
func Undo() error { return DefaultTurtle().Undo() }

// Bye closes the default window.
func Bye() {
	defaultMu.Lock()
	w := defaultWindow
	defaultMu.Unlock()
	if w != nil {
		w.Close()
	}
}

// Mainloop runs the default window's host loop.
func Mainloop() error { return Default().Mainloop() }

// ExitOnClick runs the default window until its canvas is clicked.
func ExitOnClick() error { return Default().ExitOnClick() }
