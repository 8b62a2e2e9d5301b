package main

import (
	"errors"

	"turtle"
)

// script keeps the first error of a sequence of turtle calls. Calls after a
// failure still run but return at once, since a closed window fails every
// update before it waits.
type script struct {
	err error
}

func (s *script) do(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *script) ok() bool { return s.err == nil }

// terminated reports whether err only means the window was closed.
func terminated(err error) bool {
	return errors.Is(err, turtle.ErrTerminated)
}

var demos = map[string]func(*turtle.Window, *turtle.Turtle, *script){
	"1": demo1,
	"2": demo2,
}

// runDemos runs the named demo, or all of them, with t as the main turtle.
func runDemos(win *turtle.Window, t *turtle.Turtle, which string) error {
	s := &script{}
	switch which {
	case "all", "":
		demo1(win, t, s)
		if s.ok() {
			demo2(win, t, s)
		}
	default:
		demo, ok := demos[which]
		if !ok {
			return errors.New("unknown demo " + which)
		}
		demo(win, t, s)
	}
	return s.err
}

func square(t turtle.Commands, s *script, side float64) {
	for j := 0; j < 4; j++ {
		s.do(t.Forward(side))
		s.do(t.Left(90))
	}
}

func staircase(t turtle.Commands, s *script) {
	for i := 0; i < 5 && s.ok(); i++ {
		s.do(t.Forward(20))
		s.do(t.Left(90))
		s.do(t.Forward(20))
		s.do(t.Right(90))
	}
}

// demo1 draws squares, stairs and text with the classic commands.
func demo1(win *turtle.Window, t *turtle.Turtle, s *script) {
	s.do(win.SetWorldCoordinates(-500, -400, 500, 400))
	s.do(t.Reset())
	s.do(t.SetTracer(1))
	t.PenUp()
	s.do(t.Back(100))
	t.PenDown()

	s.do(t.SetPenSize(3))
	for i := 0; i < 3 && s.ok(); i++ {
		if i == 2 {
			s.do(t.Fill(true))
		}
		square(t, s, 20)
		if i == 2 {
			s.do(t.SetColor("maroon"))
			s.do(t.Fill(false))
		}
		t.PenUp()
		s.do(t.Forward(30))
		t.PenDown()
	}
	s.do(t.SetPenSize(1))
	s.do(t.SetColor("black"))

	// out of the way
	s.do(t.SetTracer(0))
	t.PenUp()
	s.do(t.Right(90))
	s.do(t.Forward(100))
	s.do(t.Right(90))
	s.do(t.Forward(100))
	s.do(t.Right(180))
	t.PenDown()

	s.do(t.Write("startstart", true, turtle.AlignLeft, turtle.DefaultFont))
	s.do(t.Write("start", true, turtle.AlignLeft, turtle.DefaultFont))
	s.do(t.SetColor("red"))
	staircase(t, s)
	s.do(t.Fill(true))
	staircase(t, s)
	s.do(t.Fill(false))

	s.do(t.Write("wait a moment...", false, turtle.AlignLeft, turtle.DefaultFont))
	s.do(t.SetTracer(1))
}

// demo2 shows arcs, fills, speeds and two turtles chasing each other. It
// ends by waiting for a click on the chasing turtle.
func demo2(win *turtle.Window, tri *turtle.Turtle, s *script) {
	screen := win.Screen()

	tri.SetSpeed(1)
	s.do(tri.ShowTurtle())
	s.do(tri.SetPenSize(3))
	s.do(tri.SetHeading(tri.Towards(turtle.V(0, 0))))
	r := tri.Distance(turtle.V(0, 0)) / 2
	s.do(tri.Right(90))
	for i := 0; i < 18 && s.ok(); i++ {
		if tri.IsDown() {
			tri.PenUp()
		} else {
			tri.PenDown()
		}
		s.do(tri.Arc(r, 10))
	}

	s.do(tri.Reset())
	s.do(tri.Left(90))
	s.do(screen.SetColorMode(255))
	l := 10.0
	s.do(tri.SetPenColor(turtle.Named("green")))
	s.do(tri.SetPenSize(3))
	s.do(tri.Left(180))
	for i := -2; i < 16 && s.ok(); i++ {
		if i > 0 {
			s.do(tri.Fill(true))
			s.do(tri.SetFillColor(turtle.RGB(float64(255-15*i), 0, float64(15*i))))
		}
		for j := 0; j < 3; j++ {
			s.do(tri.Forward(l))
			s.do(tri.Left(120))
		}
		l += 10
		s.do(tri.Left(15))
		tri.SetSpeed(float64((tri.Speed() + 1) % 12))
	}
	s.do(tri.Fill(false))

	s.do(tri.Left(120))
	tri.PenUp()
	s.do(tri.Forward(70))
	s.do(tri.Right(30))
	tri.PenDown()
	s.do(tri.SetColor("red", "yellow"))
	tri.SetSpeed(0)
	s.do(tri.Fill(true))
	for i := 0; i < 4; i++ {
		s.do(tri.Arc(50, 90))
		s.do(tri.Right(90))
		s.do(tri.Forward(30))
		s.do(tri.Right(90))
	}
	s.do(tri.Fill(false))
	s.do(tri.Left(90))
	tri.PenUp()
	s.do(tri.Forward(30))
	tri.PenDown()
	s.do(tri.SetShape("turtle"))
	if !s.ok() {
		return
	}

	runner, err := turtle.NewTurtle(screen, "turtle", turtle.ModeLogo)
	s.do(err)
	if runner == nil {
		return
	}
	runner.SetSpeed(0)
	runner.PenUp()
	s.do(runner.Goto(280, 40))
	s.do(runner.Left(30))
	runner.PenDown()
	runner.SetSpeed(6)
	s.do(runner.SetColor("blue", "orange"))
	s.do(runner.SetPenSize(2))

	tri.SetSpeed(6)
	s.do(tri.SetHeading(tri.TowardsTurtle(runner)))
	for s.ok() && tri.DistanceTo(runner) > 4 {
		s.do(runner.Forward(3.5))
		s.do(runner.Left(0.6))
		s.do(tri.SetHeading(tri.TowardsTurtle(runner)))
		s.do(tri.Forward(4))
	}
	s.do(tri.Write("CAUGHT! ", false, turtle.AlignRight, turtle.Font{Family: "Arial", Size: 16, Bold: true}))
	s.do(tri.SetPenColor(turtle.Named("black")))
	s.do(tri.Write("  Click me!", false, turtle.AlignLeft, turtle.Font{Family: "Courier", Size: 12, Bold: true}))
	s.do(tri.SetPenColor(turtle.Named("red")))

	screen.OnClick(1, func(x, y float64) {
		if tri.Distance(turtle.V(x, y)) >= 10 {
			return
		}
		var c script
		c.do(screen.Reset())
		c.do(runner.HideTurtle())
		c.do(tri.HideTurtle())
		tri.PenUp()
		c.do(tri.Back(130))
		if c.err != nil && !terminated(c.err) {
			turtle.Logger().Warn("click handler failed", "err", c.err)
		}
		win.Bye()
	})
}
