package turtle

import "math"

// Forward moves the turtle distance units along its heading.
func (t *Turtle) Forward(distance float64) error {
	t.checkpoint(ActionMove)
	return t.moveTo(t.nav.Ahead(distance))
}

// Back moves the turtle distance units against its heading.
func (t *Turtle) Back(distance float64) error {
	t.checkpoint(ActionMove)
	return t.moveTo(t.nav.Ahead(-distance))
}

// Left turns the turtle by angle units: counterclockwise in standard mode,
// clockwise in logo mode.
func (t *Turtle) Left(angle float64) error {
	t.checkpoint(ActionRotate)
	return t.rotate(angle)
}

// Right turns the turtle by angle units the other way.
func (t *Turtle) Right(angle float64) error {
	t.checkpoint(ActionRotate)
	return t.rotate(-angle)
}

// Short aliases.
func (t *Turtle) Fd(distance float64) error { return t.Forward(distance) }
func (t *Turtle) Bk(distance float64) error { return t.Back(distance) }
func (t *Turtle) Lt(angle float64) error { return t.Left(angle) }
func (t *Turtle) Rt(angle float64) error { return t.Right(angle) }
func (t *Turtle) Seth(heading float64) error { return t.SetHeading(heading) }

// Goto moves the turtle to (x, y), drawing when the pen is down.
func (t *Turtle) Goto(x, y float64) error {
	return t.SetPos(V(x, y))
}

// SetPos moves the turtle to p, drawing when the pen is down.
func (t *Turtle) SetPos(p Vec2) error {
	t.checkpoint(ActionMove)
	return t.moveTo(p)
}

// SetX moves the turtle horizontally to x.
func (t *Turtle) SetX(x float64) error {
	return t.SetPos(V(x, t.nav.position.Y))
}

// SetY moves the turtle vertically to y.
func (t *Turtle) SetY(y float64) error {
	return t.SetPos(V(t.nav.position.X, y))
}

// Home moves the turtle to the origin and turns it to heading 0.
func (t *Turtle) Home() error {
	t.checkpoint(ActionMove)
	if err := t.moveTo(Vec2{}); err != nil {
		return err
	}
	return t.rotate(t.nav.HeadingDelta(0))
}

// SetHeading turns the turtle the short way round to face heading.
func (t *Turtle) SetHeading(heading float64) error {
	t.checkpoint(ActionRotate)
	return t.rotate(t.nav.HeadingDelta(heading))
}

// Circle draws a full circle whose center lies radius units to the left.
// A negative radius draws clockwise.
func (t *Turtle) Circle(radius float64) error {
	return t.ArcSteps(radius, t.nav.fullcircle, 0)
}

// Arc draws extent units of a circle of the given radius. The heading
// changes by extent.
func (t *Turtle) Arc(radius, extent float64) error {
	return t.ArcSteps(radius, extent, 0)
}

// ArcSteps is Arc approximated by a regular polygon of steps chords;
// steps <= 0 picks the count from the radius.
func (t *Turtle) ArcSteps(radius, extent float64, steps int) error {
	t.checkpoint(ActionMove)
	plan := t.nav.PlanArc(radius, extent, steps)
	s := t.screen
	speed := t.pen.Speed
	tracing, delay := s.tracing, s.delay
	if speed == 0 {
		if err := t.SetTracerDelay(0, 0); err != nil {
			return err
		}
	}
	err := t.walkArc(plan, speed)
	t.pen.Speed = speed
	if speed == 0 {
		if rerr := t.SetTracerDelay(tracing, delay); err == nil {
			err = rerr
		}
	}
	return err
}

// walkArc turns without animation and moves each chord at speed.
func (t *Turtle) walkArc(plan ArcPlan, speed int) error {
	t.pen.Speed = 0
	if err := t.rotate(plan.HalfTurn); err != nil {
		return err
	}
	for i := 0; i < plan.Steps; i++ {
		t.pen.Speed = speed
		if err := t.moveTo(t.nav.Ahead(plan.Chord)); err != nil {
			return err
		}
		t.pen.Speed = 0
		if err := t.rotate(plan.Turn); err != nil {
			return err
		}
	}
	return t.rotate(-plan.HalfTurn)
}

// moveTo is the one place the turtle changes position. With animation on
// it draws the segment in hops; then it records end in the line batch, the
// fill path and the recorded polygon.
func (t *Turtle) moveTo(end Vec2) error {
	s := t.screen
	start := t.nav.position
	if t.pen.Speed > 0 && s.tracing == 1 {
		diff := end.Sub(start)
		speed := float64(t.pen.Speed)
		hops := 1 + int(diff.Abs()/(3*math.Pow(1.1, speed)*speed))
		delta := diff.Mul(1 / float64(hops))
		for n := 1; n < hops; n++ {
			t.nav.position = start.Add(delta.Mul(float64(n)))
			if t.pen.Down {
				s.drawLine(t.drawingLine, []Vec2{start, t.nav.position}, t.pen.PenColor, t.pen.Size)
				if n == 1 {
					s.surface.Raise(t.drawingLine)
				}
			}
			if err := t.update(true, false); err != nil {
				return err
			}
		}
		if t.pen.Down {
			s.surface.DrawLine(t.drawingLine, nil, "", t.pen.Size)
		}
	}
	if t.pen.Down {
		t.currentLine = append(t.currentLine, end)
	}
	if t.filling {
		t.fillPath = append(t.fillPath, end)
	}
	t.nav.position = end
	if t.creatingPoly {
		t.poly = append(t.poly, s.scaled(end))
	}
	if len(t.currentLine) > maxBatch {
		Logger().Debug("line batch flushed", "points", len(t.currentLine))
		t.newLine(true)
	}
	return t.update(true, false)
}

// rotate turns by angle units, animated in small steps when tracing is 1
// and the speed is not zero.
func (t *Turtle) rotate(angle float64) error {
	deg := angle * t.nav.degreesPer
	target := t.nav.orient.Rotate(deg)
	if t.screen.tracing == 1 && t.pen.Speed > 0 {
		steps := 1 + int(math.Abs(deg)/(3*float64(t.pen.Speed)))
		delta := deg / float64(steps)
		for i := 0; i < steps; i++ {
			t.nav.orient = t.nav.orient.Rotate(delta)
			if err := t.update(true, false); err != nil {
				return err
			}
		}
	}
	t.nav.orient = target
	return t.update(true, false)
}
