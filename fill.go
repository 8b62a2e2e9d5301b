package turtle

import (
	"fmt"
	"slices"
)

// Fill starts recording a fill path when flag is true. Ending it, or
// starting a new one, fills the recorded outline with the fill color if it
// has at least three points.
func (t *Turtle) Fill(flag bool) error {
	t.checkpoint(ActionFill)
	return t.fill(flag)
}

func (t *Turtle) fill(flag bool) error {
	s := t.screen
	if t.filling && len(t.fillPath) > 2 {
		s.drawPoly(t.fillItem, closedPath(t.fillPath), t.pen.FillColor, "", 1, false, true)
	}
	if flag {
		t.filling = true
		t.fillItem = s.surface.CreatePolygon()
		t.items = append(t.items, t.fillItem)
		t.fillPath = []Vec2{t.nav.position}
		t.newLine(true)
	} else {
		t.filling, t.fillItem, t.fillPath = false, 0, nil
	}
	return t.update(true, false)
}

// closedPath drops a final vertex that returns to the first one; the
// polygon closes itself.
func closedPath(path []Vec2) []Vec2 {
	n := len(path)
	if n > 3 && path[n-1].Approx(path[0], 1e-9) {
		return path[:n-1]
	}
	return path
}

// BeginFill is Fill(true).
func (t *Turtle) BeginFill() error { return t.Fill(true) }

// EndFill is Fill(false).
func (t *Turtle) EndFill() error { return t.Fill(false) }

// Filling reports whether a fill path is being recorded.
func (t *Turtle) Filling() bool { return t.filling }

// Dot draws a round dot of diameter size at the current position in the
// pen color, or in c when it is not NoColor. A size of 0 means pen size
// plus 4. The pen is left as it was.
func (t *Turtle) Dot(size float64, c Color) error {
	if size < 0 {
		return argError("dot size %v", size)
	}
	saved := t.pen
	p := t.pen
	p.Shown = false
	p.Down = true
	if size > 0 {
		p.Size = size
	} else {
		p.Size = t.pen.Size + 4
	}
	if c != NoColor {
		v, err := t.screen.ResolveColor(c)
		if err != nil {
			return err
		}
		p.PenColor = v
	}
	t.checkpoint(ActionDot)
	if err := t.applyPen(p); err != nil {
		return err
	}
	if err := t.moveTo(t.nav.position); err != nil {
		return err
	}
	return t.applyPen(saved)
}

// Write puts text at the turtle position in the pen color. With move set
// the turtle then moves to the right end of the text.
func (t *Turtle) Write(text string, move bool, align Align, font Font) error {
	s := t.screen
	at := s.toSurface(t.nav.position)
	t.checkpoint(ActionWrite)
	id, right := s.surface.CreateText(V(at.X-1, at.Y), text, align, font, t.pen.PenColor)
	t.items = append(t.items, id)
	s.surface.Update()
	if !move {
		return nil
	}
	return t.moveTo(V((right-1)/s.xscale, t.nav.position.Y))
}

// Writef writes a formatted string with the default font, left aligned.
func (t *Turtle) Writef(format string, args ...any) error {
	return t.Write(fmt.Sprintf(format, args...), false, AlignLeft, DefaultFont)
}

// PolyStart starts recording the vertices the turtle visits, beginning
// with the current position.
func (t *Turtle) PolyStart() {
	t.poly = []Vec2{t.screen.scaled(t.nav.position)}
	t.creatingPoly = true
}

// PolyEnd stops recording vertices.
func (t *Turtle) PolyEnd() {
	t.creatingPoly = false
}

// Poly returns the last recorded polygon in scaled world units, ready for
// NewPolygon.
func (t *Turtle) Poly() []Vec2 {
	return slices.Clone(t.poly)
}
