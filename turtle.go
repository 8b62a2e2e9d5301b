package turtle

import (
	"slices"
)

// Turtle is a drawing agent on a Screen. It owns a Navigator and a pen, an
// open line batch that grows while the pen moves, and every surface item it
// has drawn. Turtles are not safe for concurrent use; all calls on turtles
// sharing a screen must come from one goroutine.
type Turtle struct {
	nav    Navigator
	pen    PenState
	screen *Screen

	shapeName        string
	icon             Shape
	iconItems        []ItemID
	hiddenFromScreen bool

	drawingLine     ItemID
	currentLineItem ItemID
	currentLine     []Vec2
	items           []ItemID

	filling  bool
	fillItem ItemID
	fillPath []Vec2

	creatingPoly bool
	poly         []Vec2

	undo *undoBuffer
}

// NewTurtle places a turtle with the named shape at the origin of screen.
func NewTurtle(screen *Screen, shape string, mode Mode) (*Turtle, error) {
	icon, err := screen.shapes.Get(shape)
	if err != nil {
		return nil, err
	}
	t := &Turtle{
		nav:       NewNavigator(),
		pen:       defaultPen(ResizeAuto),
		screen:    screen,
		shapeName: shape,
		undo:      newUndoBuffer(screen.win.opts.UndoBuffer),
	}
	if mode != ModeStandard {
		t.nav.SetMode(mode)
	}
	screen.attach(t)
	t.drawingLine = screen.surface.CreateLine()
	t.allocIcon(icon)
	t.currentLineItem = screen.surface.CreateLine()
	t.currentLine = []Vec2{t.nav.position}
	t.items = []ItemID{t.currentLineItem}
	if err := t.update(true, false); err != nil {
		return t, err
	}
	return t, nil
}

// Screen returns the screen the turtle draws on.
func (t *Turtle) Screen() *Screen { return t.screen }

// Reset clears the turtle's drawings, moves it home and restores the
// default pen. The resize mode and the angle unit are kept.
func (t *Turtle) Reset() error {
	t.nav.Reset()
	t.pen = defaultPen(t.pen.ResizeMode)
	t.clear(nil)
	t.undo.drop()
	t.drawIcon()
	return t.update(true, false)
}

// Clear deletes the turtle's drawings. The turtle does not move.
func (t *Turtle) Clear() error {
	t.clear(nil)
	t.undo.drop()
	return t.update(true, false)
}

// ClearN deletes part of the turtle's drawings: the newest n items for
// n > 0, the oldest -n items for n < 0.
func (t *Turtle) ClearN(n int) error {
	t.clear(&n)
	t.undo.drop()
	return t.update(true, false)
}

func (t *Turtle) clear(n *int) {
	surface := t.screen.surface
	t.filling, t.fillItem, t.fillPath = false, 0, nil
	if n == nil {
		for _, id := range t.items {
			surface.Delete(id)
		}
		t.startLine()
		t.items = []ItemID{t.currentLineItem}
		return
	}
	k := *n
	if k > 0 && len(t.currentLine) < 2 {
		k++
	}
	cut := -k
	if cut < 0 {
		cut += len(t.items)
	}
	cut = min(max(cut, 0), len(t.items))
	remove, keep := t.items[:cut], t.items[cut:]
	if k > 0 {
		remove, keep = keep, remove
	}
	for _, id := range remove {
		surface.Delete(id)
	}
	t.items = slices.Clone(keep)
	if !slices.Contains(t.items, t.currentLineItem) {
		t.startLine()
		t.items = append(t.items, t.currentLineItem)
	}
}

// startLine opens a fresh empty line batch.
func (t *Turtle) startLine() {
	t.currentLineItem = t.screen.surface.CreateLine()
	t.currentLine = nil
	if t.pen.Down {
		t.currentLine = []Vec2{t.nav.position}
	}
}

// Destroy removes the turtle and everything it drew from its screen.
func (t *Turtle) Destroy() error {
	surface := t.screen.surface
	for _, id := range t.items {
		surface.Delete(id)
	}
	for _, id := range t.iconItems {
		surface.Delete(id)
	}
	surface.Delete(t.drawingLine)
	t.items, t.iconItems, t.currentLine = nil, nil, nil
	t.undo.drop()
	t.screen.detach(t)
	return t.screen.refresh(true)
}

// Clone returns a new turtle on the same screen with the same position,
// heading, pen and shape. The clone gets its own surface items.
func (t *Turtle) Clone() (*Turtle, error) {
	t.newLine(t.pen.Down)
	surface := t.screen.surface
	q := &Turtle{
		nav:          t.nav,
		pen:          t.pen,
		screen:       t.screen,
		shapeName:    t.shapeName,
		currentLine:  slices.Clone(t.currentLine),
		filling:      t.filling,
		fillPath:     slices.Clone(t.fillPath),
		creatingPoly: t.creatingPoly,
		poly:         slices.Clone(t.poly),
		undo:         newUndoBuffer(t.undo.size),
	}
	q.drawingLine = surface.CreateLine()
	q.allocIcon(t.icon)
	q.currentLineItem = surface.CreateLine()
	q.items = []ItemID{q.currentLineItem}
	if q.filling {
		q.fillItem = surface.CreatePolygon()
		q.items = append(q.items, q.fillItem)
	}
	t.screen.attach(q)
	return q, q.update(true, false)
}

// Mode returns the heading convention.
func (t *Turtle) Mode() Mode { return t.nav.Mode() }

// SetMode switches the heading convention and resets the turtle.
func (t *Turtle) SetMode(m Mode) error {
	t.nav.SetMode(m)
	return t.Reset()
}

// Degrees sets the angle unit so that fullcircle units make one turn.
func (t *Turtle) Degrees(fullcircle float64) error {
	return t.nav.Degrees(fullcircle)
}

// Radians sets the angle unit to radians.
func (t *Turtle) Radians() { t.nav.Radians() }

// Pos returns the position in world coordinates.
func (t *Turtle) Pos() Vec2 { return t.nav.Pos() }

// XCor returns the x coordinate.
func (t *Turtle) XCor() float64 { return t.nav.XCor() }

// YCor returns the y coordinate.
func (t *Turtle) YCor() float64 { return t.nav.YCor() }

// Heading returns the heading in the current mode and angle unit.
func (t *Turtle) Heading() float64 { return t.nav.Heading() }

// Towards returns the heading that points at p.
func (t *Turtle) Towards(p Vec2) float64 { return t.nav.Towards(p) }

// TowardsTurtle returns the heading that points at o.
func (t *Turtle) TowardsTurtle(o *Turtle) float64 { return t.nav.Towards(o.Pos()) }

// Distance returns the distance to p.
func (t *Turtle) Distance(p Vec2) float64 { return t.nav.Distance(p) }

// DistanceTo returns the distance to o.
func (t *Turtle) DistanceTo(o *Turtle) float64 { return t.nav.Distance(o.Pos()) }

// Update redraws all turtles on the screen regardless of tracing.
func (t *Turtle) Update() error {
	return t.update(true, true)
}

// Tracer returns the screen's tracing level.
func (t *Turtle) Tracer() int { return t.screen.tracing }

// SetTracer sets the screen's tracing level with the standard delay.
func (t *Turtle) SetTracer(n int) error {
	return t.SetTracerDelay(n, StandardDelay)
}

// SetTracerDelay sets the screen's tracing level and delay. Open line
// batches of all turtles are drawn first so nothing is lost when tracing
// was throttled.
func (t *Turtle) SetTracerDelay(n, delay int) error {
	s := t.screen
	if s.tracing != 1 {
		for _, o := range s.turtles {
			o.drawCurrentLine()
		}
	}
	if err := s.SetTracerDelay(n, delay); err != nil {
		return err
	}
	return t.update(true, true)
}

// Delay returns the screen's redraw delay in milliseconds.
func (t *Turtle) Delay() int { return t.screen.Delay() }

// SetDelay sets the screen's redraw delay in milliseconds.
func (t *Turtle) SetDelay(ms int) error { return t.screen.SetDelay(ms) }

// update counts one logical update and redraws the screen's turtles when
// the throttle lets it through.
func (t *Turtle) update(count, forced bool) error {
	s := t.screen
	if count {
		s.incrementCounter()
	}
	if forced || (s.tracing != 0 && s.updateCounter == 0) {
		for _, o := range s.turtles {
			o.drawIcon()
			o.drawCurrentLine()
		}
	}
	return s.refresh(forced)
}

func (t *Turtle) drawCurrentLine() {
	if len(t.currentLine) > 1 {
		t.screen.drawLine(t.currentLineItem, t.currentLine, t.pen.PenColor, t.pen.Size)
	}
}

// newLine commits the open batch as a finished line and opens a new one,
// starting at the current position when usePos is set.
func (t *Turtle) newLine(usePos bool) {
	s := t.screen
	if len(t.currentLine) > 1 {
		s.drawLine(t.currentLineItem, t.currentLine, t.pen.PenColor, t.pen.Size)
		t.currentLineItem = s.surface.CreateLine()
		t.items = append(t.items, t.currentLineItem)
	} else {
		s.surface.Raise(t.currentLineItem)
	}
	t.currentLine = nil
	if usePos {
		t.currentLine = []Vec2{t.nav.position}
	}
}
