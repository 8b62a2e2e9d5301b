package turtle

// hiddenPoly is the zero-area outline drawn into icon items that are off.
var hiddenPoly = []Vec2{{}, {}, {}}

// ShapeName returns the name of the turtle's shape.
func (t *Turtle) ShapeName() string { return t.shapeName }

// SetShape changes the turtle's icon to the shape registered under name.
func (t *Turtle) SetShape(name string) error {
	shape, err := t.screen.shapes.Get(name)
	if err != nil {
		return err
	}
	t.checkpoint(ActionShape)
	t.allocIcon(shape)
	t.shapeName = name
	return t.update(true, false)
}

// allocIcon replaces the icon items with fresh ones fitting shape.
func (t *Turtle) allocIcon(shape Shape) {
	surface := t.screen.surface
	for _, id := range t.iconItems {
		surface.Delete(id)
	}
	t.iconItems = make([]ItemID, 0, itemCount(shape))
	switch sh := shape.(type) {
	case *Polygon:
		t.iconItems = append(t.iconItems, surface.CreatePolygon())
	case *ImageShape:
		t.iconItems = append(t.iconItems, surface.CreateImage(blankImage))
	case *Compound:
		for range sh.Parts {
			t.iconItems = append(t.iconItems, surface.CreatePolygon())
		}
	}
	t.icon = shape
	t.hiddenFromScreen = false
}

// drawIcon draws the icon at the turtle's position and heading. When the
// turtle is hidden or the throttle holds back this update, the icon is
// blanked, once.
func (t *Turtle) drawIcon() {
	s := t.screen
	if shape, err := s.shapes.Get(t.shapeName); err == nil && shape != t.icon {
		t.allocIcon(shape)
	}
	if t.pen.Shown && s.updateCounter == 0 && s.tracing > 0 {
		t.hiddenFromScreen = false
		t.showIcon()
		return
	}
	if t.hiddenFromScreen {
		return
	}
	switch t.icon.(type) {
	case *Polygon, *Compound:
		for _, id := range t.iconItems {
			s.surface.DrawPolygon(id, hiddenPoly, "", "", 0)
		}
	case *ImageShape:
		s.surface.DrawImage(t.iconItems[0], s.toSurface(t.nav.position), blankImage)
	}
	t.hiddenFromScreen = true
}

func (t *Turtle) showIcon() {
	s := t.screen
	switch sh := t.icon.(type) {
	case *Polygon:
		pts, w := sh.Points, 1.0
		switch t.pen.ResizeMode {
		case ResizeAuto:
			pts, w = scalePoints(pts, max(1, t.pen.Size/5)), t.pen.Size
		case ResizeUser:
			pts, w = scalePoints(pts, t.pen.Stretch), t.pen.Outline
		}
		s.drawPoly(t.iconItems[0], t.polytrafo(pts), t.pen.FillColor, t.pen.PenColor, w, true, false)
	case *ImageShape:
		s.surface.DrawImage(t.iconItems[0], s.toSurface(t.nav.position), sh.Image)
	case *Compound:
		for i, part := range sh.Parts {
			pts := t.polytrafo(scalePoints(part.Points, t.pen.Stretch))
			s.drawPoly(t.iconItems[i], pts, part.Fill, part.Outline, t.pen.Outline, true, false)
		}
	}
}

// polytrafo turns shape points, given facing up, to the turtle's heading
// and moves them to its scaled position.
func (t *Turtle) polytrafo(pts []Vec2) []Vec2 {
	p := t.screen.scaled(t.nav.position)
	e := t.nav.orient
	out := make([]Vec2, len(pts))
	for i, q := range pts {
		out[i] = V(p.X+e.Y*q.X+e.X*q.Y, p.Y-e.X*q.X+e.Y*q.Y)
	}
	return out
}

func scalePoints(pts []Vec2, k float64) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, q := range pts {
		out[i] = q.Mul(k)
	}
	return out
}
