package turtle

import "slices"

// action is one undoable turtle operation: the state the turtle was in
// right before it ran.
type action struct {
	Type ActionType

	nav             Navigator
	pen             PenState
	shapeName       string
	items           int
	currentLineItem ItemID
	currentLine     []Vec2
	filling         bool
	fillItem        ItemID
	fillPath        []Vec2
	creatingPoly    bool
	poly            []Vec2
}

type undoBuffer struct {
	size      int
	undoStack []action
}

func newUndoBuffer(size int) *undoBuffer {
	return &undoBuffer{size: max(size, 0)}
}

func (b *undoBuffer) push(a action) {
	if b.size == 0 {
		return
	}
	if len(b.undoStack) >= b.size {
		b.undoStack = slices.Delete(b.undoStack, 0, len(b.undoStack)-b.size+1)
	}
	b.undoStack = append(b.undoStack, a)
}

func (b *undoBuffer) pop() (action, bool) {
	if len(b.undoStack) == 0 {
		return action{}, false
	}
	last := len(b.undoStack) - 1
	a := b.undoStack[last]
	b.undoStack = b.undoStack[:last]
	return a, true
}

func (b *undoBuffer) drop() {
	b.undoStack = nil
}

func (t *Turtle) checkpoint(typ ActionType) {
	t.undo.push(action{
		Type:            typ,
		nav:             t.nav,
		pen:             t.pen,
		shapeName:       t.shapeName,
		items:           len(t.items),
		currentLineItem: t.currentLineItem,
		currentLine:     slices.Clone(t.currentLine),
		filling:         t.filling,
		fillItem:        t.fillItem,
		fillPath:        slices.Clone(t.fillPath),
		creatingPoly:    t.creatingPoly,
		poly:            slices.Clone(t.poly),
	})
}

// SetUndoBuffer sets how many actions Undo can take back and forgets the
// recorded ones. Zero disables undo.
func (t *Turtle) SetUndoBuffer(size int) error {
	if size < 0 {
		return argError("undo buffer size %d", size)
	}
	t.undo = newUndoBuffer(size)
	return nil
}

// UndoBufferEntries returns how many actions can be undone.
func (t *Turtle) UndoBufferEntries() int {
	return len(t.undo.undoStack)
}

// Undo takes back the last action: the turtle returns to where it was
// with its old pen, and whatever the action drew is erased. Clear, ClearN
// and Reset cannot be undone and forget earlier actions.
func (t *Turtle) Undo() error {
	a, ok := t.undo.pop()
	if !ok {
		return nil
	}
	s := t.screen
	if a.items > len(t.items) {
		// the items were cleared after this action was recorded
		t.undo.drop()
		return nil
	}
	for _, id := range t.items[a.items:] {
		s.surface.Delete(id)
	}
	t.items = t.items[:a.items]

	t.nav = a.nav
	t.pen = a.pen
	t.currentLineItem = a.currentLineItem
	t.currentLine = a.currentLine
	if len(t.currentLine) > 1 {
		t.drawCurrentLine()
	} else {
		s.surface.DrawLine(t.currentLineItem, nil, "", t.pen.Size)
	}
	s.surface.DrawLine(t.drawingLine, nil, "", t.pen.Size)

	// an open fill is drawn only when it ends
	if a.filling {
		s.surface.DrawPolygon(a.fillItem, nil, "", "", 0)
	}
	t.filling, t.fillItem, t.fillPath = a.filling, a.fillItem, a.fillPath
	t.creatingPoly, t.poly = a.creatingPoly, a.poly

	if a.shapeName != t.shapeName {
		if shape, err := s.shapes.Get(a.shapeName); err == nil {
			t.allocIcon(shape)
			t.shapeName = a.shapeName
		}
	}
	Logger().Debug("undo", "action", a.Type.String(), "left", len(t.undo.undoStack))
	return t.update(false, true)
}
