package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoForward(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.Forward(100))
	require.Len(t, surface.ItemsOf(ItemLine), 1)

	require.NoError(t, tu.Undo())
	assert.Equal(t, Vec2{}, tu.Pos())
	assert.Empty(t, surface.ItemsOf(ItemLine))
	assert.Equal(t, 0, tu.UndoBufferEntries())

	// nothing left to undo
	require.NoError(t, tu.Undo())
	assert.Equal(t, Vec2{}, tu.Pos())
}

func TestUndoAcrossPenUp(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.Forward(10))
	require.NoError(t, tu.Left(90))
	require.NoError(t, tu.Forward(10))
	tu.PenUp()
	require.NoError(t, tu.Forward(10))

	require.NoError(t, tu.Undo())
	assert.True(t, tu.Pos().Approx(V(10, 10), 1e-9))
	assert.False(t, tu.IsDown())

	require.NoError(t, tu.Undo())
	assert.True(t, tu.IsDown())
	lines := surface.ItemsOf(ItemLine)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Points, 3)

	require.NoError(t, tu.Undo())
	assert.InDelta(t, 90, tu.Heading(), 1e-9)
	assert.Equal(t, V(10, 0), tu.Pos())
	lines = surface.ItemsOf(ItemLine)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Points, 2)
}

func TestUndoEndFill(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.SetFillColor(Named("red")))
	require.NoError(t, tu.BeginFill())
	for i := 0; i < 3; i++ {
		require.NoError(t, tu.Forward(20))
		require.NoError(t, tu.Left(120))
	}
	fillItem := tu.fillItem
	require.NoError(t, tu.EndFill())
	it, ok := surface.Item(fillItem)
	require.True(t, ok)
	assert.True(t, it.Visible())

	require.NoError(t, tu.Undo())
	assert.True(t, tu.Filling())
	it, _ = surface.Item(fillItem)
	assert.False(t, it.Visible())

	require.NoError(t, tu.EndFill())
	it, _ = surface.Item(fillItem)
	assert.True(t, it.Visible())
}

func TestUndoPenAndShape(t *testing.T) {
	tu, _ := newTestTurtle(t)
	require.NoError(t, tu.SetPenColor(Named("red")))
	require.NoError(t, tu.SetShape("turtle"))

	require.NoError(t, tu.Undo())
	assert.Equal(t, "arrow", tu.ShapeName())
	assert.Equal(t, "red", tu.PenColor())

	require.NoError(t, tu.Undo())
	assert.Equal(t, "black", tu.PenColor())
}

func TestUndoBufferBound(t *testing.T) {
	tu, _ := newTestTurtle(t)
	require.NoError(t, tu.SetUndoBuffer(3))
	for i := 0; i < 5; i++ {
		require.NoError(t, tu.Forward(10))
	}
	assert.Equal(t, 3, tu.UndoBufferEntries())
	for i := 0; i < 4; i++ {
		require.NoError(t, tu.Undo())
	}
	assert.Equal(t, V(20, 0), tu.Pos())

	assert.Error(t, tu.SetUndoBuffer(-1))
	require.NoError(t, tu.SetUndoBuffer(0))
	require.NoError(t, tu.Forward(10))
	assert.Equal(t, 0, tu.UndoBufferEntries())
	require.NoError(t, tu.Undo())
	assert.Equal(t, V(30, 0), tu.Pos())
}

func TestUndoForgottenByReset(t *testing.T) {
	tu, _ := newTestTurtle(t)
	require.NoError(t, tu.Forward(10))
	require.NoError(t, tu.Reset())
	assert.Equal(t, 0, tu.UndoBufferEntries())
	require.NoError(t, tu.Forward(10))
	require.NoError(t, tu.Clear())
	assert.Equal(t, 0, tu.UndoBufferEntries())
}

func TestUndoAfterDestroy(t *testing.T) {
	tu, _ := newTestTurtle(t)
	require.NoError(t, tu.Forward(10))
	require.NoError(t, tu.Destroy())
	assert.Zero(t, tu.UndoBufferEntries())
	assert.NotPanics(t, func() { assert.NoError(t, tu.Undo()) })
}

func TestUndoStaleItemCount(t *testing.T) {
	tu, _ := newTestTurtle(t)
	require.NoError(t, tu.Forward(10))
	require.NoError(t, tu.Forward(10))
	tu.items = nil
	assert.NotPanics(t, func() { assert.NoError(t, tu.Undo()) })
	assert.Zero(t, tu.UndoBufferEntries())
}
