package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iconTip returns the surface position of the arrow's tip.
func iconTip(t *testing.T, tu *Turtle, surface *RecordingSurface) Vec2 {
	t.Helper()
	it, ok := surface.Item(tu.iconItems[0])
	require.True(t, ok)
	require.Len(t, it.Points, 3)
	return it.Points[2]
}

func TestIconFollowsHeading(t *testing.T) {
	tu, surface := newTestTurtle(t)
	assert.True(t, iconTip(t, tu, surface).Approx(V(10, 0), 1e-9))

	require.NoError(t, tu.Left(90))
	assert.True(t, iconTip(t, tu, surface).Approx(V(0, -10), 1e-9))

	require.NoError(t, tu.Goto(5, 5))
	assert.True(t, iconTip(t, tu, surface).Approx(V(5, -15), 1e-9))
}

func TestIconResizeModes(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.SetPenSize(10))
	assert.True(t, iconTip(t, tu, surface).Approx(V(20, 0), 1e-9))
	it, _ := surface.Item(tu.iconItems[0])
	assert.Equal(t, 10.0, it.Width)

	require.NoError(t, tu.SetResizeMode(ResizeUser))
	require.NoError(t, tu.SetTurtleSize(3, 2))
	assert.True(t, iconTip(t, tu, surface).Approx(V(30, 0), 1e-9))
	it, _ = surface.Item(tu.iconItems[0])
	assert.Equal(t, 2.0, it.Width)

	require.NoError(t, tu.SetResizeMode(ResizeNone))
	assert.True(t, iconTip(t, tu, surface).Approx(V(10, 0), 1e-9))
	it, _ = surface.Item(tu.iconItems[0])
	assert.Equal(t, 1.0, it.Width)
}

func TestIconHidden(t *testing.T) {
	tu, surface := newTestTurtle(t)
	require.NoError(t, tu.HideTurtle())
	assert.False(t, tu.IsVisible())
	it, _ := surface.Item(tu.iconItems[0])
	assert.False(t, it.Visible())

	require.NoError(t, tu.ShowTurtle())
	it, _ = surface.Item(tu.iconItems[0])
	assert.True(t, it.Visible())
}

func TestIconCompoundShape(t *testing.T) {
	tu, surface := newTestTurtle(t)
	var c Compound
	require.NoError(t, c.AddComponent([]Vec2{{0, 0}, {10, 0}, {5, 10}}, "red", ""))
	require.NoError(t, c.AddComponent([]Vec2{{0, 0}, {-10, 0}, {-5, 10}}, "blue", "black"))
	require.NoError(t, tu.Screen().AddShape("pair", &c))

	require.NoError(t, tu.SetShape("pair"))
	require.Len(t, tu.iconItems, 2)
	a, _ := surface.Item(tu.iconItems[0])
	b, _ := surface.Item(tu.iconItems[1])
	assert.Equal(t, "red", a.Fill)
	assert.Equal(t, "blue", b.Fill)
	assert.Equal(t, "black", b.Outline)
	assert.True(t, a.Visible())

	// re-registering the shape swaps the icon on the next redraw
	require.NoError(t, tu.Screen().AddShape("pair", NewPolygon(V(0, 0), V(1, 0), V(0, 1))))
	require.NoError(t, tu.Update())
	assert.Len(t, tu.iconItems, 1)
}

func TestIconSetShapeUnknown(t *testing.T) {
	tu, _ := newTestTurtle(t)
	assert.ErrorIs(t, tu.SetShape("dragon"), ErrInvalidShape)
	assert.Equal(t, "arrow", tu.ShapeName())
}
