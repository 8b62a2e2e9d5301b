package turtle

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeRegistryBuiltins(t *testing.T) {
	r := NewShapeRegistry()
	assert.Equal(t, []string{"arrow", "blank", "circle", "turtle"}, r.Names())

	s, err := r.Get("arrow")
	require.NoError(t, err)
	require.IsType(t, &Polygon{}, s)
	assert.Len(t, s.(*Polygon).Points, 3)

	_, err = r.Get("dragon")
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestShapeRegistryAdd(t *testing.T) {
	r := NewShapeRegistry()
	tri := NewPolygon(V(0, 0), V(10, 0), V(5, 5))
	require.NoError(t, r.Add("tri", tri))

	got, err := r.Get("tri")
	require.NoError(t, err)
	assert.Same(t, tri, got)

	// re-adding replaces
	sq := NewPolygon(V(0, 0), V(1, 0), V(1, 1), V(0, 1))
	require.NoError(t, r.Add("tri", sq))
	got, _ = r.Get("tri")
	assert.Same(t, sq, got)

	cases := []struct {
		name  string
		shape Shape
	}{
		{"line", NewPolygon(V(0, 0), V(1, 1))},
		{"noimage", &ImageShape{}},
		{"empty compound", &Compound{}},
		{"nil", nil},
	}
	for _, c := range cases {
		err := r.Add(c.name, c.shape)
		assert.True(t, errors.Is(err, ErrInvalidArgument), c.name)
	}
	assert.NotContains(t, r.Names(), "line")
}

func TestCompoundAddComponent(t *testing.T) {
	var c Compound
	require.NoError(t, c.AddComponent([]Vec2{{0, 0}, {10, 0}, {5, 10}}, "red", ""))
	require.NoError(t, c.AddComponent([]Vec2{{0, 0}, {-10, 0}, {-5, 10}}, "blue", "black"))
	require.Len(t, c.Parts, 2)
	assert.Equal(t, "red", c.Parts[0].Outline)
	assert.Equal(t, 2, itemCount(&c))

	err := c.AddComponent([]Vec2{{0, 0}, {1, 1}}, "red", "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	err = c.AddComponent([]Vec2{{0, 0}, {1, 1}, {2, 0}}, "nope", "")
	assert.True(t, errors.Is(err, ErrInvalidColor))
}

func TestItemCount(t *testing.T) {
	assert.Equal(t, 1, itemCount(NewPolygon(V(0, 0), V(1, 0), V(0, 1))))
	assert.Equal(t, 1, itemCount(&ImageShape{Image: image.NewRGBA(image.Rect(0, 0, 2, 2))}))
}
