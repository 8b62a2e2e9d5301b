package turtle

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// Shape is a turtle icon definition. It is one of *Polygon, *ImageShape or
// *Compound. Polygon points are given with the turtle facing up.
type Shape interface {
	shape()
}

// Polygon is a single outline filled with the turtle's fill color and
// outlined with its pen color.
type Polygon struct {
	Points []Vec2
}

// ImageShape is a bitmap centered on the turtle. It does not rotate.
type ImageShape struct {
	Image image.Image
}

// Compound is a list of colored polygons drawn together.
type Compound struct {
	Parts []CompoundPart
}

// CompoundPart is one polygon of a Compound with its own colors.
type CompoundPart struct {
	Points  []Vec2
	Fill    string
	Outline string
}

func (*Polygon) shape()    {}
func (*ImageShape) shape() {}
func (*Compound) shape()   {}

// NewPolygon returns a polygon shape from x, y pairs.
func NewPolygon(points ...Vec2) *Polygon {
	return &Polygon{Points: append([]Vec2(nil), points...)}
}

// AddComponent appends a polygon with fill and outline colors. An empty
// outline uses the fill color.
func (c *Compound) AddComponent(points []Vec2, fill, outline string) error {
	if len(points) < 3 {
		return argError("compound component needs 3 points, got %d", len(points))
	}
	if outline == "" {
		outline = fill
	}
	for _, s := range []string{fill, outline} {
		if s != "" && !IsColorString(s) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	c.Parts = append(c.Parts, CompoundPart{Points: append([]Vec2(nil), points...), Fill: fill, Outline: outline})
	return nil
}

// itemCount returns how many surface items an icon of this shape needs.
func itemCount(s Shape) int {
	switch s := s.(type) {
	case *Polygon, *ImageShape:
		return 1
	case *Compound:
		return len(s.Parts)
	}
	return 0
}

// blankImage is a 1x1 transparent bitmap used for hidden image icons.
var blankImage image.Image = func() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.Transparent)
	return img
}()

// ShapeRegistry maps names to shapes. Adding an existing name replaces it.
type ShapeRegistry struct {
	shapes map[string]Shape
}

// NewShapeRegistry returns a registry holding the built-in shapes
// arrow, turtle, circle and blank.
func NewShapeRegistry() *ShapeRegistry {
	r := &ShapeRegistry{shapes: make(map[string]Shape)}
	r.shapes["arrow"] = NewPolygon(V(-10, 0), V(10, 0), V(0, 10))
	r.shapes["turtle"] = NewPolygon(V(0, 16), V(-2, 14), V(-1, 10), V(-4, 7),
		V(-7, 9), V(-9, 8), V(-6, 5), V(-7, 1), V(-5, -3), V(-8, -6),
		V(-6, -8), V(-4, -5), V(0, -7), V(4, -5), V(6, -8), V(8, -6),
		V(5, -3), V(7, 1), V(6, 5), V(9, 8), V(7, 9), V(4, 7), V(1, 10),
		V(2, 14))
	r.shapes["circle"] = NewPolygon(V(10, 0), V(9.51, 3.09), V(8.09, 5.88),
		V(5.88, 8.09), V(3.09, 9.51), V(0, 10), V(-3.09, 9.51),
		V(-5.88, 8.09), V(-8.09, 5.88), V(-9.51, 3.09), V(-10, 0),
		V(-9.51, -3.09), V(-8.09, -5.88), V(-5.88, -8.09),
		V(-3.09, -9.51), V(-0.00, -10.00), V(3.09, -9.51),
		V(5.88, -8.09), V(8.09, -5.88), V(9.51, -3.09))
	r.shapes["blank"] = &ImageShape{Image: blankImage}
	return r
}

// Add registers s under name.
func (r *ShapeRegistry) Add(name string, s Shape) error {
	switch s := s.(type) {
	case *Polygon:
		if len(s.Points) < 3 {
			return argError("polygon shape %q needs 3 points, got %d", name, len(s.Points))
		}
	case *ImageShape:
		if s.Image == nil {
			return argError("image shape %q has no image", name)
		}
	case *Compound:
		if len(s.Parts) == 0 {
			return argError("compound shape %q has no components", name)
		}
	default:
		return argError("shape %q of type %T", name, s)
	}
	r.shapes[name] = s
	Logger().Debug("shape registered", "name", name, "type", fmt.Sprintf("%T", s))
	return nil
}

// Get returns the shape registered under name.
func (r *ShapeRegistry) Get(name string) (Shape, error) {
	s, ok := r.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShape, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *ShapeRegistry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for n := range r.shapes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
