package turtle

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector. All operations return new values.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Dot returns the inner product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Abs returns the magnitude of v.
func (v Vec2) Abs() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rotate returns v rotated counterclockwise by angle degrees.
func (v Vec2) Rotate(angle float64) Vec2 {
	perp := Vec2{-v.Y, v.X}
	rad := angle * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec2{v.X*c + perp.X*s, v.Y*c + perp.Y*s}
}

// Approx reports whether v and w differ by less than eps on both axes.
func (v Vec2) Approx(w Vec2, eps float64) bool {
	return math.Abs(v.X-w.X) < eps && math.Abs(v.Y-w.Y) < eps
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}
