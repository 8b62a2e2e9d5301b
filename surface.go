package turtle

import "image"

// ItemID identifies a primitive on a Surface.
type ItemID int

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	Min, Max Vec2
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Surface is the drawable a Screen renders into. Coordinates are surface
// coordinates: pixels with the origin at the canvas center and y growing
// downward. The visible part is the scroll region.
//
// Items are retained: once created they stay on the surface until deleted
// and are reconfigured in place by the Draw methods. Newer items are drawn
// above older ones unless raised or lowered.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (width, height int)
	// Resize changes the canvas size.
	Resize(width, height int)

	CreateLine() ItemID
	// DrawLine replaces the points, color and width of a line item.
	DrawLine(id ItemID, pts []Vec2, color string, width float64)

	CreatePolygon() ItemID
	// DrawPolygon replaces the points and colors of a polygon item. An
	// empty fill or outline color leaves that part undrawn.
	DrawPolygon(id ItemID, pts []Vec2, fill, outline string, width float64)

	CreateImage(img image.Image) ItemID
	// DrawImage centers img at the given point.
	DrawImage(id ItemID, at Vec2, img image.Image)

	// CreateText places text with its baseline at at, anchored by align,
	// and returns the item and the x coordinate of its right edge.
	CreateText(at Vec2, text string, align Align, font Font, color string) (ItemID, float64)

	Raise(id ItemID)
	Lower(id ItemID)
	Delete(id ItemID)

	// Update presents the current items to the viewer.
	Update()

	Background() string
	SetBackground(color string)

	ScrollRegion() Rect
	SetScrollRegion(r Rect)
}
