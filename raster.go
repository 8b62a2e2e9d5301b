package turtle

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// RasterSurface records items like RecordingSurface and renders them into
// an image on demand.
type RasterSurface struct {
	*RecordingSurface
}

// NewRasterSurface returns a raster surface with the given canvas size.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{RecordingSurface: NewRecordingSurface(width, height)}
}

// Render draws the visible scroll region into a new image.
func (s *RasterSurface) Render() image.Image {
	return s.context().Image()
}

// SavePNG renders the surface and writes it to path.
func (s *RasterSurface) SavePNG(path string) error {
	if err := s.context().SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	Logger().Info("image saved", "path", path)
	return nil
}

// EncodePNG renders the surface and writes PNG data to w.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.context().EncodePNG(w)
}

func (s *RasterSurface) context() *gg.Context {
	w, h := s.Size()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	if bg, ok := ParseColor(s.Background()); ok {
		dc.SetColor(bg)
	} else {
		dc.SetColor(color.White)
	}
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, it := range s.Items() {
		if !it.Visible() {
			continue
		}
		switch it.Kind {
		case ItemLine:
			s.drawLine(dc, it)
		case ItemPolygon:
			s.drawPolygon(dc, it)
		case ItemImage:
			p := s.PixelPoint(it.At)
			dc.DrawImageAnchored(it.Image, int(p.X), int(p.Y), 0.5, 0.5)
		case ItemText:
			s.drawText(dc, it)
		}
	}
	return dc
}

func (s *RasterSurface) path(dc *gg.Context, pts []Vec2) {
	dc.ClearPath()
	for i, pt := range pts {
		p := s.PixelPoint(pt)
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
}

func (s *RasterSurface) drawLine(dc *gg.Context, it Item) {
	c, ok := ParseColor(it.Fill)
	if !ok {
		return
	}
	s.path(dc, it.Points)
	dc.SetColor(c)
	dc.SetLineWidth(max(it.Width, 1))
	dc.Stroke()
}

func (s *RasterSurface) drawPolygon(dc *gg.Context, it Item) {
	s.path(dc, it.Points)
	dc.ClosePath()
	if c, ok := ParseColor(it.Fill); ok {
		dc.SetColor(c)
		dc.FillPreserve()
	}
	if c, ok := ParseColor(it.Outline); ok {
		dc.SetColor(c)
		dc.SetLineWidth(max(it.Width, 1))
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

func (s *RasterSurface) drawText(dc *gg.Context, it Item) {
	c, ok := ParseColor(it.Fill)
	if !ok {
		return
	}
	dc.SetFontFace(fontFace(it.Font))
	dc.SetColor(c)
	p := s.PixelPoint(it.At)
	var ax float64
	switch it.Align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	dc.DrawStringAnchored(it.Text, p.X, p.Y, ax, 0)
}
