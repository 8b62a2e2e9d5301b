package main

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"turtle"
)

// cell is one character of the terminal canvas.
type cell struct {
	r     rune
	color string
}

// frame is a rasterized snapshot of the surface. It is immutable once
// published so the terminal model can read it from its own goroutine.
type frame struct {
	cells      [][]cell
	cols, rows int
	region     turtle.Rect
	background string
}

// gridSurface keeps every item like a raster surface and, on each Update,
// rasterizes the visible region into a character grid and publishes it.
type gridSurface struct {
	*turtle.RasterSurface

	mu         sync.Mutex
	cols, rows int

	publish func(frame)
}

func newGridSurface(width, height, cols, rows int, publish func(frame)) *gridSurface {
	return &gridSurface{
		RasterSurface: turtle.NewRasterSurface(width, height),
		cols:          cols,
		rows:          rows,
		publish:       publish,
	}
}

// SetCells changes the grid size used from the next Update on. Safe for
// concurrent use.
func (g *gridSurface) SetCells(cols, rows int) {
	g.mu.Lock()
	g.cols, g.rows = max(cols, 1), max(rows, 1)
	g.mu.Unlock()
}

func (g *gridSurface) Update() {
	g.RasterSurface.Update()
	if g.publish != nil {
		g.publish(g.Frame())
	}
}

// Frame rasterizes the current items.
func (g *gridSurface) Frame() frame {
	g.mu.Lock()
	cols, rows := g.cols, g.rows
	g.mu.Unlock()

	f := frame{
		cells:      make([][]cell, rows),
		cols:       cols,
		rows:       rows,
		region:     g.ScrollRegion(),
		background: g.Background(),
	}
	for i := range f.cells {
		f.cells[i] = make([]cell, cols)
		for j := range f.cells[i] {
			f.cells[i][j] = cell{r: ' '}
		}
	}

	for _, it := range g.Items() {
		if !it.Visible() {
			continue
		}
		switch it.Kind {
		case turtle.ItemLine:
			f.drawPath(it.Points, false, it.Fill)
		case turtle.ItemPolygon:
			if it.Fill != "" {
				f.fillPolygon(it.Points, it.Fill)
			}
			if it.Outline != "" {
				f.drawPath(it.Points, true, it.Outline)
			}
		case turtle.ItemImage:
			c, r := f.cellOf(it.At)
			f.set(c, r, '▣', "")
		case turtle.ItemText:
			f.drawText(it)
		}
	}
	return f
}

// cellOf maps a surface point to a grid cell.
func (f *frame) cellOf(p turtle.Vec2) (int, int) {
	r := f.region
	if r.Dx() == 0 || r.Dy() == 0 {
		return 0, 0
	}
	col := (p.X - r.Min.X) / r.Dx() * float64(f.cols)
	row := (p.Y - r.Min.Y) / r.Dy() * float64(f.rows)
	return int(math.Floor(col)), int(math.Floor(row))
}

// surfacePoint maps the center of a grid cell back to surface coordinates.
func (f *frame) surfacePoint(col, row int) turtle.Vec2 {
	r := f.region
	return turtle.V(
		r.Min.X+(float64(col)+0.5)/float64(f.cols)*r.Dx(),
		r.Min.Y+(float64(row)+0.5)/float64(f.rows)*r.Dy(),
	)
}

func (f *frame) isValidPos(col, row int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

func (f *frame) set(col, row int, r rune, color string) {
	if f.isValidPos(col, row) {
		f.cells[row][col] = cell{r: r, color: color}
	}
}

func (f *frame) drawPath(pts []turtle.Vec2, closed bool, color string) {
	for i := 1; i < len(pts); i++ {
		f.drawSegment(pts[i-1], pts[i], color)
	}
	if closed && len(pts) > 2 {
		f.drawSegment(pts[len(pts)-1], pts[0], color)
	}
}

// drawSegment walks the cells between a and b with Bresenham's algorithm.
func (f *frame) drawSegment(a, b turtle.Vec2, color string) {
	x0, y0 := f.cellOf(a)
	x1, y1 := f.cellOf(b)
	ch := segmentRune(x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		f.set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func segmentRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	}
	return '╱'
}

// fillPolygon marks every cell whose center lies inside pts (even-odd).
func (f *frame) fillPolygon(pts []turtle.Vec2, color string) {
	minC, minR := f.cols, f.rows
	maxC, maxR := -1, -1
	for _, p := range pts {
		c, r := f.cellOf(p)
		minC, maxC = min(minC, c), max(maxC, c)
		minR, maxR = min(minR, r), max(maxR, r)
	}
	minC, minR = max(minC, 0), max(minR, 0)
	maxC, maxR = min(maxC, f.cols-1), min(maxR, f.rows-1)
	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			if insidePolygon(f.surfacePoint(col, row), pts) {
				f.set(col, row, '█', color)
			}
		}
	}
}

func insidePolygon(p turtle.Vec2, pts []turtle.Vec2) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func (f *frame) drawText(it turtle.Item) {
	text := []rune(it.Text)
	col, row := f.cellOf(it.At)
	switch it.Align {
	case turtle.AlignCenter:
		col -= len(text) / 2
	case turtle.AlignRight:
		col -= len(text)
	}
	for i, r := range text {
		f.set(col+i, row, r, it.Fill)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Plain returns the frame as text without colors.
func (f frame) Plain() string {
	var b strings.Builder
	for i, row := range f.cells {
		for _, c := range row {
			b.WriteRune(c.r)
		}
		if i < len(f.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// View returns the frame with colors, one lipgloss style per run of equally
// colored cells.
func (f frame) View() string {
	base := lipgloss.NewStyle()
	if bg, ok := hexColor(f.background); ok {
		base = base.Background(lipgloss.Color(bg))
	}
	styles := map[string]lipgloss.Style{}
	style := func(color string) lipgloss.Style {
		if s, ok := styles[color]; ok {
			return s
		}
		s := base
		if fg, ok := hexColor(color); ok {
			s = s.Foreground(lipgloss.Color(fg))
		}
		styles[color] = s
		return s
	}

	var b strings.Builder
	var run strings.Builder
	for i, row := range f.cells {
		for j := 0; j < len(row); {
			color := row[j].color
			run.Reset()
			for ; j < len(row) && row[j].color == color; j++ {
				run.WriteRune(row[j].r)
			}
			b.WriteString(style(color).Render(run.String()))
		}
		if i < len(f.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// hexColor turns a surface color into the #rrggbb form lipgloss takes.
func hexColor(name string) (string, bool) {
	c, ok := turtle.ParseColor(name)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}
