package turtle

import (
	"image"
	"slices"
)

// ItemKind tells what kind of primitive an Item is.
type ItemKind int

const (
	ItemLine ItemKind = iota
	ItemPolygon
	ItemImage
	ItemText
)

func (k ItemKind) String() string {
	switch k {
	case ItemLine:
		return "line"
	case ItemPolygon:
		return "polygon"
	case ItemImage:
		return "image"
	case ItemText:
		return "text"
	}
	return "unknown"
}

// Item is a retained primitive as last configured.
type Item struct {
	ID      ItemID
	Kind    ItemKind
	Points  []Vec2
	Fill    string // line color for lines, fill color for polygons and text
	Outline string
	Width   float64
	Image   image.Image
	At      Vec2
	Text    string
	Align   Align
	Font    Font
}

// Visible reports whether drawing the item would put anything on screen.
func (it Item) Visible() bool {
	switch it.Kind {
	case ItemLine:
		return it.Fill != "" && len(it.Points) > 1
	case ItemPolygon:
		return (it.Fill != "" || it.Outline != "") && len(it.Points) > 2
	case ItemImage:
		return it.Image != nil
	case ItemText:
		return it.Text != "" && it.Fill != ""
	}
	return false
}

// RecordingSurface keeps every item in memory and draws nothing itself.
// It backs the raster and terminal surfaces and is what tests draw into.
type RecordingSurface struct {
	width, height int
	items         map[ItemID]*Item
	order         []ItemID // bottom to top
	next          ItemID
	background    string
	region        Rect
	updates       int

	// OnUpdate, when set, is called after each Update.
	OnUpdate func()
}

// NewRecordingSurface returns an empty surface of the given canvas size with
// the scroll region centered on the origin.
func NewRecordingSurface(width, height int) *RecordingSurface {
	s := &RecordingSurface{
		width:      width,
		height:     height,
		items:      make(map[ItemID]*Item),
		background: "white",
	}
	s.region = centeredRegion(width, height)
	return s
}

func centeredRegion(width, height int) Rect {
	return Rect{
		Min: V(float64(-width/2), float64(-height/2)),
		Max: V(float64(width/2), float64(height/2)),
	}
}

func (s *RecordingSurface) Size() (int, int) { return s.width, s.height }

func (s *RecordingSurface) Resize(width, height int) {
	s.width, s.height = width, height
	s.region = centeredRegion(width, height)
}

func (s *RecordingSurface) create(kind ItemKind) *Item {
	s.next++
	it := &Item{ID: s.next, Kind: kind}
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
	return it
}

func (s *RecordingSurface) CreateLine() ItemID {
	return s.create(ItemLine).ID
}

func (s *RecordingSurface) DrawLine(id ItemID, pts []Vec2, color string, width float64) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	it.Points = slices.Clone(pts)
	it.Fill = color
	it.Width = width
}

func (s *RecordingSurface) CreatePolygon() ItemID {
	return s.create(ItemPolygon).ID
}

func (s *RecordingSurface) DrawPolygon(id ItemID, pts []Vec2, fill, outline string, width float64) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	it.Points = slices.Clone(pts)
	it.Fill = fill
	it.Outline = outline
	it.Width = width
}

func (s *RecordingSurface) CreateImage(img image.Image) ItemID {
	it := s.create(ItemImage)
	it.Image = img
	return it.ID
}

func (s *RecordingSurface) DrawImage(id ItemID, at Vec2, img image.Image) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	it.At = at
	it.Image = img
}

func (s *RecordingSurface) CreateText(at Vec2, text string, align Align, font Font, color string) (ItemID, float64) {
	it := s.create(ItemText)
	it.At = at
	it.Text = text
	it.Align = align
	it.Font = font
	it.Fill = color
	w := measureText(font, text)
	var right float64
	switch align {
	case AlignCenter:
		right = at.X + w/2
	case AlignRight:
		right = at.X
	default:
		right = at.X + w
	}
	return it.ID, right
}

func (s *RecordingSurface) Raise(id ItemID) {
	i := slices.Index(s.order, id)
	if i < 0 {
		return
	}
	s.order = append(slices.Delete(s.order, i, i+1), id)
}

func (s *RecordingSurface) Lower(id ItemID) {
	i := slices.Index(s.order, id)
	if i < 0 {
		return
	}
	s.order = slices.Insert(slices.Delete(s.order, i, i+1), 0, id)
}

func (s *RecordingSurface) Delete(id ItemID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *RecordingSurface) Update() {
	s.updates++
	if s.OnUpdate != nil {
		s.OnUpdate()
	}
}

func (s *RecordingSurface) Background() string { return s.background }

func (s *RecordingSurface) SetBackground(color string) { s.background = color }

func (s *RecordingSurface) ScrollRegion() Rect { return s.region }

func (s *RecordingSurface) SetScrollRegion(r Rect) { s.region = r }

// Updates returns how many times Update was called.
func (s *RecordingSurface) Updates() int { return s.updates }

// Len returns the number of live items.
func (s *RecordingSurface) Len() int { return len(s.items) }

// Item returns a copy of the item with the given id.
func (s *RecordingSurface) Item(id ItemID) (Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Items returns copies of all live items from bottom to top.
func (s *RecordingSurface) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// ItemsOf returns the visible items of the given kind from bottom to top.
func (s *RecordingSurface) ItemsOf(kind ItemKind) []Item {
	var out []Item
	for _, it := range s.Items() {
		if it.Kind == kind && it.Visible() {
			out = append(out, it)
		}
	}
	return out
}

// SurfacePoint converts a pixel position inside the visible canvas to
// surface coordinates.
func (s *RecordingSurface) SurfacePoint(px, py float64) Vec2 {
	r := s.region
	sx, sy := 1.0, 1.0
	if s.width > 0 && s.height > 0 {
		sx, sy = r.Dx()/float64(s.width), r.Dy()/float64(s.height)
	}
	return V(r.Min.X+px*sx, r.Min.Y+py*sy)
}

// PixelPoint converts a surface coordinate to a pixel position inside the
// visible canvas.
func (s *RecordingSurface) PixelPoint(p Vec2) Vec2 {
	r := s.region
	sx, sy := 1.0, 1.0
	if r.Dx() != 0 && r.Dy() != 0 {
		sx, sy = float64(s.width)/r.Dx(), float64(s.height)/r.Dy()
	}
	return V((p.X-r.Min.X)*sx, (p.Y-r.Min.Y)*sy)
}
