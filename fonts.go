package turtle

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Font describes text written by a turtle. Family is informational; all
// text renders with the Go Mono faces.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// DefaultFont matches the classic ("Arial", 8, "normal") default.
var DefaultFont = Font{Family: "Arial", Size: 8}

type faceKey struct {
	size float64
	bold bool
}

var (
	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
	ttfs      = map[bool]*truetype.Font{}
)

// fontFace returns a cached face for f. Sizes are points at 72 DPI, so one
// point is one pixel.
func fontFace(f Font) font.Face {
	size := f.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	key := faceKey{size: size, bold: f.Bold}

	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faceCache[key]; ok {
		return face
	}
	ttf, ok := ttfs[f.Bold]
	if !ok {
		data := gomono.TTF
		if f.Bold {
			data = gomonobold.TTF
		}
		var err error
		ttf, err = truetype.Parse(data)
		if err != nil {
			// the embedded fonts always parse
			panic(err)
		}
		ttfs[f.Bold] = ttf
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faceCache[key] = face
	return face
}

// measureText returns the advance width of s in pixels.
func measureText(f Font, s string) float64 {
	adv := font.MeasureString(fontFace(f), s)
	return float64(adv) / 64
}
