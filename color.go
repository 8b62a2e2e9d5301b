package turtle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a color argument: a color name, a "#rgb"/"#rrggbb" string, or an
// RGB triple read in the screen's color mode. The empty name means "no color".
type Color struct {
	name    string
	r, g, b float64
	rgb     bool
}

// Named returns a color given by name or hex string.
func Named(s string) Color {
	return Color{name: s}
}

// RGB returns a color triple. Components range over 0..colormode.
func RGB(r, g, b float64) Color {
	return Color{r: r, g: g, b: b, rgb: true}
}

// NoColor is the transparent color.
var NoColor = Color{}

func (c Color) String() string {
	if c.rgb {
		return fmt.Sprintf("(%g,%g,%g)", c.r, c.g, c.b)
	}
	return c.name
}

// ColorArgs interprets loosely typed color arguments the way color() does:
// no arguments, one color, two colors (pen and fill), three numbers, or six
// numbers. A single color sets both pen and fill.
// Accepted elements are Color, string, [3]float64 and numbers.
func ColorArgs(args ...any) (pen, fill Color, err error) {
	var colors []Color
	var nums []float64
	for _, a := range args {
		switch v := a.(type) {
		case Color:
			colors = append(colors, v)
		case string:
			colors = append(colors, Named(v))
		case [3]float64:
			colors = append(colors, RGB(v[0], v[1], v[2]))
		case float64:
			nums = append(nums, v)
		case float32:
			nums = append(nums, float64(v))
		case int:
			nums = append(nums, float64(v))
		default:
			return NoColor, NoColor, argError("color component %v of type %T", a, a)
		}
	}
	if len(colors) > 0 && len(nums) > 0 {
		return NoColor, NoColor, argError("mixed color arguments %v", args)
	}
	switch {
	case len(colors) == 1:
		return colors[0], colors[0], nil
	case len(colors) == 2:
		return colors[0], colors[1], nil
	case len(nums) == 3:
		c := RGB(nums[0], nums[1], nums[2])
		return c, c, nil
	case len(nums) == 6:
		return RGB(nums[0], nums[1], nums[2]), RGB(nums[3], nums[4], nums[5]), nil
	}
	return NoColor, NoColor, argError("%d color arguments", len(args))
}

// resolveColor turns c into a color string valid for surfaces.
func resolveColor(c Color, colormode float64) (string, error) {
	if !c.rgb {
		if c.name == "" || IsColorString(c.name) {
			return c.name, nil
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, c.name)
	}
	r, g, b := c.r, c.g, c.b
	if colormode == 1.0 {
		r, g, b = math.RoundToEven(255*r), math.RoundToEven(255*g), math.RoundToEven(255*b)
	}
	for _, v := range []float64{r, g, b} {
		if !(v >= 0 && v <= 255) {
			return "", fmt.Errorf("%w: %v in color mode %v", ErrInvalidColor, c, colormode)
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", int(math.RoundToEven(r)), int(math.RoundToEven(g)), int(math.RoundToEven(b))), nil
}

func normalizeColorName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// IsColorString reports whether s names a color surfaces understand.
func IsColorString(s string) bool {
	_, ok := ParseColor(s)
	return ok
}

// ParseColor converts a color string to RGBA. The empty string and
// unknown strings report false.
func ParseColor(s string) (color.RGBA, bool) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	c, ok := colornames.Map[normalizeColorName(s)]
	return c, ok
}
