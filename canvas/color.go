package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette shared by the scenes.
var (
	Indigo  = color.NRGBA{R: 102, G: 126, B: 234, A: 0xFF}
	Violet  = color.NRGBA{R: 118, G: 75, B: 162, A: 0xFF}
	Nucleus = color.NRGBA{R: 150, G: 180, B: 255, A: 0xFF}
	Ink     = color.NRGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	Muted   = color.NRGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	Black   = color.NRGBA{A: 0xFF}
)

// Hex parses "#rrggbb" or "#rgb" into an opaque colour.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("canvas: bad colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// MustHex is Hex for package-level palette literals.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns c with its alpha replaced by a (0..1, clamped).
func Alpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = unit8(a)
	return c
}

// Solid is a uniform paint.
func Solid(c color.NRGBA) Paint { return image.NewUniform(c) }

// Mix blends a toward b by t in RGB space; alpha is interpolated linearly.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.NRGBA{
		R: r,
		G: g,
		B: bl,
		A: uint8(math.Round(float64(a.A) + (float64(b.A)-float64(a.A))*t)),
	}
}

func unit8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
