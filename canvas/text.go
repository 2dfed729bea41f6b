package canvas

import (
	"image"
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the bitmap font used for all surface text.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

const lineHeight = 12

// textTarget adapts an RGBA image to the tinyfont displayer contract and
// blends glyph pixels with a per-call alpha.
type textTarget struct {
	img   *image.RGBA
	alpha uint8
}

var _ drivers.Displayer = (*textTarget)(nil)

func (t *textTarget) Size() (x, y int16) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (t *textTarget) SetPixel(x, y int16, c color.RGBA) {
	if t.img == nil {
		return
	}
	p := image.Point{X: int(x), Y: int(y)}
	if !p.In(t.img.Bounds()) {
		return
	}
	src := color.NRGBA{R: c.R, G: c.G, B: c.B, A: t.alpha}
	if t.alpha == 0xFF {
		t.img.SetRGBA(p.X, p.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		return
	}
	t.img.Set(p.X, p.Y, over(t.img.RGBAAt(p.X, p.Y), src))
}

func (t *textTarget) Display() error { return nil }

func (r *Raster) Text(x, y float64, s string, c color.NRGBA) {
	if s == "" || c.A == 0 {
		return
	}
	r.text.alpha = c.A
	tinyfont.WriteLine(&r.text, Font, int16(x), int16(y), s, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

func (r *Raster) MeasureText(s string) float64 {
	return MeasureText(s)
}

func (r *Raster) LineHeight() float64 { return lineHeight }

// MeasureText returns the advance width of s in the surface font.
func MeasureText(s string) float64 {
	_, w := tinyfont.LineWidth(Font, s)
	return float64(w)
}

// over composites non-premultiplied src over premultiplied dst.
func over(dst color.RGBA, src color.NRGBA) color.RGBA {
	a := uint32(src.A)
	ia := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*ia) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*ia) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*ia) / 255),
		A: uint8(a + uint32(dst.A)*ia/255),
	}
}

// Wrap breaks s into lines no wider than width, splitting on spaces. A
// single word wider than width gets a line of its own.
func Wrap(s string, width float64, measure func(string) float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && measure(next) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
