package canvas

import (
	"image"
	"image/color"
	"math"
)

// Stop is one colour stop of a gradient, Offset in 0..1.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient paints concentric rings around (CX, CY): Stops map the
// distance range [R0, R1] onto 0..1. Distances outside the range take the
// first or last stop. Stops must be sorted by Offset.
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	Stops  []Stop
}

// Radial builds a gradient from the centre outwards over [0, r].
func Radial(cx, cy, r float64, stops ...Stop) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, R1: r, Stops: stops}
}

func (g *RadialGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *RadialGradient) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (g *RadialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.CX, float64(y)+0.5-g.CY)
	return g.ColorAt(d)
}

// ColorAt returns the gradient colour at distance d from the centre.
func (g *RadialGradient) ColorAt(d float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	span := g.R1 - g.R0
	t := 0.0
	if span > 0 {
		t = (d - g.R0) / span
	}
	t = clamp01(t)

	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s := g.Stops[i]
		if t > s.Offset {
			continue
		}
		prev := g.Stops[i-1]
		w := s.Offset - prev.Offset
		if w <= 0 {
			return s.Color
		}
		return Mix(prev.Color, s.Color, (t-prev.Offset)/w)
	}
	return g.Stops[len(g.Stops)-1].Color
}
