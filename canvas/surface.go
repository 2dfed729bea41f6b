// Package canvas is the immediate-mode 2D drawing sink the scenes render into.
//
// Surface is the contract: lines, arcs, rectangles, radial-gradient fills,
// glow and text, in surface pixel coordinates with (0,0) at the top left.
// Raster implements it in software on an *image.RGBA; Recorder records the
// calls so scenes can be tested without pixels.
package canvas

import (
	"image"
	"image/color"

	"synapse/geom"
)

// Paint is anything that can fill a shape: a solid colour (Solid) or a
// RadialGradient. It is sampled in surface coordinates.
type Paint = image.Image

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)

	// Clear resets every pixel to transparent.
	Clear()
	// Fade paints c over the whole surface, leaving a trail of earlier frames.
	Fade(c color.NRGBA)

	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	Polyline(pts []geom.Point2D, width float64, c color.NRGBA)

	FillCircle(cx, cy, r float64, p Paint)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)

	FillRect(x, y, w, h float64, p Paint)
	StrokeRect(x, y, w, h, width float64, c color.NRGBA)
	FillRoundRect(x, y, w, h, radius float64, p Paint)
	StrokeRoundRect(x, y, w, h, radius, width float64, c color.NRGBA)

	// Glow paints a blurred disc, the equivalent of a canvas shadowBlur.
	Glow(cx, cy, r, blur float64, c color.NRGBA)

	// Text draws s with its baseline at y.
	Text(x, y float64, s string, c color.NRGBA)
	MeasureText(s string) float64
	LineHeight() float64
}
