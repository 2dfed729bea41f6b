package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"synapse/geom"
)

// Raster is a software Surface backed by an RGBA image.
//
// Each fill rasterizes only the bounding box of its shape, so the cost of a
// primitive is proportional to its area rather than the surface size.
// A Raster is not safe for concurrent use.
type Raster struct {
	img  *image.RGBA
	z    vector.Rasterizer
	mask []byte
	glow glowCache
	text textTarget
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a transparent w x h surface.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// Image exposes the backing pixels for compositing.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (w, h int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the pixels when the size changes. Content is dropped.
func (r *Raster) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if r.img != nil && r.img.Bounds().Dx() == w && r.img.Bounds().Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.text.img = r.img
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

func (r *Raster) Fade(c color.NRGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	q := segmentQuad(vec2{float32(x0), float32(y0)}, vec2{float32(x1), float32(y1)}, strokeWidth(width))
	if q == nil {
		return
	}
	r.fill([]polygon{q}, image.NewUniform(c))
}

func (r *Raster) Polyline(pts []geom.Point2D, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	w := strokeWidth(width)
	polys := make([]polygon, 0, len(pts)*2)
	for i := 1; i < len(pts); i++ {
		a := vec2{float32(pts[i-1].X), float32(pts[i-1].Y)}
		b := vec2{float32(pts[i].X), float32(pts[i].Y)}
		if q := segmentQuad(a, b, w); q != nil {
			polys = append(polys, q)
		}
		if w > 2 && i < len(pts)-1 {
			// Round joins. segmentQuad winds the same way for every
			// direction; the reversed disc matches it so the two add.
			polys = append(polys, circle(b.X, b.Y, w/2, true))
		}
	}
	r.fill(polys, image.NewUniform(c))
}

func (r *Raster) FillCircle(cx, cy, radius float64, p Paint) {
	if radius <= 0 {
		return
	}
	r.fill([]polygon{circle(float32(cx), float32(cy), float32(radius), false)}, p)
}

func (r *Raster) StrokeCircle(cx, cy, radius, width float64, c color.NRGBA) {
	hw := strokeWidth(width) / 2
	x, y, rr := float32(cx), float32(cy), float32(radius)
	polys := []polygon{circle(x, y, rr+hw, false)}
	if rr-hw > 0 {
		polys = append(polys, circle(x, y, rr-hw, true))
	}
	r.fill(polys, image.NewUniform(c))
}

func (r *Raster) FillRect(x, y, w, h float64, p Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	r.fill([]polygon{rect(float32(x), float32(y), float32(w), float32(h), false)}, p)
}

func (r *Raster) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	hw := strokeWidth(width) / 2
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	polys := []polygon{rect(fx-hw, fy-hw, fw+2*hw, fh+2*hw, false)}
	if fw-2*hw > 0 && fh-2*hw > 0 {
		polys = append(polys, rect(fx+hw, fy+hw, fw-2*hw, fh-2*hw, true))
	}
	r.fill(polys, image.NewUniform(c))
}

func (r *Raster) FillRoundRect(x, y, w, h, radius float64, p Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	r.fill([]polygon{roundRect(float32(x), float32(y), float32(w), float32(h), float32(radius), false)}, p)
}

func (r *Raster) StrokeRoundRect(x, y, w, h, radius, width float64, c color.NRGBA) {
	hw := strokeWidth(width) / 2
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(radius)
	polys := []polygon{roundRect(fx-hw, fy-hw, fw+2*hw, fh+2*hw, fr+hw, false)}
	if fw-2*hw > 0 && fh-2*hw > 0 {
		polys = append(polys, roundRect(fx+hw, fy+hw, fw-2*hw, fh-2*hw, math32.Max(fr-hw, 0), true))
	}
	r.fill(polys, image.NewUniform(c))
}

// fill rasterizes the union of polys into a coverage mask over their
// bounding box and composites p through it. Paint coordinates are surface
// coordinates.
func (r *Raster) fill(polys []polygon, p Paint) {
	minX, minY, maxX, maxY, ok := bounds(polys)
	if !ok {
		return
	}
	box := image.Rect(
		int(math32.Floor(minX))-1, int(math32.Floor(minY))-1,
		int(math32.Ceil(maxX))+1, int(math32.Ceil(maxY))+1,
	)
	clip := box.Intersect(r.img.Bounds())
	if clip.Empty() {
		return
	}

	mask := r.maskFor(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Src
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.z.MoveTo(poly[0].X-ox, poly[0].Y-oy)
		for _, v := range poly[1:] {
			r.z.LineTo(v.X-ox, v.Y-oy)
		}
		r.z.ClosePath()
	}
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(r.img, clip, p, clip.Min, mask, clip.Min.Sub(box.Min), draw.Over)
}

func (r *Raster) maskFor(w, h int) *image.Alpha {
	n := w * h
	if cap(r.mask) < n {
		r.mask = make([]byte, n)
	}
	return &image.Alpha{Pix: r.mask[:n], Stride: w, Rect: image.Rect(0, 0, w, h)}
}

func strokeWidth(w float64) float32 {
	if w < 1 {
		return 1
	}
	return float32(w)
}
