package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

const maxGlowEntries = 64

type glowKey struct {
	r, blur float64
	c       color.NRGBA
}

// glowCache keeps blurred discs by radius, blur and colour. Scenes redraw the
// same halos every frame, and blurring is the costly part.
type glowCache struct {
	m map[glowKey]*image.RGBA
}

func (g *glowCache) get(k glowKey) *image.RGBA {
	if img, ok := g.m[k]; ok {
		return img
	}
	if g.m == nil || len(g.m) >= maxGlowEntries {
		g.m = make(map[glowKey]*image.RGBA)
	}

	pad := math.Ceil(2 * k.blur)
	size := int(math.Ceil(2*(k.r+pad))) + 2
	patch := NewRaster(size, size)
	mid := float64(size) / 2
	patch.FillCircle(mid, mid, k.r, Solid(k.c))

	img := blur.Gaussian(patch.Image(), k.blur)
	g.m[k] = img
	return img
}

func (r *Raster) Glow(cx, cy, radius, blurRadius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	if blurRadius <= 0 {
		r.FillCircle(cx, cy, radius, Solid(c))
		return
	}
	img := r.glow.get(glowKey{r: radius, blur: blurRadius, c: c})
	b := img.Bounds()
	at := image.Point{
		X: int(math.Round(cx - float64(b.Dx())/2)),
		Y: int(math.Round(cy - float64(b.Dy())/2)),
	}
	dst := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(r.img, dst, img, b.Min, draw.Over)
}
