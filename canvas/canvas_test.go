package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/geom"
)

func TestHex(t *testing.T) {
	c, err := Hex("#667eea")
	require.NoError(t, err)
	assert.Equal(t, Indigo, c)

	_, err = Hex("667eeaZZ")
	require.Error(t, err)
}

func TestAlphaClamps(t *testing.T) {
	assert.Equal(t, uint8(0), Alpha(Indigo, -1).A)
	assert.Equal(t, uint8(255), Alpha(Indigo, 3).A)
	assert.Equal(t, uint8(128), Alpha(Indigo, 0.5).A)
}

func TestRadialGradientStops(t *testing.T) {
	g := Radial(0, 0, 10,
		Stop{Offset: 0, Color: color.NRGBA{R: 255, A: 255}},
		Stop{Offset: 1, Color: color.NRGBA{B: 255, A: 0}},
	)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, g.ColorAt(0))
	assert.Equal(t, color.NRGBA{B: 255, A: 0}, g.ColorAt(10))
	assert.Equal(t, color.NRGBA{B: 255, A: 0}, g.ColorAt(50))

	mid := g.ColorAt(5)
	assert.InDelta(t, 128, int(mid.A), 1)
	assert.InDelta(t, 128, int(mid.R), 1)
}

func TestRasterFillCircleCoversCenter(t *testing.T) {
	r := NewRaster(40, 40)
	r.FillCircle(20, 20, 8, Solid(Indigo))

	got := r.Image().RGBAAt(20, 20)
	if got.R != Indigo.R || got.G != Indigo.G || got.B != Indigo.B || got.A != 0xFF {
		t.Fatalf("center pixel = %v, want %v", got, Indigo)
	}
	if corner := r.Image().RGBAAt(1, 1); corner.A != 0 {
		t.Fatalf("corner pixel = %v, want transparent", corner)
	}
}

func TestRasterStrokeCircleHasHole(t *testing.T) {
	r := NewRaster(60, 60)
	r.StrokeCircle(30, 30, 20, 2, Indigo)

	if got := r.Image().RGBAAt(30, 30); got.A != 0 {
		t.Fatalf("center pixel = %v, want transparent", got)
	}
	if got := r.Image().RGBAAt(50, 30); got.A == 0 {
		t.Fatalf("ring pixel transparent, want painted")
	}
}

func TestRasterClipsOffscreenShapes(t *testing.T) {
	r := NewRaster(20, 20)
	r.FillCircle(-100, -100, 10, Solid(Indigo))
	r.FillCircle(19, 19, 10, Solid(Indigo))
	r.Line(-50, 10, 70, 10, 3, Indigo)
	r.Polyline([]geom.Point2D{{X: -5, Y: -5}, {X: 25, Y: 25}, {X: 40, Y: 0}}, 4, Indigo)

	if got := r.Image().RGBAAt(10, 10); got.A == 0 {
		t.Fatalf("line pixel transparent, want painted")
	}

	r.Polyline([]geom.Point2D{{X: -5, Y: 4}, {X: 10, Y: 4}, {X: 40, Y: 4}}, 4, Indigo)
	if got := r.Image().RGBAAt(10, 4); got.A == 0 {
		t.Fatalf("polyline joint pixel transparent, want painted")
	}
}

func TestRasterPolylineJoins(t *testing.T) {
	for _, pts := range [][]geom.Point2D{
		{{X: 5, Y: 10}, {X: 30, Y: 10}, {X: 55, Y: 10}},
		{{X: 55, Y: 10}, {X: 30, Y: 10}, {X: 5, Y: 10}},
		{{X: 5, Y: 2}, {X: 30, Y: 10}, {X: 55, Y: 18}},
	} {
		r := NewRaster(60, 20)
		r.Polyline(pts, 6, Indigo)
		for x := 29; x <= 31; x++ {
			if got := r.Image().RGBAAt(x, 10); got.A == 0 {
				t.Fatalf("joint pixel (%d,10) transparent for %v, want painted", x, pts)
			}
		}
		if got := r.Image().RGBAAt(30, 10); got.A != 255 {
			t.Fatalf("RGBAAt(30,10).A = %d, want 255", got.A)
		}
	}
}

func TestRasterResizeAndClear(t *testing.T) {
	r := NewRaster(10, 10)
	r.FillRect(0, 0, 10, 10, Solid(Indigo))
	r.Clear()
	if got := r.Image().RGBAAt(5, 5); got.A != 0 {
		t.Fatalf("after Clear pixel = %v, want transparent", got)
	}

	r.Resize(30, 20)
	w, h := r.Size()
	if w != 30 || h != 20 {
		t.Fatalf("Size() = %d,%d, want 30,20", w, h)
	}
}

func TestRasterFadeAccumulates(t *testing.T) {
	r := NewRaster(4, 4)
	for i := 0; i < 100; i++ {
		r.Fade(Alpha(Black, 0.05))
	}
	if got := r.Image().RGBAAt(0, 0); got.A < 0xF0 {
		t.Fatalf("alpha after fades = %d, want near opaque", got.A)
	}
}

func TestRasterGlowIsCached(t *testing.T) {
	r := NewRaster(80, 80)
	r.Glow(40, 40, 10, 6, Indigo)
	r.Glow(20, 20, 10, 6, Indigo)
	if len(r.glow.m) != 1 {
		t.Fatalf("glow cache entries = %d, want 1", len(r.glow.m))
	}
	if got := r.Image().RGBAAt(40, 40); got.A == 0 {
		t.Fatalf("glow center transparent, want painted")
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(120, 20)
	r.Text(2, 12, "Frontal", Ink)

	painted := 0
	pix := r.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatalf("Text() painted no pixels")
	}
	if w := r.MeasureText("Frontal"); w <= 0 {
		t.Fatalf("MeasureText() = %v, want > 0", w)
	}
}

func TestRecorderCounts(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Clear()
	rec.Line(0, 0, 1, 1, 1, Indigo)
	rec.Line(0, 0, 2, 2, 1, Indigo)
	rec.Text(0, 0, "hi", Ink)

	assert.Equal(t, 2, rec.Count(OpLine))
	assert.Equal(t, []string{"hi"}, rec.Texts())

	rec.Reset()
	assert.Empty(t, rec.Ops)
}

func TestWrap(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	got := Wrap("the quick brown fox jumps", 10, measure)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps"}, got)

	got = Wrap("  antidisestablishmentarianism is long ", 10, measure)
	assert.Equal(t, []string{"antidisestablishmentarianism", "is long"}, got)

	assert.Empty(t, Wrap("   ", 10, measure))
}
