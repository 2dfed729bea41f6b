package canvas

import (
	"image/color"

	"synapse/geom"
)

// OpKind names a recorded drawing call.
type OpKind uint8

const (
	OpClear OpKind = iota + 1
	OpFade
	OpLine
	OpPolyline
	OpFillCircle
	OpStrokeCircle
	OpFillRect
	OpStrokeRect
	OpFillRoundRect
	OpStrokeRoundRect
	OpGlow
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFade:
		return "fade"
	case OpLine:
		return "line"
	case OpPolyline:
		return "polyline"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillRoundRect:
		return "fill-round-rect"
	case OpStrokeRoundRect:
		return "stroke-round-rect"
	case OpGlow:
		return "glow"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Fields not used by the kind are zero.
type Op struct {
	Kind OpKind

	X, Y   float64
	X2, Y2 float64 // line end, or rect width/height
	R      float64 // radius, corner radius or blur
	Width  float64

	Points []geom.Point2D
	Color  color.NRGBA
	Paint  Paint
	Text   string
}

// Recorder is a Surface that records calls instead of drawing. It is the
// mock sink for scene tests.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

// Reset drops recorded ops, keeping the size.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns recorded text in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) Size() (w, h int) { return r.W, r.H }
func (r *Recorder) Resize(w, h int)  { r.W, r.H = w, h }
func (r *Recorder) Clear()           { r.add(Op{Kind: OpClear}) }

func (r *Recorder) Fade(c color.NRGBA) { r.add(Op{Kind: OpFade, Color: c}) }

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpLine, X: x0, Y: y0, X2: x1, Y2: y1, Width: width, Color: c})
}

func (r *Recorder) Polyline(pts []geom.Point2D, width float64, c color.NRGBA) {
	cp := append([]geom.Point2D(nil), pts...)
	r.add(Op{Kind: OpPolyline, Points: cp, Width: width, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, p Paint) {
	r.add(Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Paint: p})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpStrokeCircle, X: cx, Y: cy, R: radius, Width: width, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, p Paint) {
	r.add(Op{Kind: OpFillRect, X: x, Y: y, X2: w, Y2: h, Paint: p})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpStrokeRect, X: x, Y: y, X2: w, Y2: h, Width: width, Color: c})
}

func (r *Recorder) FillRoundRect(x, y, w, h, radius float64, p Paint) {
	r.add(Op{Kind: OpFillRoundRect, X: x, Y: y, X2: w, Y2: h, R: radius, Paint: p})
}

func (r *Recorder) StrokeRoundRect(x, y, w, h, radius, width float64, c color.NRGBA) {
	r.add(Op{Kind: OpStrokeRoundRect, X: x, Y: y, X2: w, Y2: h, R: radius, Width: width, Color: c})
}

func (r *Recorder) Glow(cx, cy, radius, blur float64, c color.NRGBA) {
	r.add(Op{Kind: OpGlow, X: cx, Y: cy, R: radius, Width: blur, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c color.NRGBA) {
	r.add(Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

// MeasureText uses the same metrics as Raster.
func (r *Recorder) MeasureText(s string) float64 { return MeasureText(s) }

func (r *Recorder) LineHeight() float64 { return lineHeight }
