// Package chip draws a pulsing microchip: pins on all four sides, a rounded
// body with a circuit grid, a glowing core and nodes orbiting it.
package chip

import (
	"math"

	"synapse/canvas"
)

// Config sizes the chip body and the nodes orbiting its core.
type Config struct {
	Size         float64
	CornerRadius float64
	PinsPerSide  int
	PinLength    float64
	PinWidth     float64

	GridLines  int
	GridInset  float64
	CoreSize   float64
	Nodes      int
	NodeOrbit  float64
	NodeRadius float64

	// PulseStep advances the pulse phase each frame.
	PulseStep float64
}

// DefaultConfig returns the chip layout used by the default page.
func DefaultConfig() Config {
	return Config{
		Size:         180,
		CornerRadius: 10,
		PinsPerSide:  6,
		PinLength:    25,
		PinWidth:     8,
		GridLines:    8,
		GridInset:    40,
		CoreSize:     60,
		Nodes:        12,
		NodeOrbit:    50,
		NodeRadius:   2,
		PulseStep:    0.03,
	}
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Scene is the pulsing chip, centred on its surface.
type Scene struct {
	cfg    Config
	cx, cy float64
	phase  float64
}

// New centres the chip on a w x h surface.
func New(cfg Config, w, h int) *Scene {
	return &Scene{cfg: cfg, cx: float64(w) / 2, cy: float64(h) / 2}
}

func (s *Scene) Name() string { return "chip" }

func (s *Scene) Update() { s.phase += s.cfg.PulseStep }

// Pulse is the current brightness multiplier, in [0.4, 1].
func (s *Scene) Pulse() float64 {
	return math.Sin(s.phase)*0.3 + 0.7
}

// Pins returns the pin rectangles: top, bottom, left, right.
func (s *Scene) Pins() []Rect {
	c := s.cfg
	half := c.Size / 2
	gap := c.Size / float64(c.PinsPerSide+1)
	pins := make([]Rect, 0, 4*c.PinsPerSide)
	for i := 0; i < c.PinsPerSide; i++ {
		x := s.cx - half + gap*float64(i+1)
		pins = append(pins, Rect{X: x - c.PinWidth/2, Y: s.cy - half - c.PinLength, W: c.PinWidth, H: c.PinLength})
	}
	for i := 0; i < c.PinsPerSide; i++ {
		x := s.cx - half + gap*float64(i+1)
		pins = append(pins, Rect{X: x - c.PinWidth/2, Y: s.cy + half, W: c.PinWidth, H: c.PinLength})
	}
	for i := 0; i < c.PinsPerSide; i++ {
		y := s.cy - half + gap*float64(i+1)
		pins = append(pins, Rect{X: s.cx - half - c.PinLength, Y: y - c.PinWidth/2, W: c.PinLength, H: c.PinWidth})
	}
	for i := 0; i < c.PinsPerSide; i++ {
		y := s.cy - half + gap*float64(i+1)
		pins = append(pins, Rect{X: s.cx + half, Y: y - c.PinWidth/2, W: c.PinLength, H: c.PinWidth})
	}
	return pins
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()

	c := s.cfg
	pulse := s.Pulse()
	ind := canvas.Indigo

	pinFill := canvas.Solid(canvas.Alpha(ind, 0.7*pulse))
	pinEdge := canvas.Alpha(ind, 0.8*pulse)
	for _, p := range s.Pins() {
		dst.FillRect(p.X, p.Y, p.W, p.H, pinFill)
		dst.StrokeRect(p.X, p.Y, p.W, p.H, 1, pinEdge)
	}

	half := c.Size / 2
	dst.FillRoundRect(s.cx-half, s.cy-half, c.Size, c.Size, c.CornerRadius, canvas.Radial(s.cx, s.cy, half,
		canvas.Stop{Offset: 0, Color: canvas.Alpha(ind, 0.3*pulse)},
		canvas.Stop{Offset: 1, Color: canvas.Alpha(ind, 0.05)},
	))
	dst.StrokeRoundRect(s.cx-half, s.cy-half, c.Size, c.Size, c.CornerRadius, 3, canvas.Alpha(ind, 0.8*pulse))

	circuit := c.Size - c.GridInset
	ch := circuit / 2
	grid := canvas.Alpha(ind, 0.3*pulse)
	for i := 1; i < c.GridLines; i++ {
		off := circuit / float64(c.GridLines) * float64(i)
		dst.Line(s.cx-ch+off, s.cy-ch, s.cx-ch+off, s.cy+ch, 1, grid)
		dst.Line(s.cx-ch, s.cy-ch+off, s.cx+ch, s.cy-ch+off, 1, grid)
	}

	core := c.CoreSize
	dst.StrokeRect(s.cx-core/2, s.cy-core/2, core, core, 2, canvas.Alpha(ind, 0.7*pulse))
	dst.FillRect(s.cx-core/2, s.cy-core/2, core, core, canvas.Radial(s.cx, s.cy, core/2,
		canvas.Stop{Offset: 0, Color: canvas.Alpha(ind, 0.5*pulse)},
		canvas.Stop{Offset: 1, Color: canvas.Alpha(ind, 0.1)},
	))

	node := canvas.Solid(canvas.Alpha(ind, 0.8*pulse))
	for i := 0; i < c.Nodes; i++ {
		a := float64(i)/float64(c.Nodes)*2*math.Pi + s.phase*0.5
		sn, cs := math.Sincos(a)
		dst.FillCircle(s.cx+cs*c.NodeOrbit, s.cy+sn*c.NodeOrbit, c.NodeRadius, node)
	}
}
