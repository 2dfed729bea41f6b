// Package network draws the full-viewport background: slowly drifting
// neurons that link to their neighbours, over a trail that fades each frame.
package network

import (
	"image/color"
	"math"
	"math/rand/v2"

	"synapse/canvas"
)

// Config controls the node drift and the range at which nodes link.
type Config struct {
	Count int
	// Speed bounds each velocity component to ±Speed/2 px per frame.
	Speed        float64
	Radius       float64
	LinkDistance float64

	Color     color.NRGBA
	NodeAlpha float64
	LinkAlpha float64
	FadeAlpha float64
}

// DefaultConfig returns the network settings used by the default page.
func DefaultConfig() Config {
	return Config{
		Count:        80,
		Speed:        0.5,
		Radius:       2,
		LinkDistance: 150,
		Color:        canvas.Indigo,
		NodeAlpha:    0.8,
		LinkAlpha:    0.2,
		FadeAlpha:    0.05,
	}
}

// Node is one drifting neuron.
type Node struct {
	X, Y   float64
	VX, VY float64
}

// Scene is the drifting node graph with proximity links.
type Scene struct {
	cfg   Config
	w, h  float64
	nodes []Node
}

// New scatters cfg.Count nodes over a w x h viewport.
func New(cfg Config, rng *rand.Rand, w, h int) *Scene {
	s := &Scene{cfg: cfg, w: float64(w), h: float64(h)}
	s.nodes = make([]Node, cfg.Count)
	for i := range s.nodes {
		s.nodes[i] = Node{
			X:  rng.Float64() * s.w,
			Y:  rng.Float64() * s.h,
			VX: (rng.Float64() - 0.5) * cfg.Speed,
			VY: (rng.Float64() - 0.5) * cfg.Speed,
		}
	}
	return s
}

func (s *Scene) Name() string { return "network" }

// Nodes exposes the current node positions.
func (s *Scene) Nodes() []Node { return s.nodes }

// Resize follows the viewport. Nodes left outside the new bounds turn back
// on their next update.
func (s *Scene) Resize(w, h int) {
	s.w, s.h = float64(w), float64(h)
}

func (s *Scene) Update() {
	for i := range s.nodes {
		n := &s.nodes[i]
		n.X += n.VX
		n.Y += n.VY
		if n.X < 0 {
			n.VX = math.Abs(n.VX)
		} else if n.X > s.w {
			n.VX = -math.Abs(n.VX)
		}
		if n.Y < 0 {
			n.VY = math.Abs(n.VY)
		} else if n.Y > s.h {
			n.VY = -math.Abs(n.VY)
		}
	}
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Fade(canvas.Alpha(canvas.Black, s.cfg.FadeAlpha))

	fill := canvas.Solid(canvas.Alpha(s.cfg.Color, s.cfg.NodeAlpha))
	for _, n := range s.nodes {
		dst.FillCircle(n.X, n.Y, s.cfg.Radius, fill)
	}

	link := s.cfg.LinkDistance
	for i := range s.nodes {
		a := s.nodes[i]
		for j := i + 1; j < len(s.nodes); j++ {
			b := s.nodes[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= link {
				continue
			}
			dst.Line(a.X, a.Y, b.X, b.Y, 1, canvas.Alpha(s.cfg.Color, s.cfg.LinkAlpha*(1-d/link)))
		}
	}
}
