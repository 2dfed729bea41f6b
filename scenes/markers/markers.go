// Package markers reveals a fixed set of decorative neuron markers one after
// another, in shuffled order, the first time it is triggered.
package markers

import (
	"math/rand/v2"

	"synapse/canvas"
)

// Pos is a marker's top-left corner on the surface.
type Pos struct{ X, Y float64 }

// Config places the markers and sets their entrance timing.
type Config struct {
	Positions []Pos
	Radius    float64

	// Frame counts: a new marker appears every Stagger frames, starts its
	// entrance Delay frames later and reaches full size after Transition.
	Stagger    int
	Delay      int
	Transition int
}

// DefaultConfig returns the marker set used by the default page.
func DefaultConfig() Config {
	return Config{
		Positions: []Pos{
			{20, 50}, {20, 150}, {20, 250}, {20, 350}, {20, 450},
			{250, 100}, {250, 200}, {250, 300}, {250, 400},
			{480, 150}, {480, 250}, {480, 350},
		},
		Radius:     10,
		Stagger:    12,
		Delay:      3,
		Transition: 30,
	}
}

// Marker is one revealed marker. Opacity and Scale run from 0 to 1.
type Marker struct {
	Pos
	Opacity float64
	Scale   float64
}

// Scene reveals its markers once, after the first Trigger.
type Scene struct {
	cfg   Config
	order []Pos

	triggered bool
	frame     int
	markers   []Marker
}

// New shuffles the marker positions once with rng.
func New(cfg Config, rng *rand.Rand) *Scene {
	order := append([]Pos(nil), cfg.Positions...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	if cfg.Stagger < 1 {
		cfg.Stagger = 1
	}
	if cfg.Transition < 1 {
		cfg.Transition = 1
	}
	return &Scene{cfg: cfg, order: order}
}

func (s *Scene) Name() string { return "markers" }

// Order returns the shuffled reveal order.
func (s *Scene) Order() []Pos { return s.order }

// Trigger starts the reveal. Only the first call has any effect; it reports
// whether this call started the sequence.
func (s *Scene) Trigger() bool {
	if s.triggered {
		return false
	}
	s.triggered = true
	s.frame = 0
	s.markers = s.markers[:0]
	return true
}

func (s *Scene) Triggered() bool { return s.triggered }

// Markers returns the markers added so far, in reveal order.
func (s *Scene) Markers() []Marker { return s.markers }

// Revealed returns how many markers have been added.
func (s *Scene) Revealed() int { return len(s.markers) }

// Done reports whether every marker is fully shown.
func (s *Scene) Done() bool {
	if !s.triggered || len(s.markers) < len(s.order) {
		return false
	}
	return s.markers[len(s.markers)-1].Scale >= 1
}

func (s *Scene) Update() {
	if !s.triggered {
		return
	}
	for len(s.markers) < len(s.order) && s.frame >= len(s.markers)*s.cfg.Stagger {
		s.markers = append(s.markers, Marker{Pos: s.order[len(s.markers)]})
	}
	for i := range s.markers {
		start := i*s.cfg.Stagger + s.cfg.Delay
		t := float64(s.frame-start) / float64(s.cfg.Transition)
		v := smoothstep(t)
		s.markers[i].Opacity = v
		s.markers[i].Scale = v
	}
	s.frame++
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()
	r := s.cfg.Radius
	for _, m := range s.markers {
		if m.Scale <= 0 {
			continue
		}
		cx, cy := m.X+r, m.Y+r
		rr := r * m.Scale
		dst.Glow(cx, cy, rr, rr, canvas.Alpha(canvas.Indigo, 0.6*m.Opacity))
		dst.FillCircle(cx, cy, rr, canvas.Radial(cx, cy, rr,
			canvas.Stop{Offset: 0, Color: canvas.Alpha(canvas.Indigo, m.Opacity)},
			canvas.Stop{Offset: 1, Color: canvas.Alpha(canvas.Violet, m.Opacity)},
		))
	}
}

func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
