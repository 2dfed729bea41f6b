// Package neuron draws a single biological neuron cell: wandering dendrites
// with sub-branches, a long axon ending in terminals, and a glowing soma.
// The cell is built in 3D once and slowly turned and projected every frame.
package neuron

import (
	"math"
	"math/rand/v2"

	"synapse/canvas"
	"synapse/geom"
	"synapse/mesh"
)

// Config shapes the cell and the camera that turns it.
type Config struct {
	Dendrites      int
	DendriteLength int // samples per main dendrite
	SubBranches    int // per main dendrite
	SubLength      int
	Step           float64 // sample spacing, px
	DendriteWidth  float64
	SubWidth       float64

	AxonAngle      float64
	AxonLength     int
	AxonWidth      float64
	Terminals      int
	TerminalLength float64

	SomaRadius    float64
	NucleusRadius float64

	Focal  float64
	Spin   float64 // yaw per frame
	Tilt   float64 // base pitch
	Wobble float64 // pitch swing amplitude
}

// DefaultConfig returns the neuron settings used by the default page.
func DefaultConfig() Config {
	return Config{
		Dendrites:      6,
		DendriteLength: 15,
		SubBranches:    3,
		SubLength:      8,
		Step:           8,
		DendriteWidth:  4,
		SubWidth:       2,
		AxonAngle:      math.Pi * 0.3,
		AxonLength:     25,
		AxonWidth:      5,
		Terminals:      4,
		TerminalLength: 15,
		SomaRadius:     25,
		NucleusRadius:  12,
		Focal:          400,
		Spin:           0.006,
		Tilt:           0.35,
		Wobble:         0.15,
	}
}

// Arbor is a branch drawn as a tapered polyline from Origin.
type Arbor struct {
	Origin geom.Vec3
	Points []mesh.BranchPoint
	Alpha  float64
}

// Cell is the static geometry of one neuron, centred on the soma.
type Cell struct {
	Dendrites []Arbor
	Axon      Arbor
	Terminals [][]geom.Vec3
}

// Build grows the cell geometry.
func Build(cfg Config, rng *rand.Rand) Cell {
	var c Cell
	for i := 0; i < cfg.Dendrites; i++ {
		angle := float64(i) / float64(cfg.Dendrites) * 2 * math.Pi
		main := mesh.Branch(rng, geom.Vec3{}, angle, cfg.DendriteLength, cfg.Step, cfg.DendriteWidth)
		c.Dendrites = append(c.Dendrites, Arbor{Points: main, Alpha: 0.6})

		for j := 0; j < cfg.SubBranches && len(main) > 0; j++ {
			// Fork somewhere in the middle third of the main branch.
			at := main[len(main)/3+rng.IntN(len(main)/3+1)]
			sub := mesh.Branch(rng, at.Pos, angle+(rng.Float64()-0.5)*0.8, cfg.SubLength, cfg.Step, cfg.SubWidth)
			c.Dendrites = append(c.Dendrites, Arbor{Origin: at.Pos, Points: sub, Alpha: 0.5})
		}
	}

	c.Axon = Arbor{
		Points: mesh.Branch(rng, geom.Vec3{}, cfg.AxonAngle, cfg.AxonLength, cfg.Step, cfg.AxonWidth),
		Alpha:  0.6,
	}
	if n := len(c.Axon.Points); n > 0 {
		end := c.Axon.Points[n-1].Pos
		for i := 0; i < cfg.Terminals; i++ {
			a := float64(i) / float64(cfg.Terminals) * 2 * math.Pi
			s, co := math.Sincos(a)
			tip := end.Add(geom.V3(co*cfg.TerminalLength, s*cfg.TerminalLength, 0))
			c.Terminals = append(c.Terminals, mesh.Segment(end, tip, 2))
		}
	}
	return c
}

// Scene holds the neuron cell, built once by New.
type Scene struct {
	cfg    Config
	cell   Cell
	cx, cy float64

	yaw   float64
	phase float64
}

// New builds a cell centred on a w x h surface.
func New(cfg Config, rng *rand.Rand, w, h int) *Scene {
	return &Scene{
		cfg:  cfg,
		cell: Build(cfg, rng),
		cx:   float64(w) / 2,
		cy:   float64(h) / 2,
	}
}

func (s *Scene) Name() string { return "neuron" }

func (s *Scene) Cell() Cell { return s.cell }

// Angles returns the current pitch and yaw.
func (s *Scene) Angles() (pitch, yaw float64) {
	return s.cfg.Tilt + s.cfg.Wobble*math.Sin(s.phase), s.yaw
}

func (s *Scene) Update() {
	s.yaw += s.cfg.Spin
	s.phase += 0.01
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()

	pitch, yaw := s.Angles()
	pr := geom.Projector{Focal: s.cfg.Focal, CX: s.cx, CY: s.cy}
	project := func(p geom.Vec3) geom.Point2D { return pr.Project(geom.Rotate(p, pitch, yaw)) }

	s.drawArbor(dst, s.cell.Axon, project)

	tip := canvas.Alpha(canvas.Indigo, 0.8)
	for _, term := range s.cell.Terminals {
		a, b := project(term[0]), project(term[len(term)-1])
		dst.Line(a.X, a.Y, b.X, b.Y, 2, canvas.Alpha(canvas.Indigo, 0.5))
		dst.FillCircle(b.X, b.Y, 3*b.Scale, canvas.Solid(tip))
	}

	for _, d := range s.cell.Dendrites {
		s.drawArbor(dst, d, project)
	}

	soma := project(geom.Vec3{})
	r := s.cfg.SomaRadius
	dst.Glow(soma.X, soma.Y, r, 30, canvas.Alpha(canvas.Indigo, 0.8))
	dst.FillCircle(soma.X, soma.Y, r, canvas.Radial(soma.X, soma.Y, r+5,
		canvas.Stop{Offset: 0, Color: canvas.Alpha(canvas.Indigo, 0.9)},
		canvas.Stop{Offset: 0.5, Color: canvas.Alpha(canvas.Indigo, 0.6)},
		canvas.Stop{Offset: 1, Color: canvas.Alpha(canvas.Indigo, 0.2)},
	))
	dst.FillCircle(soma.X, soma.Y, s.cfg.NucleusRadius, canvas.Solid(canvas.Alpha(canvas.Nucleus, 0.5)))
}

// drawArbor strokes each sample-to-sample segment with the taper of its
// far end, scaled by perspective.
func (s *Scene) drawArbor(dst canvas.Surface, a Arbor, project func(geom.Vec3) geom.Point2D) {
	c := canvas.Alpha(canvas.Indigo, a.Alpha)
	prev := project(a.Origin)
	for _, bp := range a.Points {
		p := project(bp.Pos)
		dst.Line(prev.X, prev.Y, p.X, p.Y, bp.Thickness*p.Scale, c)
		prev = p
	}
}
