// Package globe draws a rotating wireframe globe with a soft halo.
package globe

import (
	"image/color"

	"synapse/canvas"
	"synapse/geom"
	"synapse/mesh"
)

// Config sets the globe graticule and the camera that spins it.
type Config struct {
	Radius   float64
	LatLines int
	LonLines int
	Step     float64 // angular sample spacing along each line

	Focal float64
	Spin  float64 // yaw per frame
	Tilt  float64

	// CullBelow hides samples whose rotated depth is below this fraction of
	// -Radius.
	CullBelow float64
}

// DefaultConfig returns the globe settings used by the default page.
func DefaultConfig() Config {
	return Config{
		Radius:    120,
		LatLines:  12,
		LonLines:  16,
		Step:      0.05,
		Focal:     250,
		Spin:      0.005,
		Tilt:      0.3,
		CullBelow: 0.5,
	}
}

// Scene is the wireframe globe, spun by Spin each frame.
type Scene struct {
	cfg    Config
	lines  mesh.GlobeLines
	cx, cy float64
	yaw    float64

	scratch []geom.Point2D
}

// New centres the globe on a w x h surface.
func New(cfg Config, w, h int) *Scene {
	return &Scene{
		cfg:   cfg,
		lines: mesh.Globe(cfg.Radius, cfg.LatLines, cfg.LonLines, cfg.Step),
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
	}
}

func (s *Scene) Name() string { return "globe" }

func (s *Scene) Update() { s.yaw += s.cfg.Spin }

// Yaw returns the accumulated rotation.
func (s *Scene) Yaw() float64 { return s.yaw }

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()

	r := s.cfg.Radius
	dst.FillCircle(s.cx, s.cy, r*1.3, &canvas.RadialGradient{
		CX: s.cx, CY: s.cy, R0: r * 0.8, R1: r * 1.3,
		Stops: []canvas.Stop{
			{Offset: 0, Color: canvas.Alpha(canvas.Indigo, 0.3)},
			{Offset: 1, Color: canvas.Alpha(canvas.Indigo, 0)},
		},
	})

	wire := canvas.Alpha(canvas.Indigo, 0.5)
	for i, line := range s.lines.Latitudes {
		width := 1.0
		if i == s.lines.Equator {
			width = 2
		}
		s.drawLine(dst, line, width, wire)
	}
	for _, line := range s.lines.Longitudes {
		s.drawLine(dst, line, 1, wire)
	}

	dst.StrokeCircle(s.cx, s.cy, r, 8, canvas.Alpha(canvas.Indigo, 0.12))
	dst.StrokeCircle(s.cx, s.cy, r, 2, canvas.Alpha(canvas.Indigo, 0.6))
}

// drawLine projects one wire and strokes its visible runs. A culled sample
// breaks the wire instead of bridging across the hidden part.
func (s *Scene) drawLine(dst canvas.Surface, line mesh.Polyline, width float64, c color.NRGBA) {
	pr := geom.Projector{Focal: s.cfg.Focal, CX: s.cx, CY: s.cy}
	cull := -s.cfg.Radius * s.cfg.CullBelow

	run := s.scratch[:0]
	for _, p := range line {
		q := geom.Rotate(p, s.cfg.Tilt, s.yaw)
		if q.Z <= cull {
			if len(run) > 1 {
				dst.Polyline(run, width, c)
			}
			run = run[:0]
			continue
		}
		run = append(run, pr.Project(q))
	}
	if len(run) > 1 {
		dst.Polyline(run, width, c)
	}
	s.scratch = run[:0]
}
