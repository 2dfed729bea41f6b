// Package layers draws a layered neural-net diagram with data particles
// flowing along the connections between consecutive layers.
package layers

import (
	"math/rand/v2"

	"synapse/canvas"
	"synapse/geom"
)

// Config describes the layer sizes and the particle flow between them.
type Config struct {
	// Layers is the node count of each layer, left to right.
	Layers     []int
	Left       float64
	Spacing    float64
	RowHeight  float64
	NodeRadius float64

	ParticleRadius float64
	MinParticles   int // per connection
	MaxParticles   int
	MinSpeed       float64
	SpeedJitter    float64
}

// DefaultConfig returns the layer stack used by the default page.
func DefaultConfig() Config {
	return Config{
		Layers:         []int{4, 6, 6, 3},
		Left:           80,
		Spacing:        150,
		RowHeight:      60,
		NodeRadius:     15,
		ParticleRadius: 3,
		MinParticles:   2,
		MaxParticles:   3,
		MinSpeed:       0.005,
		SpeedJitter:    0.005,
	}
}

// Connection is the visible segment between two nodes of adjacent layers,
// trimmed to the node rims.
type Connection struct {
	Layer      int
	Start, End geom.Point2D
}

// Layout returns node centres per layer, each layer centred vertically on a
// surface of the given height.
func Layout(cfg Config, height float64) [][]geom.Point2D {
	out := make([][]geom.Point2D, len(cfg.Layers))
	for li, count := range cfg.Layers {
		x := cfg.Left + float64(li)*cfg.Spacing
		startY := (height - float64(count)*cfg.RowHeight) / 2
		out[li] = make([]geom.Point2D, count)
		for i := range out[li] {
			out[li][i] = geom.Point2D{X: x, Y: startY + float64(i)*cfg.RowHeight + cfg.RowHeight/2}
		}
	}
	return out
}

// Connections links every node to every node of the next layer.
func Connections(nodes [][]geom.Point2D, nodeRadius float64) []Connection {
	var out []Connection
	for li := 0; li+1 < len(nodes); li++ {
		for _, a := range nodes[li] {
			for _, b := range nodes[li+1] {
				out = append(out, Connection{
					Layer: li,
					Start: geom.Point2D{X: a.X + nodeRadius, Y: a.Y},
					End:   geom.Point2D{X: b.X - nodeRadius, Y: b.Y},
				})
			}
		}
	}
	return out
}

// Scene is the layered diagram with its moving particles.
type Scene struct {
	cfg       Config
	rng       *rand.Rand
	nodes     [][]geom.Point2D
	conns     []Connection
	particles []Particle
}

// New lays the net out on a surface of the given height and seeds particles
// on every connection.
func New(cfg Config, rng *rand.Rand, height int) *Scene {
	s := &Scene{cfg: cfg, rng: rng}
	s.nodes = Layout(cfg, float64(height))
	s.conns = Connections(s.nodes, cfg.NodeRadius)

	spread := cfg.MaxParticles - cfg.MinParticles + 1
	if spread < 1 {
		spread = 1
	}
	for ci := range s.conns {
		n := cfg.MinParticles + rng.IntN(spread)
		for p := 0; p < n; p++ {
			s.particles = append(s.particles, Particle{
				Conn:     ci,
				Progress: rng.Float64(),
				Speed:    cfg.MinSpeed + rng.Float64()*cfg.SpeedJitter,
			})
		}
	}
	return s
}

func (s *Scene) Name() string { return "layers" }

func (s *Scene) Nodes() [][]geom.Point2D    { return s.nodes }
func (s *Scene) Connections() []Connection { return s.conns }
func (s *Scene) Particles() []Particle     { return s.particles }

func (s *Scene) Update() {
	for i := range s.particles {
		s.particles[i].Advance(s.rng, len(s.conns))
	}
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()

	edge := canvas.Alpha(canvas.Indigo, 0.15)
	for _, c := range s.conns {
		dst.Line(c.Start.X, c.Start.Y, c.End.X, c.End.Y, 1, edge)
	}

	r := s.cfg.ParticleRadius
	for _, p := range s.particles {
		pos := p.Position(s.conns)
		dst.FillCircle(pos.X, pos.Y, r, canvas.Radial(pos.X, pos.Y, r,
			canvas.Stop{Offset: 0, Color: canvas.Indigo},
			canvas.Stop{Offset: 1, Color: canvas.Alpha(canvas.Violet, 0.5)},
		))
	}

	nr := s.cfg.NodeRadius
	halo := canvas.Alpha(canvas.Indigo, 0.5)
	for _, layer := range s.nodes {
		for _, n := range layer {
			dst.Glow(n.X, n.Y, nr, 15, halo)
			dst.FillCircle(n.X, n.Y, nr, canvas.Radial(n.X, n.Y, nr,
				canvas.Stop{Offset: 0, Color: canvas.Indigo},
				canvas.Stop{Offset: 1, Color: canvas.Violet},
			))
		}
	}
}
