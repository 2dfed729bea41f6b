package layers

import (
	"math"
	"math/rand/v2"
	"testing"

	"synapse/canvas"
)

func TestLayoutCentresLayers(t *testing.T) {
	nodes := Layout(DefaultConfig(), 500)
	if len(nodes) != 4 {
		t.Fatalf("layers = %d, want 4", len(nodes))
	}
	// 4 nodes * 60 = 240 tall, starting at 130.
	if got := nodes[0][0]; got.X != 80 || got.Y != 160 {
		t.Fatalf("first node = (%v, %v), want (80, 160)", got.X, got.Y)
	}
	if got := nodes[3][2]; got.X != 530 || got.Y != 310 {
		t.Fatalf("last node = (%v, %v), want (530, 310)", got.X, got.Y)
	}
}

func TestConnectionsFullyLinkAdjacentLayers(t *testing.T) {
	cfg := DefaultConfig()
	conns := Connections(Layout(cfg, 500), cfg.NodeRadius)
	if want := 4*6 + 6*6 + 6*3; len(conns) != want {
		t.Fatalf("connections = %d, want %d", len(conns), want)
	}
	for _, c := range conns {
		if c.End.X-c.Start.X != cfg.Spacing-2*cfg.NodeRadius {
			t.Fatalf("connection %+v not trimmed to node rims", c)
		}
	}
}

func TestParticleCountsPerConnection(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(5, 5)), 500)
	per := make([]int, len(s.Connections()))
	for _, p := range s.Particles() {
		per[p.Conn]++
	}
	for ci, n := range per {
		if n < 2 || n > 3 {
			t.Fatalf("connection %d has %d particles, want 2..3", ci, n)
		}
	}
}

func TestParticleWrapsOntoKnownConnection(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for _, speed := range []float64{0.005, 0.0073, 0.01, 0.3} {
		for _, p0 := range []float64{0, 0.25, 0.999} {
			p := Particle{Conn: 3, Progress: p0, Speed: speed}
			wrapped := false
			for i := 0; i <= int(math.Ceil(1/speed)); i++ {
				before := p.Progress
				p.Advance(rng, 84)
				if p.Progress < before {
					wrapped = true
				}
				if p.Progress < 0 || p.Progress >= 1 {
					t.Fatalf("speed %v: progress %v outside [0,1)", speed, p.Progress)
				}
				if p.Conn < 0 || p.Conn >= 84 {
					t.Fatalf("speed %v: connection %d outside the known set", speed, p.Conn)
				}
			}
			if !wrapped {
				t.Fatalf("speed %v from %v: no wrap after ceil(1/s)+1 updates", speed, p0)
			}
		}
	}
}

func TestDrawIssuesEveryPrimitive(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(1, 2)), 500)
	s.Update()

	rec := canvas.NewRecorder(600, 500)
	s.Draw(rec)

	nodes := 4 + 6 + 6 + 3
	if got := rec.Count(canvas.OpClear); got != 1 {
		t.Fatalf("clears = %d, want 1", got)
	}
	if got := rec.Count(canvas.OpLine); got != len(s.Connections()) {
		t.Fatalf("lines = %d, want %d", got, len(s.Connections()))
	}
	if got := rec.Count(canvas.OpFillCircle); got != len(s.Particles())+nodes {
		t.Fatalf("filled circles = %d, want %d", got, len(s.Particles())+nodes)
	}
	if got := rec.Count(canvas.OpGlow); got != nodes {
		t.Fatalf("glows = %d, want %d", got, nodes)
	}
}
