package network

import (
	"math/rand/v2"
	"testing"

	"synapse/canvas"
)

func TestNodesStayNearViewport(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(1, 1)), 300, 200)
	for i := 0; i < 5000; i++ {
		s.Update()
	}
	for i, n := range s.Nodes() {
		if n.X < -1 || n.X > 301 || n.Y < -1 || n.Y > 201 {
			t.Fatalf("node %d at (%v, %v) escaped the viewport", i, n.X, n.Y)
		}
	}
}

func TestResizeTurnsOutsideNodesBack(t *testing.T) {
	s := New(DefaultConfig(), rand.New(rand.NewPCG(2, 2)), 800, 600)
	s.Resize(100, 100)
	s.Update()
	for i, n := range s.Nodes() {
		if n.X > 100 && n.VX > 0 {
			t.Fatalf("node %d at x=%v still heading right (vx=%v)", i, n.X, n.VX)
		}
		if n.Y > 100 && n.VY > 0 {
			t.Fatalf("node %d at y=%v still heading down (vy=%v)", i, n.Y, n.VY)
		}
	}
}

func TestDrawLinksOnlyCloseNodes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 0
	s := New(cfg, rand.New(rand.NewPCG(3, 3)), 400, 400)
	s.nodes = []Node{{X: 10, Y: 10}, {X: 100, Y: 10}, {X: 390, Y: 390}}

	rec := canvas.NewRecorder(400, 400)
	s.Draw(rec)

	if got := rec.Count(canvas.OpFade); got != 1 {
		t.Fatalf("fades = %d, want 1", got)
	}
	if got := rec.Count(canvas.OpFillCircle); got != 3 {
		t.Fatalf("nodes drawn = %d, want 3", got)
	}
	if got := rec.Count(canvas.OpLine); got != 1 {
		t.Fatalf("links drawn = %d, want 1", got)
	}
}
