package globe

import (
	"math"
	"testing"

	"synapse/canvas"
)

func TestDrawRespectsCull(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg, 600, 500)
	for i := 0; i < 37; i++ {
		s.Update()
	}
	rec := canvas.NewRecorder(600, 500)
	s.Draw(rec)

	if rec.Count(canvas.OpPolyline) < cfg.LatLines {
		t.Fatalf("polylines = %d, want at least %d", rec.Count(canvas.OpPolyline), cfg.LatLines)
	}

	// Every drawn sample lies inside the projected disc of the globe: the
	// nearest visible depth is -R/2, which scales by 250/190.
	maxR := cfg.Radius * cfg.Focal / (cfg.Focal - cfg.Radius*cfg.CullBelow)
	for _, op := range rec.Ops {
		if op.Kind != canvas.OpPolyline {
			continue
		}
		for _, p := range op.Points {
			if p.Z <= -cfg.Radius*cfg.CullBelow {
				t.Fatalf("culled sample drawn at depth %v", p.Z)
			}
			if d := math.Hypot(p.X-300, p.Y-250); d > maxR+1e-9 {
				t.Fatalf("sample %v at %v from centre, beyond %v", p, d, maxR)
			}
		}
	}
}

func TestEquatorIsHeavier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tilt = 0
	s := New(cfg, 600, 500)
	rec := canvas.NewRecorder(600, 500)
	s.Draw(rec)

	heavy := 0
	for _, op := range rec.Ops {
		if op.Kind == canvas.OpPolyline && op.Width == 2 {
			heavy++
		}
	}
	if heavy == 0 {
		t.Fatalf("no heavy equator run drawn")
	}
}

func TestUpdateAccumulatesYaw(t *testing.T) {
	s := New(DefaultConfig(), 600, 500)
	for i := 0; i < 1000; i++ {
		s.Update()
	}
	if math.Abs(s.Yaw()-5) > 1e-9 {
		t.Fatalf("Yaw() = %v, want 5", s.Yaw())
	}
}
