package scenes

import (
	"testing"

	"synapse/canvas"
	"synapse/kernel"
)

type countingScene struct {
	updates, draws int
}

func (s *countingScene) Name() string { return "counting" }
func (s *countingScene) Update()      { s.updates++ }

func (s *countingScene) Draw(dst canvas.Surface) {
	s.draws++
	dst.Clear()
}

func TestTaskStepsScene(t *testing.T) {
	sc := &countingScene{}
	rec := canvas.NewRecorder(10, 10)
	task := NewTask(sc, rec)

	k := kernel.New(60)
	h := k.Start(sc.Name(), task)
	k.Tick()
	k.Tick()
	h.Stop()
	k.Tick()

	if sc.updates != 2 || sc.draws != 2 || task.Frames() != 2 {
		t.Fatalf("updates=%d draws=%d frames=%d, want 2 each", sc.updates, sc.draws, task.Frames())
	}
	if n := rec.Count(canvas.OpClear); n != 2 {
		t.Fatalf("Count(OpClear) = %d, want 2", n)
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d: %d != %d with equal seeds", i, x, y)
		}
	}
	if NewRand(7).Uint64() == NewRand(8).Uint64() {
		t.Fatalf("different seeds produced the same first value")
	}
}
