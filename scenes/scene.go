// Package scenes defines the contract shared by the animated scenes and the
// kernel task that drives one scene onto its surface.
//
// Each scene lives in its own sub-package with a typed Config, a constructor
// that builds static geometry once, an Update that advances its accumulators
// by fixed per-frame deltas and a Draw that issues primitives to a
// canvas.Surface. Scenes never share state.
package scenes

import (
	"math/rand/v2"
	"time"

	"synapse/canvas"
	"synapse/kernel"
)

// Scene is one independent animated visualisation.
type Scene interface {
	Name() string
	// Update advances the scene by one frame.
	Update()
	// Draw renders the current state. It does not mutate scene state.
	Draw(dst canvas.Surface)
}

// Resizer is implemented by scenes that follow their surface size.
type Resizer interface {
	Resize(w, h int)
}

// Task adapts a scene and its exclusively owned surface to a kernel task.
type Task struct {
	Scene   Scene
	Surface canvas.Surface

	frames uint64
}

var _ kernel.Task = (*Task)(nil)

func NewTask(s Scene, dst canvas.Surface) *Task {
	return &Task{Scene: s, Surface: dst}
}

// Step advances and redraws the scene once.
func (t *Task) Step(kernel.Frame) {
	t.Scene.Update()
	t.Scene.Draw(t.Surface)
	t.frames++
}

// Frames returns how many frames this task has rendered.
func (t *Task) Frames() uint64 { return t.frames }

// NewRand returns the random source scenes draw their geometry from. A zero
// seed picks a time-based seed, so shapes differ between runs.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
