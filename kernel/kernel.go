// Package kernel is the cooperative frame scheduler that drives the scenes.
//
// Every started task is stepped once per Tick, in start order, on the caller's
// goroutine. There is no preemption and no parallelism: a task owns its state
// and only runs inside Tick. Start returns a Handle whose Stop takes the task
// out of the rotation before its next frame.
package kernel

import (
	"sync/atomic"
	"time"
)

// Frame describes one display refresh.
type Frame struct {
	Seq     uint64
	Elapsed time.Duration
}

// Task is a cooperative unit of per-frame work.
type Task interface {
	Step(Frame)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(Frame)

func (f TaskFunc) Step(fr Frame) { f(fr) }

// TaskID numbers tasks in start order. IDs are never reused.
type TaskID uint32

// Handle controls one started task.
type Handle struct {
	id    TaskID
	name  string
	alive atomic.Bool
}

func (h *Handle) ID() TaskID   { return h.id }
func (h *Handle) Name() string { return h.name }
func (h *Handle) Alive() bool  { return h.alive.Load() }

// Stop removes the task before its next frame. It is safe to call more than
// once and from any goroutine.
func (h *Handle) Stop() { h.alive.Store(false) }

type taskState struct {
	h    *Handle
	task Task
}

// Kernel steps tasks at a fixed frame period.
type Kernel struct {
	tasks  []taskState
	nextID TaskID

	seq    uint64
	period time.Duration

	onPanic func(PanicInfo)
}

// New creates a kernel ticking at hz frames per second (60 if hz <= 0).
func New(hz int) *Kernel {
	if hz <= 0 {
		hz = 60
	}
	return &Kernel{period: time.Second / time.Duration(hz)}
}

// Period returns the duration of one frame.
func (k *Kernel) Period() time.Duration { return k.period }

// Seq returns the sequence number of the last completed frame.
func (k *Kernel) Seq() uint64 { return k.seq }

// Start registers t and returns its handle. A task started during Tick first
// runs on the following frame.
func (k *Kernel) Start(name string, t Task) *Handle {
	h := &Handle{id: k.nextID, name: name}
	k.nextID++
	h.alive.Store(true)
	k.tasks = append(k.tasks, taskState{h: h, task: t})
	return h
}

// Live returns the handles of tasks that will run on the next frame.
func (k *Kernel) Live() []*Handle {
	out := make([]*Handle, 0, len(k.tasks))
	for _, st := range k.tasks {
		if st.h.Alive() {
			out = append(out, st.h)
		}
	}
	return out
}

// Tick runs one frame of every live task and returns that frame.
func (k *Kernel) Tick() Frame {
	k.seq++
	fr := Frame{Seq: k.seq, Elapsed: time.Duration(k.seq) * k.period}

	n := len(k.tasks)
	for i := 0; i < n; i++ {
		st := k.tasks[i]
		if !st.h.Alive() {
			continue
		}
		k.step(st, fr)
	}

	k.compact()
	return fr
}

func (k *Kernel) step(st taskState, fr Frame) {
	defer func() {
		if v := recover(); v != nil {
			st.h.Stop()
			k.reportPanic(PanicInfo{TaskID: st.h.id, Task: st.h.name, Value: v})
		}
	}()
	st.task.Step(fr)
}

func (k *Kernel) compact() {
	live := k.tasks[:0]
	for _, st := range k.tasks {
		if st.h.Alive() {
			live = append(live, st)
		}
	}
	for i := len(live); i < len(k.tasks); i++ {
		k.tasks[i] = taskState{}
	}
	k.tasks = live
}
