package kernel

import (
	"runtime"
	"sync/atomic"
)

// Mailbox is a fixed-size multi-producer, single-consumer queue. Producers
// may run on any goroutine (input pollers); the frame loop drains it.
type Mailbox[T any] struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots []mailboxSlot[T]
}

type mailboxSlot[T any] struct {
	seq atomic.Uint32
	v   T
}

// NewMailbox allocates a mailbox with the given number of slots (at least 1).
func NewMailbox[T any](slots int) *Mailbox[T] {
	if slots < 1 {
		slots = 1
	}
	mb := &Mailbox[T]{slots: make([]mailboxSlot[T], slots)}
	for i := range mb.slots {
		mb.slots[i].seq.Store(uint32(i))
	}
	return mb
}

// Cap returns the slot count.
func (mb *Mailbox[T]) Cap() int { return len(mb.slots) }

// TrySend enqueues v, returning false if the mailbox is full.
func (mb *Mailbox[T]) TrySend(v T) bool {
	n := uint32(len(mb.slots))
	for {
		pos := mb.head.Load()
		slot := &mb.slots[pos%n]
		seq := slot.seq.Load()
		switch dif := int32(seq - pos); {
		case dif == 0:
			if mb.head.CompareAndSwap(pos, pos+1) {
				slot.v = v
				slot.seq.Store(pos + 1)
				return true
			}
		case dif < 0:
			return false
		}
		runtime.Gosched()
	}
}

// Send enqueues v, yielding until a slot frees up.
func (mb *Mailbox[T]) Send(v T) {
	for !mb.TrySend(v) {
		runtime.Gosched()
	}
}

// TryRecv dequeues one value, returning false if the mailbox is empty.
func (mb *Mailbox[T]) TryRecv() (T, bool) {
	n := uint32(len(mb.slots))
	pos := mb.tail.Load()
	slot := &mb.slots[pos%n]
	if int32(slot.seq.Load()-(pos+1)) < 0 {
		var zero T
		return zero, false
	}
	v := slot.v
	var zero T
	slot.v = zero
	mb.tail.Store(pos + 1)
	slot.seq.Store(pos + n)
	return v, true
}

// Drain dequeues everything currently queued, calling fn for each value.
func (mb *Mailbox[T]) Drain(fn func(T)) int {
	count := 0
	for {
		v, ok := mb.TryRecv()
		if !ok {
			return count
		}
		fn(v)
		count++
	}
}
