package kernel

import "runtime/debug"

// PanicInfo contains details about a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Task   string
	Value  any
	Stack  []byte
}

// SetPanicHandler installs the callback invoked after a task panics. The
// panicking task is already stopped when it runs; other tasks keep going.
// The handler must not panic.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.onPanic = fn
}

func (k *Kernel) reportPanic(info PanicInfo) {
	if k.onPanic == nil {
		return
	}
	info.Stack = debug.Stack()
	k.onPanic(info)
}
