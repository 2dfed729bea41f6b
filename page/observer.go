package page

// OnceObserver calls Fire the first time an observed visibility ratio
// reaches Threshold and ignores every observation after that.
type OnceObserver struct {
	Threshold float64
	Fire      func()

	done bool
}

// Observe reports whether this observation fired the callback.
func (o *OnceObserver) Observe(ratio float64) bool {
	if o.done || ratio < o.Threshold {
		return false
	}
	o.done = true
	if o.Fire != nil {
		o.Fire()
	}
	return true
}

// Done reports whether the observer has fired and detached.
func (o *OnceObserver) Done() bool { return o.done }
