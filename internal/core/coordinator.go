package core

// Outcome is the result of one supervised goroutine: its return value and
// error, or the recovered value when it panicked.
type Outcome[T any] struct {
	// ID is the spawn-order index of the goroutine that produced this
	// outcome.
	ID int

	// Value and Err are the function's return values when it finished
	// normally.
	Value T
	Err   error

	// Panic is the recovered value when the function panicked; nil
	// otherwise.
	Panic any
}

// Panicked reports whether the goroutine ended in a panic.
func (o Outcome[T]) Panicked() bool { return o.Panic != nil }

// Coordinator supervises a dynamically growing set of goroutines with the
// same result type. Panics inside supervised goroutines are captured and
// reported as ordinary outcomes; deciding whether to escalate is the
// caller's job.
type Coordinator[T any] struct {
	outcomes chan Outcome[T]

	count  int
	active int
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator[T any]() *Coordinator[T] {
	// The buffer lets every supervised goroutine deliver its outcome and
	// exit even when nobody is waiting anymore.
	return &Coordinator[T]{outcomes: make(chan Outcome[T], 1024)}
}

// Spawn starts f in a new goroutine under supervision, immediately. The
// spawn-order index is recorded in the eventual outcome.
func (c *Coordinator[T]) Spawn(f func() (T, error)) {
	id := c.count
	c.count++
	c.active++

	go func() {
		var out Outcome[T]
		out.ID = id
		defer func() {
			if r := recover(); r != nil {
				out.Panic = r
			}
			c.outcomes <- out
		}()
		out.Value, out.Err = f()
	}()
}

// WaitNext blocks until any supervised goroutine finishes or panics and
// returns its outcome. The remaining goroutines keep running. When nothing
// is left running, WaitNext returns false immediately.
func (c *Coordinator[T]) WaitNext() (Outcome[T], bool) {
	if c.active == 0 {
		return Outcome[T]{}, false
	}
	c.active--
	return <-c.outcomes, true
}

// WaitAll blocks until every remaining supervised goroutine has finished or
// panicked. Outcomes are indexed by spawn order; entries already consumed
// by WaitNext are nil.
func (c *Coordinator[T]) WaitAll() []*Outcome[T] {
	all := make([]*Outcome[T], c.count)
	for c.active > 0 {
		c.active--
		out := <-c.outcomes
		all[out.ID] = &out
	}
	return all
}
