package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"battlebots/internal/core"
)

// Agent owns one controller behind an exclusive lock and drives its
// init/tick/kill lifecycle in lockstep with the rest of the world.
type Agent[D any] struct {
	id string

	mu       sync.Mutex
	ctl      Controller[D]
	poisoned bool
}

// NewAgent wraps the controller in a new agent with a fresh id.
func NewAgent[D any](ctl Controller[D]) *Agent[D] {
	return &Agent[D]{id: uuid.NewString(), ctl: ctl}
}

// ID returns the agent's identifier.
func (a *Agent[D]) ID() string { return a.id }

// Run drives the controller until the world stops or the controller fails.
// It should be called once, normally from its own supervised goroutine.
// Tick work happens strictly between the tick lock's start and end
// barriers, so the world's snapshot pass never races an in-flight
// mutation. A nil error means the world stopped and the controller's Kill
// completed.
func (a *Agent[D]) Run(lock *core.TickLock) error {
	if err := a.withLock(func(c Controller[D]) error { return c.Init() }); err != nil {
		return fmt.Errorf("agent %s: init: %w", a.id, err)
	}

	prev := time.Now()
	for {
		guard := lock.Take()
		if guard == nil {
			if err := a.withLock(func(c Controller[D]) error { return c.Kill() }); err != nil {
				return fmt.Errorf("agent %s: kill: %w", a.id, err)
			}
			return nil
		}

		// The guard must be released even when the tick fails or
		// panics, or every other party would hang on the end barrier.
		err := func() error {
			defer guard.Done()
			now := time.Now()
			defer func() { prev = now }()
			return a.withLock(func(c Controller[D]) error { return c.Tick(now.Sub(prev)) })
		}()
		if err != nil {
			return fmt.Errorf("agent %s: tick: %w", a.id, err)
		}
	}
}

// PublicData returns a snapshot of the controller's public state. It takes
// the agent's lock briefly and is meant to be called between ticks, never
// from inside another agent's tick.
func (a *Agent[D]) PublicData() (D, error) {
	var data D
	err := a.withLock(func(c Controller[D]) error {
		data = c.PublicData()
		return nil
	})
	return data, err
}

// WithCtl runs f with exclusive access to the controller.
func (a *Agent[D]) WithCtl(f func(Controller[D])) error {
	return a.withLock(func(c Controller[D]) error {
		f(c)
		return nil
	})
}

// withLock runs f under the agent's lock. A panic inside f marks the state
// poisoned before resuming the panic, so later accessors fail with
// ErrStatePoisoned instead of reading half-mutated state.
func (a *Agent[D]) withLock(f func(Controller[D]) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisoned {
		return ErrStatePoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			a.poisoned = true
			panic(r)
		}
	}()
	return f(a.ctl)
}
