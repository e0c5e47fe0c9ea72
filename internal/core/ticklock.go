package core

import "sync"

// barrier is a reusable rendezvous point for a fixed number of parties.
// Each generation releases all waiters at once and resets for the next.
type barrier struct {
	mu      sync.Mutex
	parties int
	arrived int
	release chan struct{}
}

func newBarrier(parties int) *barrier {
	return &barrier{parties: parties, release: make(chan struct{})}
}

// wait blocks until all parties of the current generation have arrived.
func (b *barrier) wait() {
	b.mu.Lock()
	release := b.release
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.release = make(chan struct{})
		b.mu.Unlock()
		close(release)
		return
	}
	b.mu.Unlock()
	<-release
}

// TickLock synchronises the start and end of every simulation tick between
// a fixed set of agents and the world. It is built from two reusable
// barriers, each sized for every agent plus the world, and a run flag
// guarded by a read/write lock so every party can check it cheaply each
// tick while the rare stop still serialises against in-flight ticks.
type TickLock struct {
	start *barrier
	end   *barrier

	mu      sync.RWMutex
	running bool
}

// TickGuard is the token held by a party for the duration of one tick. It
// must be released exactly once with Done (or, for the world's shutdown
// path, consumed by Stop).
type TickGuard struct {
	lock *TickLock
	done bool
}

// NewTickLock creates a tick lock for the given number of agents. The world
// is the implicit extra party.
func NewTickLock(agents int) *TickLock {
	return &TickLock{
		start:   newBarrier(agents + 1),
		end:     newBarrier(agents + 1),
		running: true,
	}
}

// Take waits for the start of the next tick and returns a guard for it.
// Once the world has stopped, Take returns nil immediately, without
// touching a barrier, for every caller forever.
func (t *TickLock) Take() *TickGuard {
	t.mu.RLock()
	if !t.running {
		t.mu.RUnlock()
		return nil
	}
	t.start.wait()
	return &TickGuard{lock: t}
}

// Done finishes the holder's tick. The read hold on the run flag is
// released before the end barrier wait, so a stopping party is never
// blocked on a party that is merely finishing its tick. Done is idempotent.
func (g *TickGuard) Done() {
	if g.done {
		return
	}
	g.done = true
	g.lock.mu.RUnlock()
	g.lock.end.wait()
}

// Stop halts all future ticks. Only the world may call it. It releases the
// guard's own read hold, then blocks taking the write lock until every
// other party has finished its current tick segment, clears the run flag,
// and completes the tick like Done. Subsequent Take calls return nil.
func (g *TickGuard) Stop() {
	if g.done {
		return
	}
	g.done = true
	g.lock.mu.RUnlock()
	g.lock.mu.Lock()
	g.lock.running = false
	g.lock.mu.Unlock()
	g.lock.end.wait()
}
