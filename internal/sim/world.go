package sim

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"battlebots/internal/core"
	"battlebots/pkg/botapi"
)

// scanBeamHalfWidth is the angular tolerance, in radians, within which a
// robot counts as sitting on another robot's radar beam.
const scanBeamHalfWidth = 0.05

// World owns the full agent set, paces the global tick, and publishes a
// consistent batch snapshot of every agent's public state between ticks.
type World[D any] struct {
	cfg    botapi.Config
	agents []*Agent[D]
	lock   *core.TickLock

	mu        sync.Mutex
	snapshots []D

	ticks    atomic.Uint64
	stop     chan struct{}
	stopOnce sync.Once

	// scanPos extracts position and radar heading from a snapshot for
	// radar detection. Left nil, scan detection is disabled.
	scanPos func(D) (pos botapi.Vec2, radarHeading float64)
}

// NewWorld builds a world around the given controllers. The tick lock is
// sized for exactly these agents plus the world itself.
func NewWorld[D any](cfg botapi.Config, ctls []Controller[D]) (*World[D], error) {
	w := &World[D]{
		cfg:  cfg,
		lock: core.NewTickLock(len(ctls)),
		stop: make(chan struct{}),
	}
	for _, ctl := range ctls {
		w.agents = append(w.agents, NewAgent(ctl))
	}

	// Pre-populate so readers see a full snapshot vector before the first
	// tick completes.
	w.snapshots = make([]D, len(w.agents))
	for i, a := range w.agents {
		data, err := a.PublicData()
		if err != nil {
			return nil, fmt.Errorf("world: snapshot agent %s: %w", a.ID(), err)
		}
		w.snapshots[i] = data
	}
	return w, nil
}

// EnableScans turns on radar scan detection. The extractor maps a snapshot
// to the robot's position and absolute radar heading.
func (w *World[D]) EnableScans(extract func(D) (botapi.Vec2, float64)) {
	w.scanPos = extract
}

// TickLock returns the lock every agent of this world must run under.
func (w *World[D]) TickLock() *core.TickLock { return w.lock }

// Agents returns the agent set in its fixed, stable order.
func (w *World[D]) Agents() []*Agent[D] { return w.agents }

// Ticks returns the number of ticks triggered so far.
func (w *World[D]) Ticks() uint64 { return w.ticks.Load() }

// Stop asks the world to halt at the next tick boundary. It never blocks
// and is safe to call more than once.
func (w *World[D]) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Snapshots returns a copy of the published snapshot vector. The contents
// are replaced wholesale between ticks, never mutated in place, so a
// caller never observes a torn cross-agent view.
func (w *World[D]) Snapshots() []D {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]D, len(w.snapshots))
	copy(out, w.snapshots)
	return out
}

// Run drives the world until Stop is requested or an agent's state turns
// out poisoned. Each round it republishes the snapshot vector, delivers
// radar scans, triggers the tick, and sleeps off the rest of the tick
// budget. Snapshots are therefore always taken strictly between two ticks.
func (w *World[D]) Run() error {
	pacer := core.NewPacer(w.cfg.TickDuration())

	for {
		if err := w.publishSnapshots(); err != nil {
			return err
		}
		w.deliverScans()

		guard := w.lock.Take()
		if guard == nil {
			// Every agent has observed the stop as well.
			return nil
		}
		w.ticks.Add(1)

		select {
		case <-w.stop:
			guard.Stop()
		default:
		}

		pacer.Wait()
		guard.Done()
	}
}

// publishSnapshots replaces the shared snapshot vector with fresh copies of
// every agent's public data, in stable agent order.
func (w *World[D]) publishSnapshots() error {
	fresh := make([]D, len(w.agents))
	for i, a := range w.agents {
		data, err := a.PublicData()
		if err != nil {
			return fmt.Errorf("world: snapshot agent %s: %w", a.ID(), err)
		}
		fresh[i] = data
	}
	w.mu.Lock()
	w.snapshots = fresh
	w.mu.Unlock()
	return nil
}

// deliverScans tells each scanning-capable controller about enemy robots
// currently sitting on its radar beam, based on the just-published
// snapshots.
func (w *World[D]) deliverScans() {
	if w.scanPos == nil {
		return
	}
	w.mu.Lock()
	snaps := w.snapshots
	w.mu.Unlock()

	for i, a := range w.agents {
		pos, radar := w.scanPos(snaps[i])
		for j := range snaps {
			if j == i {
				continue
			}
			target, _ := w.scanPos(snaps[j])
			if pos.Dist(target) > w.cfg.RadarRange {
				continue
			}
			if angleDiff(radar, pos.AngleTo(target)) > scanBeamHalfWidth {
				continue
			}
			_ = a.WithCtl(func(c Controller[D]) {
				if s, ok := any(c).(Scanner); ok {
					s.Scan(target)
				}
			})
		}
	}
}

// angleDiff returns the absolute smallest difference between two angles.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
