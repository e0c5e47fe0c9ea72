package bots

import (
	"sync"
	"testing"

	"battlebots/pkg/botapi"
	"battlebots/pkg/botkit"
)

// recorderBrain counts its callbacks and asks for a fixed thrust on init.
type recorderBrain struct {
	mu    sync.Mutex
	inits int
	steps int
	kills int
}

func (b *recorderBrain) counts() (inits, steps, kills int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inits, b.steps, b.kills
}

func (b *recorderBrain) Init(h *botkit.Hook) {
	b.mu.Lock()
	b.inits++
	b.mu.Unlock()
	h.SetThrust(4)
}

func (b *recorderBrain) Step(h *botkit.Hook, elapsed float64) {
	b.mu.Lock()
	b.steps++
	b.mu.Unlock()
}

func (b *recorderBrain) Scan(h *botkit.Hook, pos botapi.Vec2) {}

func (b *recorderBrain) Kill(h *botkit.Hook) {
	b.mu.Lock()
	b.kills++
	b.mu.Unlock()
}

func TestActorLifecycle(t *testing.T) {
	cfg := botapi.DefaultConfig()
	cfg.TicksPerStep = 1

	brain := &recorderBrain{}
	a := NewActor("actor-0", botapi.NewVec2(1, 2), cfg, brain, testLogger())

	if err := a.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	mb := a.mb.(*chanMailbox)
	waitFor(t, func() bool { return len(mb.resps) > 0 })
	if inits, _, _ := brain.counts(); inits != 1 {
		t.Fatalf("inits = %d, want 1", inits)
	}

	// The boundary tick applies the brain's init commands and sends the
	// first step, which the brain handles asynchronously.
	if err := a.Tick(0); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := a.PublicData().Thrust; got != 4 {
		t.Fatalf("thrust = %v, want 4", got)
	}
	waitFor(t, func() bool { _, steps, _ := brain.counts(); return steps == 1 })

	// Kill reaches the brain even though the loop is being released.
	if err := a.Kill(); err != nil {
		t.Fatalf("kill: %v", err)
	}
	waitFor(t, func() bool { _, _, kills := brain.counts(); return kills == 1 })
}

func TestBrainRegistry(t *testing.T) {
	if Brains()["drift"] == nil {
		t.Fatal("drift brain not registered")
	}

	called := false
	RegisterBrain("recorder", func() botkit.Controller {
		called = true
		return &recorderBrain{}
	})
	f := Brains()["recorder"]
	if f == nil {
		t.Fatal("recorder brain not registered")
	}
	if f(); !called {
		t.Fatal("factory not invoked")
	}

	RegisterBrain("", func() botkit.Controller { return nil })
	if _, ok := Brains()[""]; ok {
		t.Fatal("empty brain name registered")
	}
}
