package bots

import (
	"math/rand"

	"battlebots/pkg/botapi"
	"battlebots/pkg/botkit"
)

func init() {
	RegisterBrain("drift", func() botkit.Controller { return NewDrift() })
}

// Drift is a simple wandering brain: full thrust, spinning body and gun,
// reversing direction at random intervals.
type Drift struct {
	botkit.Base

	steps     int
	reversing bool
}

// NewDrift creates a drift brain with a randomised reversal timer.
func NewDrift() *Drift {
	return &Drift{steps: driftInterval()}
}

// Init starts the robot turning and driving.
func (d *Drift) Init(h *botkit.Hook) {
	h.SetTurnRate(10)
	h.SetGunTurnRate(-10)
	h.SetThrust(10)
}

// Step flips the drive direction every few steps.
func (d *Drift) Step(h *botkit.Hook, elapsed float64) {
	d.steps--
	if d.steps > 0 {
		return
	}
	d.steps = driftInterval()
	d.reversing = !d.reversing

	if d.reversing {
		h.SetThrust(-10)
	} else {
		h.SetThrust(10)
	}
}

// Scan takes a pot shot at anything the radar finds.
func (d *Drift) Scan(h *botkit.Hook, pos botapi.Vec2) {
	h.Shoot(1)
}

func driftInterval() int {
	return rand.Intn(20) + 16
}
