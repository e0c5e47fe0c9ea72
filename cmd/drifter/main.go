// Drifter is an example external robot program: it drives around at full
// thrust, spins its gun the other way, and reverses at random intervals.
// Run it under the arena with `-botprg ./drifter`.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"battlebots/pkg/botapi"
	"battlebots/pkg/botkit"
)

type drifter struct {
	botkit.Base

	steps     int
	reversing bool
}

func (d *drifter) Init(h *botkit.Hook) {
	h.SetTurnRate(10)
	h.SetGunTurnRate(-10)
	h.SetThrust(10)
	h.DebugPrint("drifter ready")
}

func (d *drifter) Step(h *botkit.Hook, elapsed float64) {
	d.steps--
	if d.steps > 0 {
		return
	}
	d.steps = interval()
	d.reversing = !d.reversing

	if d.reversing {
		h.SetThrust(-10)
	} else {
		h.SetThrust(10)
	}
}

func (d *drifter) Scan(h *botkit.Hook, pos botapi.Vec2) {
	h.DebugPrint(fmt.Sprintf("contact at (%.1f, %.1f)", pos.X, pos.Y))
	h.Shoot(1)
}

func interval() int {
	return rand.Intn(20) + 16
}

func main() {
	if err := botkit.Run(&drifter{steps: interval()}); err != nil {
		log.Fatalf("drifter: %v", err)
	}
}
