// Package botkit is the SDK for writing robot programs. A program
// implements Controller, hands it to Run, and is then driven by the
// simulation over line-delimited JSON on standard input and output. The
// same Controller can instead be mounted in-process by the simulator's
// actor backend.
package botkit

import "battlebots/pkg/botapi"

// Controller reacts to the simulation's messages. All methods are optional
// behaviour; embed Base to implement only the ones needed.
type Controller interface {
	// Init is called once before any steps, after the configuration has
	// arrived.
	Init(h *Hook)

	// Step is called periodically every few ticks (as set by the
	// configuration), with the seconds elapsed since the previous step.
	Step(h *Hook, elapsed float64)

	// Scan is called when an enemy robot crosses the radar beam.
	Scan(h *Hook, pos botapi.Vec2)

	// Kill is called when the robot dies or the simulation ends. Commands
	// issued from Kill are sent but no longer applied.
	Kill(h *Hook)
}

// Base is a Controller with no reactions, meant for embedding.
type Base struct{}

// Init does nothing.
func (Base) Init(*Hook) {}

// Step does nothing.
func (Base) Step(*Hook, float64) {}

// Scan does nothing.
func (Base) Scan(*Hook, botapi.Vec2) {}

// Kill does nothing.
func (Base) Kill(*Hook) {}
