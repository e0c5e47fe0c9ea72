package sim

import (
	"errors"
	"time"

	"battlebots/pkg/botapi"
)

// ErrStatePoisoned reports that a controller panicked while its exclusive
// lock was held, so its state can no longer be trusted.
var ErrStatePoisoned = errors.New("controller state poisoned")

// Controller is the pluggable decision-making unit driving one agent. It is
// called only by its owning agent, under that agent's lock, except that
// PublicData is also read by the world between ticks.
type Controller[D any] interface {
	// Init is called once before the first tick.
	Init() error

	// Tick advances the controller by one simulation tick. The elapsed
	// wall-clock time since the previous tick is provided.
	Tick(elapsed time.Duration) error

	// Kill is called once after the world has stopped.
	Kill() error

	// PublicData returns a copy of the controller's externally visible
	// state.
	PublicData() D
}

// Scanner is an optional capability: controllers implementing it are told
// when an enemy robot crosses their radar beam.
type Scanner interface {
	Scan(pos botapi.Vec2)
}
