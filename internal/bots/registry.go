package bots

import "battlebots/pkg/botkit"

// BrainFactory constructs a fresh in-process brain for one robot.
type BrainFactory func() botkit.Controller

var brains = map[string]BrainFactory{}

// RegisterBrain adds a brain factory under the provided name.
func RegisterBrain(name string, f BrainFactory) {
	if name == "" || f == nil {
		return
	}
	brains[name] = f
}

// Brains exposes the registry of available brain factories.
func Brains() map[string]BrainFactory {
	return brains
}
