package spectate

import (
	"battlebots/internal/sim"
	"battlebots/pkg/botapi"
)

// WorldSource adapts a running world to the feed's Source interface.
type WorldSource struct {
	world *sim.World[botapi.BotState]
	names []string
}

// NewWorldSource wraps the world. names labels the agents in the world's
// stable order; missing entries are left blank.
func NewWorldSource(w *sim.World[botapi.BotState], names []string) *WorldSource {
	return &WorldSource{world: w, names: names}
}

// Frame builds one feed payload from the latest published snapshots.
func (s *WorldSource) Frame() Frame {
	snaps := s.world.Snapshots()
	agents := s.world.Agents()
	bots := make([]Bot, len(snaps))
	for i := range snaps {
		bots[i] = Bot{ID: agents[i].ID(), State: snaps[i]}
		if i < len(s.names) {
			bots[i].Name = s.names[i]
		}
	}
	return Frame{Tick: s.world.Ticks(), Bots: bots}
}
