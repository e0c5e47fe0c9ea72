//go:build !ebiten

package app

import (
	"os"
	"os/signal"

	"battlebots/pkg/botapi"
)

// View mirrors the GUI build's view interface so the wiring code is
// identical in both builds.
type View interface {
	Snapshots() []botapi.BotState
	Ticks() uint64
}

// Game is the headless placeholder for the GUI build's game.
type Game struct {
	quit <-chan struct{}
}

// New constructs the headless Game. The view, scale and names go unused
// without a window to draw into.
func New(view View, cfg botapi.Config, scale float64, names []string, quit <-chan struct{}) *Game {
	return &Game{quit: quit}
}

// Run blocks until an interrupt arrives or the simulation shuts down.
func Run(g *Game) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	select {
	case <-sig:
	case <-g.quit:
	}
	return nil
}
