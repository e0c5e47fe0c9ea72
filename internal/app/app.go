//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"battlebots/internal/render"
	"battlebots/internal/ui"
	"battlebots/pkg/botapi"
)

var backgroundColor = color.RGBA{0x10, 0x12, 0x14, 0xff}

// hudWidth is the status panel width in pixels.
const hudWidth = 190

// View is what the renderer needs from the running world.
type View interface {
	Snapshots() []botapi.BotState
	Ticks() uint64
}

// Game adapts the world's published snapshot vector to the ebiten.Game
// interface. It only ever reads snapshots, never controller state.
type Game struct {
	view  View
	cfg   botapi.Config
	scale float64
	hud   *ui.HUD
	quit  <-chan struct{}
}

// New constructs a Game drawing the given view. names labels the robots in
// snapshot order on the HUD. Closing quit ends the window from the outside.
func New(view View, cfg botapi.Config, scale float64, names []string, quit <-chan struct{}) *Game {
	return &Game{
		view:  view,
		cfg:   cfg,
		scale: scale,
		hud:   ui.NewHUD(hudWidth, names),
		quit:  quit,
	}
}

// Update handles the quit keys and external shutdown.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}
	return nil
}

// Draw renders every robot's latest snapshot, then the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	screenH := g.cfg.WorldSize.Y * g.scale
	snaps := g.view.Snapshots()
	for _, s := range snaps {
		render.DrawBot(screen, s, g.scale, screenH)
	}
	g.hud.Draw(screen, int(g.cfg.WorldSize.X*g.scale), int(screenH), g.view.Ticks(), snaps)
}

// Layout returns the logical screen size: the arena plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.WorldSize.X*g.scale) + g.hud.Width(), int(g.cfg.WorldSize.Y * g.scale)
}

// Run opens the window and drives the game until the user quits or the
// quit channel closes.
func Run(g *Game) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("battlebots")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
