//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"battlebots/pkg/botapi"
)

// HUD renders a status panel to the right of the arena view: the tick
// counter and one line per robot.
type HUD struct {
	width      int
	names      []string
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD of the given panel width. names labels the robots
// in snapshot order; missing entries fall back to their index.
func NewHUD(width int, names []string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, names: names}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, tick uint64, snaps []botapi.BotState) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, fmt.Sprintf("tick %d", tick), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i, s := range snaps {
		y += lineHeight
		if y > height-panelPadding {
			break
		}
		name := fmt.Sprintf("bot %d", i)
		if i < len(h.names) {
			name = h.names[i]
		}
		line := fmt.Sprintf("%s  hp %.0f  spd %.1f", name, s.HitPoints, s.Speed)
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
)
