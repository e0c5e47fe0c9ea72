//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"battlebots/pkg/botapi"
)

var (
	bodyColor  = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	gunColor   = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	radarColor = color.RGBA{0x2f, 0x6f, 0xff, 0x66}
)

// Body and beam lengths in world units.
const (
	bodyRadius = 1.5
	gunLength  = 2.5
	radarReach = 6.0
)

// DrawBot paints one robot snapshot: a filled body disc, a gun barrel and
// a radar beam, each oriented by its own heading. screenH is the screen
// height in pixels, needed because the arena's origin is in the lower left
// while the screen's is in the upper left.
func DrawBot(dst *ebiten.Image, s botapi.BotState, scale, screenH float64) {
	x := float32(s.Pos.X * scale)
	y := float32(screenH - s.Pos.Y*scale)

	vector.DrawFilledCircle(dst, x, y, float32(bodyRadius*scale), bodyColor, true)

	drawBeam(dst, s.Pos, s.RadarHeading, radarReach, scale, screenH, 1, radarColor)
	drawBeam(dst, s.Pos, s.GunHeading, gunLength, scale, screenH, 2, gunColor)
	drawBeam(dst, s.Pos, s.Heading, bodyRadius, scale, screenH, 3, color.White)
}

// drawBeam strokes a line from pos along the given heading.
func drawBeam(dst *ebiten.Image, pos botapi.Vec2, heading, length, scale, screenH float64, width float32, clr color.Color) {
	end := pos.Add(botapi.Heading(heading).Scale(length))
	vector.StrokeLine(dst,
		float32(pos.X*scale), float32(screenH-pos.Y*scale),
		float32(end.X*scale), float32(screenH-end.Y*scale),
		width, clr, true)
}
