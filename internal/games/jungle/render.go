package jungle

import (
	"fmt"

	"github.com/vovakirdan/jungle-run/internal/core"
)

// Decoration parameters.
const (
	grassLines      = 8
	grassSpacing    = 2
	grassBand       = 20 // Distance of the first grass line from the bottom
	grassAlpha      = 0.04
	overlayAlpha    = 0.5
	titleTextSize   = 32
	scoreTextSize   = 20
	titleTextOffset = -10 // Relative to the vertical center
	scoreTextOffset = 24
)

// renderScene draws the playfield, the actor and all resident entities.
func (g *Game) renderScene(dst core.Surface) {
	w := g.world
	dst.Clear(w.Field)
	g.renderBackground(dst)
	g.renderActor(dst)
	for _, e := range w.Collectibles {
		dst.FillRect(e.Box, e.Color)
	}
	for _, e := range w.Obstacles {
		dst.FillRect(e.Box, e.Color)
	}
}

func (g *Game) renderBackground(dst core.Surface) {
	field := g.world.Field
	dst.FillRect(field, g.cfg.Playfield.Background.Color)

	grass := g.cfg.Playfield.Grass.WithAlpha(grassAlpha)
	for i := 0; i < grassLines; i++ {
		y := field.H - grassBand + float64(i*grassSpacing)
		dst.FillRect(core.NewBox(0, y, field.W, 1), grass)
	}
}

// renderActor draws the lion: a body square, a mane disc around the upper
// left corner and a small eye. Proportions follow a 60x60 sprite.
func (g *Game) renderActor(dst core.Surface) {
	b := g.world.Actor.Box
	dst.FillRect(b, g.cfg.Actor.Body.Color)
	dst.FillCircle(b.X+b.W/4, b.Y+b.H/4, b.W*34/60, g.cfg.Actor.Mane.Color)
	dst.FillRect(core.NewBox(b.X+b.W*2/3, b.Y+b.H*0.3, b.W/10, b.H/10), g.cfg.Actor.Eye.Color)
}

// renderGameOver draws the frozen scene under a dimmed overlay with the
// final score.
func (g *Game) renderGameOver(dst core.Surface) {
	g.renderScene(dst)

	field := g.world.Field
	dst.FillRect(field, core.ColorBlack.WithAlpha(overlayAlpha))
	cx, cy := field.Center()
	dst.FillText("Game Over", cx, cy+titleTextOffset, titleTextSize, core.AlignCenter, core.ColorWhite)
	dst.FillText(fmt.Sprintf("Final Score: %d", g.world.Score), cx, cy+scoreTextOffset, scoreTextSize, core.AlignCenter, core.ColorWhite)
}
