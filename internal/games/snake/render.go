package snake

import (
	"strconv"

	"github.com/2022831007/SDL-Game-Project/internal/config"
	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// Render draws the current phase. It never mutates the game.
func (g *Game) Render(dst core.Canvas) {
	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhasePlaying:
		g.renderPlay(dst)
	case PhaseGameOver:
		// The game-over screen is drawn over the frame the snake crashed in.
		g.renderPlay(dst)
		g.renderGameOver(dst)
	default:
		dst.Clear(core.ColorBlack)
	}
}

func (g *Game) renderMenu(dst core.Canvas) {
	layout := g.profile.Layout
	dst.DrawBackground(core.ColorSkyBlue)
	g.drawButton(dst, layout.StartButton, core.ColorBlue)
	g.drawButton(dst, layout.MenuQuitButton, core.ColorRed)
}

func (g *Game) renderPlay(dst core.Canvas) {
	block := g.profile.BlockSize
	dst.Clear(core.ColorSkyBlue)

	for _, seg := range g.body.segs {
		dst.FillRect(core.NewRect(seg.X, seg.Y, block, block), core.ColorGreen)
	}
	dst.FillRect(core.NewRect(g.food.X, g.food.Y, block, block), core.ColorRed)

	at := g.profile.Layout.ScoreText
	dst.DrawText(at.X, at.Y, "Score: "+strconv.Itoa(g.score), core.ColorWhite)
}

func (g *Game) renderGameOver(dst core.Canvas) {
	layout := g.profile.Layout

	at := g.anchor(layout.GameOverText)
	dst.DrawText(at.X, at.Y, "GAME OVER!", core.ColorRed)
	at = g.anchor(layout.FinalScoreText)
	dst.DrawText(at.X, at.Y, "FINAL SCORE: "+strconv.Itoa(g.score), core.ColorWhite)

	g.drawButton(dst, layout.RestartButton, core.ColorGreen)
	g.drawButton(dst, layout.GameOverQuitButton, core.ColorRed)
}

func (g *Game) drawButton(dst core.Canvas, b config.ButtonConfig, fill core.Color) {
	dst.FillRect(g.buttonRect(b), fill)
	at := g.anchor(b.LabelAt)
	dst.DrawText(at.X, at.Y, b.Label, core.ColorWhite)
}

// center returns the center of the play field, the origin of the layout.
func (g *Game) center() (int, int) {
	return g.fieldW / 2, g.fieldH / 2
}

// anchor places a center-relative text anchor on the field.
func (g *Game) anchor(o config.OffsetConfig) core.Point {
	cx, cy := g.center()
	return o.Point().Add(core.Point{X: cx, Y: cy})
}

// buttonRect places a layout button on the field.
func (g *Game) buttonRect(b config.ButtonConfig) core.Rect {
	cx, cy := g.center()
	return b.Rect.Rect().Offset(cx, cy)
}

// buttonAt hit-tests a click against the buttons drawn on the current screen.
func (g *Game) buttonAt(x, y int) (Trigger, bool) {
	layout := g.profile.Layout

	switch g.phase {
	case PhaseMenu:
		if g.buttonRect(layout.StartButton).Contains(x, y) {
			return TriggerStart, true
		}
		if g.buttonRect(layout.MenuQuitButton).Contains(x, y) {
			return TriggerQuit, true
		}
	case PhaseGameOver:
		if g.buttonRect(layout.RestartButton).Contains(x, y) {
			return TriggerRestart, true
		}
		if g.buttonRect(layout.GameOverQuitButton).Contains(x, y) {
			return TriggerQuit, true
		}
	}
	return 0, false
}
