// Package circle draws a single static circle with the column-scan
// rasterizer and waits to be closed.
package circle

import (
	"github.com/2022831007/SDL-Game-Project/internal/config"
	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/raster"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

// Game implements the circle rasterizer demo.
type Game struct {
	cfg     config.CircleConfig
	profile config.CircleProfile

	width, height int
	quit          bool
}

func init() {
	registry.Register("circle", func() registry.Game {
		return New()
	})
}

// New creates the demo with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultCircleConfig())
}

// NewWithConfig creates the demo with the given configuration.
func NewWithConfig(cfg config.CircleConfig) *Game {
	return &Game{cfg: cfg}
}

// Configure loads the YAML config. Presets are validated and ignored.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadCircle(path)
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "circle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Circle"
}

// ScreenSize returns the configured canvas size for a profile.
func (g *Game) ScreenSize(p core.Profile) (int, int) {
	prof := g.cfg.Profile(p)
	return prof.Width, prof.Height
}

// Reset sizes the canvas.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.profile = g.cfg.Profile(rc.Profile)
	g.width = g.profile.Width
	if g.width == 0 {
		g.width = rc.ScreenW
	}
	g.height = g.profile.Height
	if g.height == 0 {
		g.height = rc.ScreenH
	}
	g.quit = false
}

// Step only watches for the quit signal; the picture never changes.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.quit && (in.Has(core.ActionQuit) || in.Has(core.ActionBack)) {
		g.quit = true
		return core.StepResult{State: g.State(), Events: []core.Event{{Kind: core.EventQuit}}}
	}
	return core.StepResult{State: g.State()}
}

// Center returns the circle's center.
func (g *Game) Center() core.Point {
	return core.Point{X: g.width / 2, Y: g.height / 2}
}

// Render draws the circle in blue on white.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorWhite)
	c := g.Center()
	raster.ColumnScan(c.X, c.Y, g.profile.Radius, func(x, y int) {
		dst.DrawPoint(x, y, core.ColorBlue)
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := "showing"
	if g.quit {
		phase = "terminated"
	}
	return core.GameState{Quit: g.quit, Phase: phase}
}
