// Package collide is a two-circle collision toy. One circle bounces
// horizontally on its own, the other is steered with the arrow keys, and
// every frame in which they touch is reported.
package collide

import (
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/config"
	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/raster"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

// Game implements the collision toy.
type Game struct {
	cfg     config.CollideConfig
	profile config.CollideProfile
	tick    uint64

	width, height int

	mover   core.Point // bounces on its own
	dx      int
	steered core.Point // follows the arrow keys

	colliding  bool
	collisions int
	quit       bool
}

func init() {
	registry.Register("collide", func() registry.Game {
		return New()
	})
}

// New creates the toy with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultCollideConfig())
}

// NewWithConfig creates the toy with the given configuration.
func NewWithConfig(cfg config.CollideConfig) *Game {
	return &Game{cfg: cfg}
}

// Configure loads the YAML config. There are no difficulty presets; any
// valid preset name is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadCollide(path)
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
	return "collide"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Circle Collision"
}

// TickDelay returns the frame delay of the active profile.
func (g *Game) TickDelay() time.Duration {
	return time.Duration(g.profile.TickDelayMs) * time.Millisecond
}

// ScreenSize returns the configured canvas size for a profile.
func (g *Game) ScreenSize(p core.Profile) (int, int) {
	prof := g.cfg.Profile(p)
	return prof.Width, prof.Height
}

// Reset places both circles at their starting positions.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.profile = g.cfg.Profile(rc.Profile)
	g.tick = 0

	g.width = g.profile.Width
	if g.width == 0 {
		g.width = rc.ScreenW
	}
	g.height = g.profile.Height
	if g.height == 0 {
		g.height = rc.ScreenH
	}

	r := g.profile.Radius
	g.mover = core.Point{X: r, Y: g.height / 2}
	g.dx = g.profile.Speed
	g.steered = core.Point{X: g.width / 2, Y: r}
	g.colliding = false
	g.collisions = 0
	g.quit = false
}

// Step moves the steered circle for every arrow key in the frame, then moves
// the bouncing circle and checks for a collision.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	for _, ev := range in.Events {
		if ev.Kind != core.InputKey {
			continue
		}
		switch ev.Action {
		case core.ActionQuit, core.ActionBack:
			g.quit = true
		case core.ActionUp:
			g.steered.Y -= g.profile.Step
		case core.ActionDown:
			g.steered.Y += g.profile.Step
		case core.ActionLeft:
			g.steered.X -= g.profile.Step
		case core.ActionRight:
			g.steered.X += g.profile.Step
		}
	}
	if g.quit {
		events = append(events, core.Event{Kind: core.EventQuit, Score: g.collisions})
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tick++
	r := g.profile.Radius
	g.mover.X += g.dx
	if g.mover.X >= g.width-r || g.mover.X <= r {
		g.dx = -g.dx
	}

	g.colliding = raster.CirclesOverlap(g.mover.X, g.mover.Y, g.steered.X, g.steered.Y, r)
	if g.colliding {
		g.collisions++
		events = append(events, core.Event{Kind: core.EventCollision, Score: g.collisions})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws both circle outlines on a white background.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorWhite)
	r := g.profile.Radius

	raster.Midpoint(g.mover.X, g.mover.Y, r, func(x, y int) {
		dst.DrawPoint(x, y, core.ColorRed)
	})
	raster.Midpoint(g.steered.X, g.steered.Y, r, func(x, y int) {
		dst.DrawPoint(x, y, core.ColorBlue)
	})
}

// Colliding reports whether the circles touched in the last frame.
func (g *Game) Colliding() bool {
	return g.colliding
}

// Positions returns the centers of the bouncing and the steered circle.
func (g *Game) Positions() (mover, steered core.Point) {
	return g.mover, g.steered
}

// State returns the current game state. Score counts colliding frames.
func (g *Game) State() core.GameState {
	phase := "running"
	if g.quit {
		phase = "terminated"
	}
	return core.GameState{
		Score: g.collisions,
		Quit:  g.quit,
		Phase: phase,
	}
}
