// Package snake implements the classic snake game: a menu, a play field the
// snake crawls across one block per tick, and a game-over screen.
package snake

import (
	"math/rand"
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/config"
	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

// Game implements the Snake game. It owns every piece of mutable state.
type Game struct {
	cfg     config.SnakeConfig
	profile config.SnakeProfile
	rng     *rand.Rand
	tick    uint64

	phase Phase
	body  Body
	dir   Direction
	food  core.Point
	score int

	// Play field in logical units
	fieldW int
	fieldH int
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// New creates a Snake game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultSnakeConfig())
}

// NewWithConfig creates a Snake game with the given configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, profile: cfg.Terminal}
}

// Configure loads the YAML config at path (or the default search order when
// empty) and applies the difficulty preset. Takes effect on the next Reset.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, p)
	g.cfg = cfg
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Skin returns the profile's window title, font and background.
func (g *Game) Skin(p core.Profile) core.Skin {
	prof := g.cfg.Profile(p)
	return core.Skin{
		WindowTitle:    prof.Title,
		FontPath:       prof.FontPath,
		FontSize:       prof.FontSize,
		BackgroundPath: prof.BackgroundPath,
	}
}

// TickDelay returns the fixed delay between frames.
func (g *Game) TickDelay() time.Duration {
	return g.cfg.TickDelay()
}

// Reset prepares the game for the given screen and returns to the menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.profile = g.cfg.Profile(rc.Profile)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	g.fieldW = g.profile.Width
	if g.fieldW == 0 {
		g.fieldW = rc.ScreenW
	}
	g.fieldH = g.profile.Height
	if g.fieldH == 0 {
		g.fieldH = rc.ScreenH
	}

	g.reset()
	g.phase = PhaseMenu
}

// reset starts a fresh round: initial body on the center cell of the field
// heading right, zero score and new food.
func (g *Game) reset() {
	block := g.profile.BlockSize
	// Snap to the block grid so the head can land on food.
	head := core.Point{X: (g.fieldW / block / 2) * block, Y: (g.fieldH / block / 2) * block}
	g.body = NewBody(head, g.cfg.Rules.InitialLength, block)
	g.dir = DirRight
	g.score = 0
	g.spawnFood()
}

// Step applies the frame's input events in arrival order, then advances the
// snake one block if the game is being played.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	for _, ev := range in.Events {
		if g.phase == PhaseTerminated {
			break
		}
		events = g.handle(ev, events)
	}

	if g.phase == PhasePlaying {
		events = g.update(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handle applies a single input event.
func (g *Game) handle(ev core.InputEvent, events []core.Event) []core.Event {
	if ev.Kind == core.InputClick {
		if t, ok := g.buttonAt(ev.X, ev.Y); ok {
			events = g.fire(t, events)
		}
		return events
	}

	switch ev.Action {
	case core.ActionQuit:
		return g.fire(TriggerInterrupt, events)
	case core.ActionBack:
		return g.fire(TriggerQuit, events)
	case core.ActionConfirm:
		if g.phase == PhaseMenu {
			return g.fire(TriggerStart, events)
		}
		return g.fire(TriggerRestart, events)
	case core.ActionRestart:
		return g.fire(TriggerRestart, events)
	}

	if d, ok := directionFor(ev.Action); ok && g.phase == PhasePlaying {
		g.Steer(d)
	}
	return events
}

// fire runs a transition from the table. Illegal triggers are ignored.
func (g *Game) fire(t Trigger, events []core.Event) []core.Event {
	tr, ok := g.phase.Fire(t)
	if !ok {
		return events
	}
	if tr.Reset {
		g.reset()
		events = append(events, core.Event{Kind: core.EventRoundStarted})
	}
	g.phase = tr.To

	switch tr.To {
	case PhaseGameOver:
		events = append(events, core.Event{Kind: core.EventGameOver, Score: g.score})
	case PhaseTerminated:
		events = append(events, core.Event{Kind: core.EventQuit, Score: g.score})
	}
	return events
}

// Steer changes direction unless d is the reverse of the current one.
// Reports whether the direction changed.
func (g *Game) Steer(d Direction) bool {
	if d == g.dir.Opposite() {
		return false
	}
	g.dir = d
	return true
}

// update advances the snake by one tick.
func (g *Game) update(events []core.Event) []core.Event {
	g.tick++
	block := g.profile.BlockSize

	g.body.Shift()
	g.body.Advance(g.dir, block)

	if g.body.Head() == g.food {
		g.score += g.cfg.Rules.FoodReward
		events = append(events, core.Event{Kind: core.EventFoodEaten, Score: g.score})
		g.spawnFood()
		g.body.Grow()
	}

	if g.crashed() {
		events = g.fire(TriggerCrash, events)
	}
	return events
}

// crashed reports whether the head left the field or ran into the body.
func (g *Game) crashed() bool {
	head := g.body.Head()
	if head.X < 0 || head.X >= g.fieldW || head.Y < 0 || head.Y >= g.fieldH {
		return true
	}
	return g.body.HitsSelf()
}

// spawnFood places food on a uniformly random block-aligned cell of the field.
// Unless food_avoids_snake is set the cell may be under the snake.
func (g *Game) spawnFood() {
	block := g.profile.BlockSize
	cols := max(1, g.fieldW/block)
	rows := max(1, g.fieldH/block)

	if g.cfg.Rules.FoodAvoidsSnake {
		var free []core.Point
		for y := range rows {
			for x := range cols {
				p := core.Point{X: x * block, Y: y * block}
				if !g.body.Contains(p) {
					free = append(free, p)
				}
			}
		}
		if len(free) > 0 {
			g.food = free[g.rng.Intn(len(free))]
			return
		}
	}

	g.food = core.Point{
		X: g.rng.Intn(cols) * block,
		Y: g.rng.Intn(rows) * block,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Direction returns the current movement direction.
func (g *Game) Direction() Direction {
	return g.dir
}

// Food returns the food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Body returns a copy of the snake body.
func (g *Game) Body() Body {
	return Body{segs: g.body.Segments()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Quit:     g.phase == PhaseTerminated,
		Phase:    g.phase.String(),
	}
}

// ScreenSize returns the configured field size for a profile.
func (g *Game) ScreenSize(p core.Profile) (int, int) {
	prof := g.cfg.Profile(p)
	return prof.Width, prof.Height
}
