package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ScoreRecorder persists final scores. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Engine adapts a registry.Game to ebiten.Game. Input is polled on every
// ebiten tick and queued in arrival order; the game steps once every
// stepTicks ticks, so its pace follows its frame delay.
type Engine struct {
	game   registry.Game
	store  ScoreRecorder
	logger *log.Logger
	assets *Assets
	input  inputSource

	width, height int
	stepTicks     int
	ticks         int
	frame         core.InputFrame
	state         core.GameState
	scoreSaved    bool
}

// NewEngine resets game for a window of its configured size, or
// DefaultWidth x DefaultHeight, and loads its assets.
func NewEngine(game registry.Game, store ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	cfg.Profile = core.ProfileWindow
	cfg.ScreenW, cfg.ScreenH = windowSize(game)

	assets, err := LoadAssets(skinFor(game))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		game:   game,
		store:  store,
		logger: logger,
		assets: assets,
		input:  &inputReader{},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	game.Reset(cfg)
	e.state = game.State()
	// Pacing may depend on the profile picked by Reset.
	delay := registry.TickDelay(game, PollTPS)
	e.stepTicks = StepTicks(delay)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed,
		"width", cfg.ScreenW, "height", cfg.ScreenH, "delay", delay)
	return e, nil
}

// windowSize is the game's configured window size, or the default.
func windowSize(game registry.Game) (int, int) {
	if s, ok := game.(registry.Sized); ok {
		if w, h := s.ScreenSize(core.ProfileWindow); w > 0 && h > 0 {
			return w, h
		}
	}
	return DefaultWidth, DefaultHeight
}

// skinFor returns the game's skin with its title filled in.
func skinFor(game registry.Game) core.Skin {
	var skin core.Skin
	if s, ok := game.(registry.Skinned); ok {
		skin = s.Skin(core.ProfileWindow)
	}
	if skin.WindowTitle == "" {
		skin.WindowTitle = game.Title()
	}
	return skin
}

// Update polls input and steps the game when a step is due, or at once when
// the window is being closed. It returns ebiten.Termination after the game
// has terminated.
func (e *Engine) Update() error {
	if e.state.Quit {
		return ebiten.Termination
	}

	e.input.read(&e.frame)
	e.ticks++
	if e.ticks < e.stepTicks && !e.frame.Has(core.ActionQuit) {
		return nil
	}
	e.ticks = 0

	result := e.game.Step(e.frame)
	e.frame.Clear()
	e.state = result.State

	for _, ev := range result.Events {
		e.logger.Info(ev.Kind, "game", e.game.ID(), "score", ev.Score, "phase", e.state.Phase)
	}
	e.recordScore()

	if e.state.Quit {
		e.logger.Info("game finished", "game", e.game.ID(), "score", e.state.Score)
		return ebiten.Termination
	}
	return nil
}

// recordScore saves a positive score once per game over.
func (e *Engine) recordScore() {
	if !e.state.GameOver {
		e.scoreSaved = false
		return
	}
	if e.scoreSaved {
		return
	}
	e.scoreSaved = true
	if e.store == nil || e.state.Score <= 0 {
		return
	}
	if _, err := e.store.SaveScore(e.game.ID(), e.state.Score); err != nil {
		e.logger.Warn("cannot save score", "game", e.game.ID(), "err", err)
	}
}

// Draw renders the game into the window.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.game.Render(NewCanvas(screen, e.assets.Face, e.assets.Background))
}

// Layout keeps the logical size fixed; ebiten scales it to the window.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.width, e.height
}

// State returns the game state as of the last update.
func (e *Engine) State() core.GameState {
	return e.state
}

// Run opens a window and plays game until it terminates or the window is
// closed. Asset failures are returned before any window opens.
func Run(game registry.Game, store ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	e, err := NewEngine(game, store, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(skinFor(game).WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(PollTPS)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
