package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

// ScoreRecorder persists final scores. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreRecorder
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	delay      time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	fixedSize  bool // game declares its own canvas size; ignore resizes
	standalone bool // quit the program when the game terminates
	finished   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Profile = core.ProfileTerminal

	fixed := false
	if s, ok := game.(registry.Sized); ok {
		if w, h := s.ScreenSize(core.ProfileTerminal); w > 0 && h > 0 {
			cfg.ScreenW, cfg.ScreenH = w, h
			fixed = true
		}
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		fixedSize:  fixed,
		standalone: true,
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	// Pacing may depend on the profile picked by Reset.
	m.delay = registry.TickDelay(game, DefaultTickRate)
	return m
}

// Init starts the tick loop. The game was reset by NewModel.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH, "delay", m.delay)
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// Finished reports whether the game has terminated.
func (m Model) Finished() bool {
	return m.finished
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Quit keys become the external interrupt; the game terminates on the
	// next tick, which lets it report its own quit event.
	action, _ := m.keys.MapKey(msg)
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.fixedSize {
		return m, nil
	}
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Layout depends on the screen size, so the game restarts at its menu.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.logger.Debug("screen resized", "game", m.game.ID(), "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Info(ev.Kind, "game", m.game.ID(), "score", ev.Score, "phase", m.gameState.Phase)
	}

	// Save score on game over (once)
	if m.gameState.GameOver {
		if !m.scoreSaved && m.gameState.Score > 0 && m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
			}
		}
		m.scoreSaved = true
	} else {
		m.scoreSaved = false
	}

	if m.gameState.Quit {
		m.finished = true
		m.logger.Info("game finished", "game", m.game.ID(), "score", m.gameState.Score)
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.delay)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.finished && m.standalone {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store ScoreRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks drive the on-screen buttons
	)

	_, err := p.Run()
	return err
}
