package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2022831007/SDL-Game-Project/internal/platform/tui"
	"github.com/2022831007/SDL-Game-Project/internal/platform/window"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal, or in a window
with --window.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start / restart
  R            - Restart (after game over)
  Esc/B        - Quit button of the current screen
  Mouse        - Click the on-screen buttons
  Q/Ctrl+C     - Quit

Difficulty options (snake):
  easy   - 150 ms per move
  normal - 100 ms per move
  hard   - 70 ms per move
  fixed  - Keep the config's tick_delay_ms

Examples:
  arcade play snake
  arcade play snake --window
  arcade play snake --difficulty hard
  arcade play snake --config ./my-snake.yaml
  arcade play collide --window`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkGame(gameID); err != nil {
		return err
	}

	logger, closer, err := newLogger("arcade", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if err := registry.Configure(game, flagConfig, flagDifficulty); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	if flagWindow {
		var recorder window.ScoreRecorder
		if store != nil {
			recorder = store
		}
		err = window.Run(game, recorder, cfg, logger)
	} else {
		var recorder tui.ScoreRecorder
		if store != nil {
			recorder = store
		}
		err = tui.Run(game, recorder, cfg, logger)
	}

	if err != nil {
		logger.Error("game failed", "game", gameID, "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
