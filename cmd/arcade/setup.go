package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/platform/tui"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
	"github.com/2022831007/SDL-Game-Project/internal/storage"
)

// checkGame fails for a game ID nothing registered.
func checkGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}
	return nil
}

// newLogger builds the logger from --log-level and --log-file. extra, when
// non-nil, receives every line as well (serve logs to stderr too). The
// returned closer must be closed on exit.
func newLogger(prefix string, extra io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path, err := storage.ExpandPath(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	var w io.Writer = f
	if extra != nil {
		w = io.MultiWriter(f, extra)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, f, nil
}

// openStore opens the score database. Failures are a warning: the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// scoreStore converts a possibly nil store into an interface that is nil
// in the same case.
func scoreStore(store *storage.Store) tui.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// terminalConfig sizes a runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// portOf returns the port of a listen address, or the address itself when
// it has no port.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return addr
	}
	return port
}
