package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/platform/tui"
	"github.com/2022831007/SDL-Game-Project/internal/registry"
	"github.com/2022831007/SDL-Game-Project/internal/storage"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}

	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestScoreStoreNil(t *testing.T) {
	if scoreStore(nil) != nil {
		t.Error("a nil store should become a nil interface")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if scoreStore(store) == nil {
		t.Error("an open store should stay non-nil")
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()
	flagLogFile = filepath.Join(dir, "logs", "arcade.log")
	flagLogLevel = "debug"

	logger, closer, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	closer.Close()

	flagLogLevel = "loud"
	if _, _, err := newLogger("test", nil); err == nil {
		t.Error("an unknown level should be rejected")
	}
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"snake", "collide", "circle"} {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
		}
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	dir := t.TempDir()
	flagLogFile = filepath.Join(dir, "arcade.log")
	flagLogLevel = "info"

	if err := runPlay(nil, []string{"tetris"}); err == nil || !strings.Contains(err.Error(), "arcade list") {
		t.Errorf("runPlay(unknown) = %v, expected an unknown game error", err)
	}
	if err := runScores(nil, []string{"tetris"}); err == nil {
		t.Error("runScores(unknown) should fail")
	}

	// A database under a regular file cannot be created.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(blocker, "scores.db")
	if err := runScores(nil, []string{"snake"}); err == nil || !strings.Contains(err.Error(), "opening scores database") {
		t.Errorf("runScores() = %v, expected a database error", err)
	}
}

func TestServeFlagDefaults(t *testing.T) {
	def := tui.DefaultSSHServerConfig()
	if got := serveCmd.Flags().Lookup("ssh").DefValue; got != def.Address {
		t.Errorf("--ssh default = %q, expected %q", got, def.Address)
	}
	want := int(def.IdleTimeout / time.Minute)
	if got := serveCmd.Flags().Lookup("idle-timeout").DefValue; got != strconv.Itoa(want) {
		t.Errorf("--idle-timeout default = %q, expected %d", got, want)
	}
}
