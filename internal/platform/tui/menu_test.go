package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2022831007/SDL-Game-Project/internal/core"
	"github.com/2022831007/SDL-Game-Project/internal/storage"
)

type fakeSource struct {
	high map[string]int
	err  error
}

func (s *fakeSource) TopScores(gameID string, _ int) ([]storage.ScoreEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if h, ok := s.high[gameID]; ok {
		return []storage.ScoreEntry{{ID: 1, GameID: gameID, Score: h}}, nil
	}
	return nil, nil
}

func (s *fakeSource) HighScore(gameID string) (int, error) {
	return s.high[gameID], s.err
}

func (s *fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &storage.GameStats{GameID: gameID, GamesCount: 1, HighScore: s.high[gameID]}, nil
}

func TestMenuShowsHighScores(t *testing.T) {
	m := NewMenuModel(&fakeSource{high: map[string]int{"circle": 42}}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if len(m.items) == 0 {
		t.Fatal("menu should list the registered games")
	}
	if m.items[0].HighScore != 42 {
		t.Errorf("high score = %d, expected 42", m.items[0].HighScore)
	}
	if !strings.Contains(m.View(), "42") {
		t.Error("view should show the high score")
	}
}

func TestMenuWithoutStore(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for _, item := range m.items {
		if item.HighScore != 0 {
			t.Errorf("%s: expected no high score without a store", item.GameID)
		}
	}
}

func TestMenuResult(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	m := NewMenuModel(nil, cfg)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if r := next.(MenuModel).Result(); r.GameID == "" || r.Quit {
		t.Errorf("enter should select a game, got %+v", r)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r := next.(MenuModel).Result(); !r.WantsScoreboard {
		t.Errorf("tab should ask for the scoreboard, got %+v", r)
	}

	next, _ = m.Update(runeKey('q'))
	if r := next.(MenuModel).Result(); !r.Quit {
		t.Errorf("q should quit, got %+v", r)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if r := next.(MenuModel).Result(); r.Config.ScreenW != 100 || r.Config.ScreenH != 40 {
		t.Errorf("resize should update the config, got %+v", r.Config)
	}
}

func TestScoreboardLoadError(t *testing.T) {
	sb := NewScoreboardModel(&fakeSource{err: errors.New("locked")}, 100, 30)
	if sb.loadErr == nil {
		t.Fatal("expected the load error to be kept")
	}
	if !strings.Contains(sb.View(), "locked") {
		t.Error("view should report the load error")
	}
}

func TestScoreboardStats(t *testing.T) {
	sb := NewScoreboardModel(&fakeSource{high: map[string]int{"circle": 9}}, 100, 30)
	if len(sb.scores) != 1 || sb.stats == nil {
		t.Fatalf("expected one score and stats, got %v %v", sb.scores, sb.stats)
	}
	if !strings.Contains(sb.statsLine(), "best 9") {
		t.Errorf("stats line = %q", sb.statsLine())
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
