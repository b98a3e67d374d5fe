package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2022831007/SDL-Game-Project/internal/core"
	_ "github.com/2022831007/SDL-Game-Project/internal/games/circle"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets   int
	lastCfg  core.RuntimeConfig
	frames   [][]core.InputEvent
	state    core.GameState
	events   []core.Event
	delay    time.Duration
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
	g.state = core.GameState{Phase: "menu"}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Events)
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *stubGame) Render(dst core.Canvas) {
	g.rendered++
	dst.Clear(core.ColorSkyBlue)
}

func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) TickDelay() time.Duration { return g.delay }

type recordedScore struct {
	game  string
	score int
}

type fakeRecorder struct {
	saved []recordedScore
	err   error
}

func (r *fakeRecorder) SaveScore(gameID string, score int) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, recordedScore{gameID, score})
	return int64(len(r.saved)), nil
}

func newTestModel(g *stubGame, rec ScoreRecorder) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 7}
	return NewModel(g, rec, cfg, nil)
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	return next.(Model), cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &stubGame{delay: 100 * time.Millisecond}
	m := newTestModel(g, nil)

	if g.resets != 1 {
		t.Fatalf("expected one reset, got %d", g.resets)
	}
	if g.lastCfg.Profile != core.ProfileTerminal {
		t.Errorf("profile = %q, expected terminal", g.lastCfg.Profile)
	}
	if g.lastCfg.Seed != 7 {
		t.Errorf("seed = %d, expected 7", g.lastCfg.Seed)
	}
	if m.delay != 100*time.Millisecond {
		t.Errorf("delay = %v, expected the game's own delay", m.delay)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelFallbackDelay(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	if want := time.Second / DefaultTickRate; m.delay != want {
		t.Errorf("delay = %v, expected %v", m.delay, want)
	}
}

func TestModelDeliversInputInOrder(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.frames))
	}
	got := g.frames[0]
	want := []core.InputEvent{
		core.KeyEvent(core.ActionUp),
		core.ClickEvent(3, 4),
		core.KeyEvent(core.ActionLeft),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	// The frame is cleared after each step.
	tick(t, m)
	if len(g.frames[1]) != 0 {
		t.Errorf("second frame should be empty, got %+v", g.frames[1])
	}
}

func TestModelQuitKeyBecomesInterrupt(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd != nil {
		t.Error("quit key should wait for the game to terminate")
	}

	tick(t, m)
	if len(g.frames[0]) != 1 || g.frames[0][0].Action != core.ActionQuit {
		t.Errorf("expected the quit action to reach the game, got %+v", g.frames[0])
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	g := &stubGame{}
	rec := &fakeRecorder{}
	m := newTestModel(g, rec)

	g.state = core.GameState{Score: 15, GameOver: true, Phase: "game_over"}
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	if len(rec.saved) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(rec.saved))
	}
	if rec.saved[0] != (recordedScore{"stub", 15}) {
		t.Errorf("saved %+v", rec.saved[0])
	}

	// A new round followed by another game over saves again.
	g.state = core.GameState{Score: 0, Phase: "playing"}
	m, _ = tick(t, m)
	g.state = core.GameState{Score: 20, GameOver: true, Phase: "game_over"}
	tick(t, m)

	if len(rec.saved) != 2 || rec.saved[1].score != 20 {
		t.Errorf("expected the second round to be saved, got %+v", rec.saved)
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	g := &stubGame{}
	rec := &fakeRecorder{}
	m := newTestModel(g, rec)

	g.state = core.GameState{GameOver: true}
	tick(t, m)

	if len(rec.saved) != 0 {
		t.Errorf("zero scores should not be saved, got %+v", rec.saved)
	}
}

func TestModelSurvivesSaveError(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &fakeRecorder{err: errors.New("disk full")})

	g.state = core.GameState{Score: 5, GameOver: true}
	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("a failed save should not stop the game")
	}
	if m.Finished() {
		t.Error("a failed save should not finish the game")
	}
}

func TestModelFinishesWhenGameQuits(t *testing.T) {
	g := &stubGame{events: []core.Event{{Kind: core.EventQuit}}}
	m := newTestModel(g, nil)

	g.state = core.GameState{Quit: true, Phase: "terminated"}
	m, cmd := tick(t, m)

	if !m.Finished() {
		t.Fatal("model should be finished")
	}
	if cmd == nil {
		t.Fatal("standalone model should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("finished standalone model should render nothing")
	}

	// Further ticks do nothing.
	_, cmd = tick(t, m)
	if cmd != nil || len(g.frames) != 1 {
		t.Error("ticks after finishing should be ignored")
	}
}

func TestModelResizeResetsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)
	if g.resets != 1 {
		t.Errorf("same size should not reset, got %d resets", g.resets)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)
	if g.resets != 2 {
		t.Fatalf("new size should reset, got %d resets", g.resets)
	}
	if g.lastCfg.ScreenW != 60 || g.lastCfg.ScreenH != 30 {
		t.Errorf("reset with %dx%d, expected 60x30", g.lastCfg.ScreenW, g.lastCfg.ScreenH)
	}
	if w, h := m.screen.Size(); w != 60 || h != 30 {
		t.Errorf("screen is %dx%d, expected 60x30", w, h)
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	if m.View() == "" {
		t.Error("running model should render the game")
	}
	if g.rendered != 1 {
		t.Errorf("expected 1 render, got %d", g.rendered)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20}, nil)
	if s.game != nil {
		t.Fatal("session should start in the menu")
	}

	// Only the circle toy is registered in this test binary.
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	next, cmd = s.Update(TickMsg(time.Now()))
	s = next.(SessionModel)

	if s.game != nil {
		t.Fatal("a finished game should return to the menu")
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("finishing a game should not end the session")
		}
	}

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if cmd == nil {
		t.Fatal("q in the menu should end the session")
	}
	if s.View() != "" {
		t.Error("ended session should render nothing")
	}
}

func TestSessionScoreboard(t *testing.T) {
	src := &fakeSource{high: map[string]int{"circle": 12}}
	s := NewSessionModel(&fakeStore{fakeSource: src}, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, nil)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if cmd != nil {
		t.Error("tab should not end the session")
	}
	if s.scoreboard == nil || s.game != nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("session should render the scoreboard")
	}

	next, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.scoreboard != nil {
		t.Fatal("esc should return to the menu")
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("leaving the scoreboard should not end the session")
		}
	}
	if !strings.Contains(s.View(), "12") {
		t.Error("menu should show the high score again")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if cmd == nil || s.View() != "" {
		t.Error("q on the scoreboard should end the session")
	}
}

// fakeStore is a fakeSource that also accepts scores.
type fakeStore struct {
	*fakeSource
	fakeRecorder
}
