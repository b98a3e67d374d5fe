package collide

import (
	"testing"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

func newWindowGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Profile: core.ProfileWindow})
	return g
}

func keys(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestStartingPositions(t *testing.T) {
	g := newWindowGame()
	mover, steered := g.Positions()

	if mover != (core.Point{X: 30, Y: 300}) {
		t.Errorf("mover = %+v, expected (30, 300)", mover)
	}
	if steered != (core.Point{X: 400, Y: 30}) {
		t.Errorf("steered = %+v, expected (400, 30)", steered)
	}
	if g.TickDelay().Milliseconds() != 16 {
		t.Errorf("TickDelay() = %v, expected 16ms", g.TickDelay())
	}
}

func TestMoverBounces(t *testing.T) {
	g := newWindowGame()
	g.steered = core.Point{X: -1000, Y: -1000}

	flips := 0
	lastDx := g.dx
	for range 400 {
		g.Step(core.NewInputFrame())
		mover, _ := g.Positions()
		if mover.X < 30 || mover.X > 770 {
			t.Fatalf("mover left the bounce range at x=%d", mover.X)
		}
		if g.dx != lastDx {
			flips++
			lastDx = g.dx
		}
	}
	if flips < 2 {
		t.Errorf("expected the mover to bounce off both walls, got %d flips", flips)
	}
}

func TestArrowKeysMoveSteeredCircle(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected core.Point
	}{
		{core.ActionUp, core.Point{X: 400, Y: 25}},
		{core.ActionDown, core.Point{X: 400, Y: 35}},
		{core.ActionLeft, core.Point{X: 395, Y: 30}},
		{core.ActionRight, core.Point{X: 405, Y: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			g := newWindowGame()
			g.Step(keys(tc.action))
			if _, steered := g.Positions(); steered != tc.expected {
				t.Errorf("steered = %+v, expected %+v", steered, tc.expected)
			}
		})
	}

	g := newWindowGame()
	g.Step(keys(core.ActionRight, core.ActionRight, core.ActionDown))
	if _, steered := g.Positions(); steered != (core.Point{X: 410, Y: 35}) {
		t.Errorf("every key in a frame should move the circle, got %+v", steered)
	}
}

func TestCollisionDetection(t *testing.T) {
	tests := []struct {
		name     string
		steered  core.Point
		expected bool
	}{
		// The mover is at (35, 300) after one step.
		{"overlapping", core.Point{X: 35, Y: 300}, true},
		{"exactly touching", core.Point{X: 95, Y: 300}, true},
		{"just apart", core.Point{X: 96, Y: 300}, false},
		{"far away", core.Point{X: 400, Y: 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newWindowGame()
			g.steered = tc.steered

			res := g.Step(core.NewInputFrame())
			if g.Colliding() != tc.expected {
				t.Errorf("Colliding() = %v, expected %v", g.Colliding(), tc.expected)
			}

			got := false
			for _, e := range res.Events {
				if e.Kind == core.EventCollision {
					got = true
				}
			}
			if got != tc.expected {
				t.Errorf("collision event = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	for _, a := range []core.Action{core.ActionQuit, core.ActionBack} {
		g := newWindowGame()
		res := g.Step(keys(a))
		if !res.State.Quit {
			t.Errorf("%v should quit", a)
		}
	}
}

func TestRenderDrawsBothCircles(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Profile: core.ProfileTerminal})
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	mover, steered := g.Positions()
	r := g.profile.Radius

	if c := scr.GetCell(mover.X, mover.Y-r); c.Fg != core.ColorRed {
		t.Errorf("top of the mover = %+v, expected red", c)
	}
	if c := scr.GetCell(steered.X, steered.Y+r); c.Fg != core.ColorBlue {
		t.Errorf("bottom of the steered circle = %+v, expected blue", c)
	}
	if c := scr.GetCell(79, 23); c.Bg != core.ColorWhite {
		t.Errorf("background = %v, expected white", c.Bg)
	}
}
