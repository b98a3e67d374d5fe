// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// RectConfig is a rectangle in YAML form. Button rects are relative to the
// screen center.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the config value into a core.Rect.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// OffsetConfig is a text anchor.
type OffsetConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts the config value into a core.Point.
func (o OffsetConfig) Point() core.Point {
	return core.Point{X: o.X, Y: o.Y}
}

// ButtonConfig describes one clickable button.
type ButtonConfig struct {
	Rect    RectConfig   `yaml:"rect"`
	Label   string       `yaml:"label"`
	LabelAt OffsetConfig `yaml:"label_at"` // relative to the screen center
}

// LayoutConfig positions every menu and game-over element.
type LayoutConfig struct {
	StartButton        ButtonConfig `yaml:"start_button"`
	MenuQuitButton     ButtonConfig `yaml:"menu_quit_button"`
	RestartButton      ButtonConfig `yaml:"restart_button"`
	GameOverQuitButton ButtonConfig `yaml:"game_over_quit_button"`
	GameOverText       OffsetConfig `yaml:"game_over_text"`   // relative to the screen center
	FinalScoreText     OffsetConfig `yaml:"final_score_text"` // relative to the screen center
	ScoreText          OffsetConfig `yaml:"score_text"`       // absolute
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Rules    SnakeRules   `yaml:"rules"`
	Window   SnakeProfile `yaml:"window"`
	Terminal SnakeProfile `yaml:"terminal"`
}

// SnakeRules are the gameplay constants shared by every profile.
type SnakeRules struct {
	InitialLength   int  `yaml:"initial_length"`
	FoodReward      int  `yaml:"food_reward"`
	TickDelayMs     int  `yaml:"tick_delay_ms"`
	FoodAvoidsSnake bool `yaml:"food_avoids_snake"`
}

// SnakeProfile holds the per-display geometry and assets.
type SnakeProfile struct {
	Title          string       `yaml:"title"`  // window title; empty = game title
	Width          int          `yaml:"width"`  // 0 = use the screen size
	Height         int          `yaml:"height"` // 0 = use the screen size
	BlockSize      int          `yaml:"block_size"`
	FontSize       int          `yaml:"font_size"`
	FontPath       string       `yaml:"font_path"`
	BackgroundPath string       `yaml:"background_path"`
	Layout         LayoutConfig `yaml:"layout"`
}

// Profile returns the profile for the given display.
func (c SnakeConfig) Profile(p core.Profile) SnakeProfile {
	if p == core.ProfileWindow {
		return c.Window
	}
	return c.Terminal
}

// TickDelay returns the fixed delay between frames.
func (c SnakeConfig) TickDelay() time.Duration {
	return time.Duration(c.Rules.TickDelayMs) * time.Millisecond
}

// Validate checks the config for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Rules.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("rules.initial_length must be at least 1, got %d", c.Rules.InitialLength))
	}
	if c.Rules.FoodReward < 0 {
		errs = append(errs, fmt.Errorf("rules.food_reward must not be negative, got %d", c.Rules.FoodReward))
	}
	if c.Rules.TickDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("rules.tick_delay_ms must be positive, got %d", c.Rules.TickDelayMs))
	}
	errs = append(errs, c.Window.validate("window", true)...)
	errs = append(errs, c.Terminal.validate("terminal", false)...)
	return errors.Join(errs...)
}

func (p SnakeProfile) validate(name string, fixedSize bool) []error {
	var errs []error
	if p.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("%s.block_size must be positive, got %d", name, p.BlockSize))
	}
	if p.Width < 0 || p.Height < 0 {
		errs = append(errs, fmt.Errorf("%s: width and height must not be negative", name))
	}
	if fixedSize && (p.Width == 0 || p.Height == 0) {
		errs = append(errs, fmt.Errorf("%s: width and height are required", name))
	}
	if p.BlockSize > 0 && (p.Width%p.BlockSize != 0 || p.Height%p.BlockSize != 0) {
		errs = append(errs, fmt.Errorf("%s: width and height must be multiples of block_size %d, got %dx%d",
			name, p.BlockSize, p.Width, p.Height))
	}
	if fixedSize && p.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("%s.font_size must be positive, got %d", name, p.FontSize))
	}
	return errs
}

// CollideConfig contains configuration for the circle collision toy.
type CollideConfig struct {
	Window   CollideProfile `yaml:"window"`
	Terminal CollideProfile `yaml:"terminal"`
}

// CollideProfile holds the per-display geometry of the collision toy.
type CollideProfile struct {
	Width       int `yaml:"width"`  // 0 = use the screen size
	Height      int `yaml:"height"` // 0 = use the screen size
	Radius      int `yaml:"radius"`
	Speed       int `yaml:"speed"` // horizontal velocity of the bouncing circle
	Step        int `yaml:"step"`  // distance per arrow key press
	TickDelayMs int `yaml:"tick_delay_ms"`
}

// Profile returns the profile for the given display.
func (c CollideConfig) Profile(p core.Profile) CollideProfile {
	if p == core.ProfileWindow {
		return c.Window
	}
	return c.Terminal
}

// Validate checks the config for values the toy cannot run with.
func (c CollideConfig) Validate() error {
	var errs []error
	for _, p := range []struct {
		name string
		prof CollideProfile
	}{{"window", c.Window}, {"terminal", c.Terminal}} {
		if p.prof.Radius <= 0 {
			errs = append(errs, fmt.Errorf("%s.radius must be positive, got %d", p.name, p.prof.Radius))
		}
		if p.prof.Width < 0 || p.prof.Height < 0 {
			errs = append(errs, fmt.Errorf("%s: width and height must not be negative", p.name))
		}
		if p.prof.TickDelayMs <= 0 {
			errs = append(errs, fmt.Errorf("%s.tick_delay_ms must be positive, got %d", p.name, p.prof.TickDelayMs))
		}
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		errs = append(errs, errors.New("window: width and height are required"))
	}
	return errors.Join(errs...)
}

// CircleConfig contains configuration for the static circle rasterizer.
type CircleConfig struct {
	Window   CircleProfile `yaml:"window"`
	Terminal CircleProfile `yaml:"terminal"`
}

// CircleProfile holds the per-display canvas and radius.
type CircleProfile struct {
	Width  int `yaml:"width"`  // 0 = use the screen size
	Height int `yaml:"height"` // 0 = use the screen size
	Radius int `yaml:"radius"`
}

// Profile returns the profile for the given display.
func (c CircleConfig) Profile(p core.Profile) CircleProfile {
	if p == core.ProfileWindow {
		return c.Window
	}
	return c.Terminal
}

// Validate checks the config for values the rasterizer cannot run with.
func (c CircleConfig) Validate() error {
	var errs []error
	if c.Window.Radius < 0 || c.Terminal.Radius < 0 {
		errs = append(errs, errors.New("radius must not be negative"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window: width and height are required"))
	}
	if c.Terminal.Width < 0 || c.Terminal.Height < 0 {
		errs = append(errs, errors.New("terminal: width and height must not be negative"))
	}
	return errors.Join(errs...)
}
