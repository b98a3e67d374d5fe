package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/collide.yaml
var defaultCollideYAML []byte

//go:embed defaults/circle.yaml
var defaultCircleYAML []byte

func button(x, y, w, h int, label string, lx, ly int) ButtonConfig {
	return ButtonConfig{
		Rect:    RectConfig{X: x, Y: y, W: w, H: h},
		Label:   label,
		LabelAt: OffsetConfig{X: lx, Y: ly},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Rules: SnakeRules{
			InitialLength: 2,
			FoodReward:    5,
			TickDelayMs:   100,
		},
		Window: SnakeProfile{
			Title:     "Snake Game created by Fatema",
			Width:     800,
			Height:    600,
			BlockSize: 10,
			FontSize:  28,
			Layout: LayoutConfig{
				StartButton:        button(-80, -70, 160, 50, "START", -40, -55),
				MenuQuitButton:     button(-80, 0, 160, 50, "QUIT", -30, 15),
				RestartButton:      button(-100, 0, 200, 50, "RESTART", -60, 10),
				GameOverQuitButton: button(-80, 70, 160, 50, "QUIT", -30, 80),
				GameOverText:       OffsetConfig{X: -100, Y: -150},
				FinalScoreText:     OffsetConfig{X: -100, Y: -50},
				ScoreText:          OffsetConfig{X: 10, Y: 10},
			},
		},
		Terminal: SnakeProfile{
			BlockSize: 1,
			Layout: LayoutConfig{
				StartButton:        button(-8, -5, 16, 3, "START", -2, -4),
				MenuQuitButton:     button(-8, -1, 16, 3, "QUIT", -2, 0),
				RestartButton:      button(-10, -3, 20, 3, "RESTART", -3, -2),
				GameOverQuitButton: button(-8, 1, 16, 3, "QUIT", -2, 2),
				GameOverText:       OffsetConfig{X: -5, Y: -8},
				FinalScoreText:     OffsetConfig{X: -8, Y: -6},
				ScoreText:          OffsetConfig{X: 1, Y: 0},
			},
		},
	}
}

// DefaultCollideConfig returns the default collision toy configuration.
func DefaultCollideConfig() CollideConfig {
	return CollideConfig{
		Window: CollideProfile{
			Width:       800,
			Height:      600,
			Radius:      30,
			Speed:       5,
			Step:        5,
			TickDelayMs: 16,
		},
		Terminal: CollideProfile{
			Radius:      4,
			Speed:       1,
			Step:        1,
			TickDelayMs: 50,
		},
	}
}

// DefaultCircleConfig returns the default circle rasterizer configuration.
func DefaultCircleConfig() CircleConfig {
	return CircleConfig{
		Window:   CircleProfile{Width: 640, Height: 480, Radius: 100},
		Terminal: CircleProfile{Radius: 10},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "collide":
		return defaultCollideYAML
	case "circle":
		return defaultCircleYAML
	default:
		return nil
	}
}
