package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
// An empty string means fixed: the loaded config is used unchanged.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset keeps the configured values.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// TickDelayForPreset returns the snake frame delay in milliseconds for a
// preset, or base for fixed.
func TickDelayForPreset(preset DifficultyPreset, base int) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyNormal:
		return 100
	case DifficultyHard:
		return 70
	default:
		return base
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	cfg.Rules.TickDelayMs = TickDelayForPreset(preset, cfg.Rules.TickDelayMs)
}
