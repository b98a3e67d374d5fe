package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load fills cfg from the first config source that parses.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// sources fall through silently. The result is always validated.
func load[T validator](gameID, customPath string, fallback T) (T, error) {
	cfg, err := read(gameID, customPath, fallback)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s config: %w", gameID, err)
	}
	return cfg, nil
}

func read[T any](gameID, customPath string, fallback T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		var cfg T
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg T
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadCollide loads collision toy configuration.
func LoadCollide(customPath string) (CollideConfig, error) {
	return load("collide", customPath, DefaultCollideConfig())
}

// LoadCircle loads circle rasterizer configuration.
func LoadCircle(customPath string) (CircleConfig, error) {
	return load("circle", customPath, DefaultCircleConfig())
}
