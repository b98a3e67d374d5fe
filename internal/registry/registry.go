// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given screen and seed.
	// Called once before the first Step and again after a resize.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's input in order and advances the simulation
	// by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state. It must not mutate the game.
	Render(dst core.Canvas)

	// State returns the current game state.
	State() core.GameState
}

// Configurable is implemented by games that load a YAML config.
// preset is a difficulty preset name; empty means none.
type Configurable interface {
	Configure(path, preset string) error
}

// Paced is implemented by games with their own fixed frame delay.
type Paced interface {
	TickDelay() time.Duration
}

// Sized is implemented by games with a configured canvas size for a
// profile. Zero means the game adapts to whatever screen it gets.
type Sized interface {
	ScreenSize(p core.Profile) (w, h int)
}

// Skinned is implemented by games that supply their own window title,
// font and background image.
type Skinned interface {
	Skin(p core.Profile) core.Skin
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// TickDelay returns the game's own frame delay, or the delay for the
// fallback rate in ticks per second when the game is not Paced.
func TickDelay(g Game, fallbackRate int) time.Duration {
	if p, ok := g.(Paced); ok {
		if d := p.TickDelay(); d > 0 {
			return d
		}
	}
	if fallbackRate <= 0 {
		fallbackRate = 60
	}
	return time.Second / time.Duration(fallbackRate)
}

// Configure applies a config file and difficulty preset to games that take
// them. Other games ignore both and never fail.
func Configure(g Game, path, preset string) error {
	c, ok := g.(Configurable)
	if !ok {
		return nil
	}
	if err := c.Configure(path, preset); err != nil {
		return fmt.Errorf("registry: cannot configure %s: %w", g.ID(), err)
	}
	return nil
}
