package core

// Profile selects which display profile a game configures itself for.
type Profile string

const (
	ProfileTerminal Profile = "terminal" // one logical unit per character cell
	ProfileWindow   Profile = "window"   // one logical unit per pixel
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int     // Screen width in logical units
	ScreenH int     // Screen height in logical units
	Seed    int64   // RNG seed for deterministic gameplay
	Profile Profile // Display profile the game runs under
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Profile: ProfileTerminal,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the current round has ended
	Quit     bool   // Whether the game asked the platform to terminate
	Phase    string // Game-specific phase name, for display and logging
}

// Event is a notable happening inside a step, reported to the platform
// for logging. Games never log themselves.
type Event struct {
	Kind  string
	Score int
}

// Event kinds shared by the games.
const (
	EventRoundStarted = "round_started"
	EventFoodEaten    = "food_eaten"
	EventGameOver     = "game_over"
	EventCollision    = "collision"
	EventQuit         = "quit"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Skin carries the presentation assets a windowed platform loads for a game.
// Empty paths select the platform's built-in font and a plain background.
type Skin struct {
	WindowTitle    string
	FontPath       string
	FontSize       int
	BackgroundPath string
}
