package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick    uint64 // Ticks simulated since the game was created
	Running bool   // False while the game waits for a start signal
	Scene   string // Name of the active scene, for status lines and logs
}

// EventKind classifies a notable game event.
type EventKind string

const (
	EventSceneChanged  EventKind = "scene_changed"
	EventStarterChosen EventKind = "starter_chosen"
	EventDialogShown   EventKind = "dialog_shown"
	EventStarted       EventKind = "started"
	EventReset         EventKind = "reset"
)

// Event is something the platform may want to log or persist.
// Games never block on the platform handling it.
type Event struct {
	Kind   EventKind
	Detail string
	Tick   uint64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
