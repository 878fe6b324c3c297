package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
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

// FixedDelta returns the nominal seconds per frame for the configured tick rate.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Obstacles passed this run
	Coins    int  // Coins collected this run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPassed    EventKind = iota // Avatar cleared an obstacle
	EventCoin                       // Avatar picked up a coin
	EventCollision                  // Avatar hit an obstacle or the ground
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPassed:
		return "Passed"
	case EventCoin:
		return "Coin"
	case EventCollision:
		return "Collision"
	default:
		return "Unknown"
	}
}

// Event is emitted by Step. Points is the score increment owed for EventPassed
// and the coin value for EventCoin.
type Event struct {
	Kind   EventKind
	Points int
}

// StepResult is returned by Step after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Collided reports whether the tick produced a collision event.
func (r StepResult) Collided() bool {
	for _, e := range r.Events {
		if e.Kind == EventCollision {
			return true
		}
	}
	return false
}
