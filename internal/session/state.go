// Package session implements the snake simulation: one GameState per
// process, reset at the start of every play-through.
package session

// Status represents where a session is in its lifecycle.
type Status int

const (
	// StatusRunning means the snake advances on every tick.
	StatusRunning Status = iota
	// StatusPaused means ticks and direction changes are ignored.
	StatusPaused
	// StatusGameOver is terminal until the session is restarted.
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
