package core

import "time"

// GameState is the externally visible summary of a round.
// Returned by Game.State() to communicate status to the loop and renderer.
type GameState struct {
	Score     int           // Current score
	HighScore int           // Best score seen so far (never decreases)
	NewRecord bool          // Set once the finished round beat the previous high score
	Length    int           // Snake body length
	Tick      time.Duration // Current tick interval
	GameOver  bool          // Whether the round has ended
	Paused    bool          // Whether the round is paused
}

// Event describes what happened during a single simulation tick.
type Event int

const (
	EventNone   Event = iota
	EventMoved        // Snake advanced one cell
	EventAte          // Snake ate food
	EventWall         // Head left the grid
	EventSelf         // Head hit the body
	EventPaused       // Tick skipped while paused
	EventIdle         // Tick skipped after game over
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventWall:
		return "wall"
	case EventSelf:
		return "self"
	case EventPaused:
		return "paused"
	case EventIdle:
		return "idle"
	default:
		return "none"
	}
}

// Terminal reports whether the event ends the round.
func (e Event) Terminal() bool {
	return e == EventWall || e == EventSelf
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the event that occurred.
type StepResult struct {
	State GameState
	Event Event
}
