package core

// Action represents a semantic game intent, abstracted from physical key presses.
// This allows the game loop to work with high-level intents rather than raw bytes.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow
	ActionDown             // S, J, Down arrow
	ActionLeft             // A, H, Left arrow
	ActionRight            // D, L, Right arrow
	ActionPause            // P, Space - toggle pause
	ActionQuit             // Q, Escape - end the round / back
	ActionRestart          // R - restart after game over
	ActionInterrupt        // Ctrl+C - leave the program from any state
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	case ActionInterrupt:
		return "Interrupt"
	default:
		return "Unknown"
	}
}

// Direction converts a movement action to a grid direction.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
