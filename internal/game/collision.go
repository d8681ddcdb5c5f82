package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Outcome is the result of checking the head after a move.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall         // Head left the grid
	OutcomeSelf         // Head hit the body
	OutcomeFood         // Head reached the food
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeFood:
		return "food"
	default:
		return "none"
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == OutcomeWall || o == OutcomeSelf
}

// OutOfBounds reports whether p lies outside a size × size grid.
func OutOfBounds(p core.Position, size int) bool {
	return !core.Square(size).ContainsPos(p)
}

// Evaluate checks a freshly moved snake: boundary first, then self, then
// food. A wall or self hit short-circuits the food check.
func Evaluate(snake *Snake, food core.Position, size int) Outcome {
	head := snake.Head()
	if OutOfBounds(head, size) {
		return OutcomeWall
	}
	if snake.HasSelfCollision() {
		return OutcomeSelf
	}
	if head == food {
		return OutcomeFood
	}
	return OutcomeNone
}
