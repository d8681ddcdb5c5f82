package game

import "github.com/vovakirdan/tui-snake/internal/core"

// StateType represents the phase of a round.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed       int64
	Tick       uint64
	Score      int
	HighScore  int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        core.Direction
	FoodX      int
	FoodY      int
	IntervalMS int64
	Starved    bool
	State      StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.snake.Head()
	return Snapshot{
		Seed:       g.seed,
		Tick:       g.tick,
		Score:      g.score,
		HighScore:  g.high,
		SnakeLen:   g.snake.Len(),
		HeadX:      head.X,
		HeadY:      head.Y,
		Dir:        g.snake.Direction(),
		FoodX:      g.food.Pos.X,
		FoodY:      g.food.Pos.Y,
		IntervalMS: g.interval.Milliseconds(),
		Starved:    g.starved,
		State:      state,
	}
}
