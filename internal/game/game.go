package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns the state of one snake session: the snake, the food, the score
// and the tick interval. It is driven by a single caller and is not safe for
// concurrent use.
type Game struct {
	cfg  config.Config
	rng  *rand.Rand
	seed int64
	size int

	snake *Snake
	food  Food
	tick  uint64 // Moves made this round

	score     int
	high      int
	prevHigh  int // High score when the round started
	newRecord bool
	interval  time.Duration

	over    bool
	paused  bool
	starved bool
	last    core.Event
}

// New creates a game for the given configuration.
// The seed makes food placement reproducible.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		size: cfg.Game.GridSize,
	}
	g.Reset()
	return g
}

// Reset starts a new round. The high score is kept.
func (g *Game) Reset() {
	center := core.Square(g.size).Center()
	g.snake = NewSnake(center, g.cfg.Game.InitialLength)
	g.starved = g.food.Spawn(g.rng, g.snake, g.size, g.cfg.Game.MaxFoodAttempts)
	g.tick = 0
	g.score = 0
	g.prevHigh = g.high
	g.newRecord = false
	g.interval = g.cfg.Speed.InitialTick()
	g.over = false
	g.paused = false
	g.last = core.EventNone
}

// SetHighScore raises the in-memory high score, typically from a store.
// Lower values are ignored.
func (g *Game) SetHighScore(score int) {
	if score > g.high {
		g.high = score
	}
	if !g.over && g.high > g.prevHigh {
		g.prevHigh = g.high
	}
}

// Steer requests a direction for the next move.
func (g *Game) Steer(d core.Direction) {
	if g.over || g.paused {
		return
	}
	g.snake.SetDirection(d)
}

// TogglePause pauses or resumes a running round.
func (g *Game) TogglePause() {
	if g.over {
		return
	}
	g.paused = !g.paused
}

// EndRound finishes the round early, as if the player had crashed.
func (g *Game) EndRound() {
	if g.over {
		return
	}
	g.finish()
}

// Step advances the round by one move.
// Order: move, wall check, self check, food check.
func (g *Game) Step() core.StepResult {
	switch {
	case g.over:
		return g.result(core.EventIdle)
	case g.paused:
		return g.result(core.EventPaused)
	}

	g.snake.Move()
	g.tick++

	switch Evaluate(g.snake, g.food.Pos, g.size) {
	case OutcomeWall:
		g.finish()
		return g.result(core.EventWall)
	case OutcomeSelf:
		g.finish()
		return g.result(core.EventSelf)
	case OutcomeFood:
		g.snake.Grow()
		g.score += g.cfg.Game.FoodPoints
		g.starved = g.food.Spawn(g.rng, g.snake, g.size, g.cfg.Game.MaxFoodAttempts)
		g.interval = g.cfg.Speed.Next(g.interval)
		return g.result(core.EventAte)
	default:
		return g.result(core.EventMoved)
	}
}

func (g *Game) finish() {
	g.over = true
	g.paused = false
	if g.score > g.high {
		g.high = g.score
	}
	g.newRecord = g.score > g.prevHigh
}

func (g *Game) result(e core.Event) core.StepResult {
	g.last = e
	return core.StepResult{State: g.State(), Event: e}
}

// State returns the externally visible summary of the round.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.high,
		NewRecord: g.newRecord,
		Length:    g.snake.Len(),
		Tick:      g.interval,
		GameOver:  g.over,
		Paused:    g.paused,
	}
}

// Render draws the board into dst, one cell per grid position.
// Positions outside the grid are never drawn.
func (g *Game) Render(dst *core.Screen, glyphs core.Glyphs) {
	dst.Fill(glyphs.Empty)

	if !g.starved {
		dst.Set(g.food.Pos.X, g.food.Pos.Y, glyphs.Food)
	}

	body := g.snake.body
	for i := len(body) - 1; i >= 1; i-- {
		g.plot(dst, body[i], glyphs.Body)
	}
	g.plot(dst, body[0], glyphs.HeadFor(g.snake.Direction()))
}

func (g *Game) plot(dst *core.Screen, p core.Position, c core.Cell) {
	if OutOfBounds(p, g.size) {
		return
	}
	dst.Set(p.X, p.Y, c)
}

// GridSize returns the board side length.
func (g *Game) GridSize() int {
	return g.size
}

// Snake returns the live snake. Callers must not mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food position.
func (g *Game) Food() core.Position {
	return g.food.Pos
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// LastEvent returns the event produced by the most recent Step.
func (g *Game) LastEvent() core.Event {
	return g.last
}
