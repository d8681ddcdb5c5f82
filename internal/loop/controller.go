// Package loop runs a snake session: the welcome screen, the tick loop of
// a round and the game-over screen.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

// State is a phase of the session.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StateGameOver
	StateDone
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Engine is the round logic the controller drives.
type Engine interface {
	render.Board
	Reset()
	SetHighScore(score int)
	Steer(d core.Direction)
	TogglePause()
	EndRound()
	Step() core.StepResult
}

// View draws the board and the menu screens.
type View interface {
	Draw(b render.Board) error
	Invalidate()
	Welcome(high int) error
	GameOver(st core.GameState) error
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Params holds the collaborators of a Controller.
type Params struct {
	Terminal terminal.Terminal
	Mapper   *input.Mapper
	View     View
	Engine   Engine
	Store    storage.HighScoreStore
	Logger   *log.Logger
	Player   string    // Recorded with each finished round
	Sleep    SleepFunc // Defaults to a context-aware timer
}

// Controller owns one session. It is driven from a single goroutine.
type Controller struct {
	term   terminal.Terminal
	keys   *input.Mapper
	view   View
	engine Engine
	store  storage.HighScoreStore
	logger *log.Logger
	player string
	sleep  SleepFunc

	state  State
	rounds int
}

// New creates a controller from p.
func New(p Params) *Controller {
	c := &Controller{
		term:   p.Terminal,
		keys:   p.Mapper,
		view:   p.View,
		engine: p.Engine,
		store:  p.Store,
		logger: p.Logger,
		player: p.Player,
		sleep:  p.Sleep,
		state:  StateWelcome,
	}
	if c.keys == nil {
		c.keys = input.NewMapper(0)
	}
	if c.store == nil {
		c.store = &storage.Memory{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.sleep == nil {
		c.sleep = Sleep
	}
	return c
}

// NewSession wires a complete session for term from cfg.
func NewSession(term terminal.Terminal, cfg config.Config, store storage.HighScoreStore, logger *log.Logger, player string, seed int64) (*Controller, error) {
	opts, err := render.Configure(cfg.Render)
	if err != nil {
		return nil, err
	}
	return New(Params{
		Terminal: term,
		Mapper:   input.NewMapper(cfg.Input.EscapeTimeout()),
		View:     render.NewDiffer(term, cfg.Game.GridSize, opts),
		Engine:   game.New(cfg, seed),
		Store:    store,
		Logger:   logger,
		Player:   player,
	}), nil
}

// Sleep waits for d unless ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Rounds returns how many rounds have finished.
func (c *Controller) Rounds() int {
	return c.rounds
}

// Run drives the session until the player quits, the input closes or ctx
// is done. Those endings return nil; only output failures are errors.
func (c *Controller) Run(ctx context.Context) error {
	c.engine.SetHighScore(c.store.Load())
	c.logger.Debug("session started", "player", c.player, "high", c.engine.State().HighScore)

	for c.state != StateDone {
		var err error
		switch c.state {
		case StateWelcome:
			err = c.welcome(ctx)
		case StatePlaying:
			err = c.play(ctx)
		case StateGameOver:
			err = c.gameOver(ctx)
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Debug("session ended", "state", c.state, "reason", err)
				return nil
			}
			return err
		}
	}

	c.logger.Debug("session finished", "rounds", c.rounds)
	return nil
}

func (c *Controller) welcome(ctx context.Context) error {
	if err := c.view.Welcome(c.engine.State().HighScore); err != nil {
		return err
	}

	key, err := c.keys.Wait(ctx, c.term)
	if err != nil {
		return err
	}
	if key.Action == core.ActionInterrupt {
		c.state = StateDone
		return nil
	}

	c.start()
	return nil
}

// start enters Playing, beginning a fresh round if the last one ended.
func (c *Controller) start() {
	if c.engine.State().GameOver {
		c.engine.Reset()
	}
	c.keys.Reset()
	c.view.Invalidate()
	c.state = StatePlaying
}

// play draws the board before the first step, so the starting position is
// on screen for a full tick.
func (c *Controller) play(ctx context.Context) error {
	if err := c.view.Draw(c.engine); err != nil {
		return err
	}

	for {
		if err := c.sleep(ctx, c.engine.State().Tick); err != nil {
			return err
		}

		switch action := c.keys.Poll(c.term); action {
		case core.ActionInterrupt:
			c.state = StateDone
			return nil
		case core.ActionQuit:
			c.engine.EndRound()
		case core.ActionPause:
			c.engine.TogglePause()
		default:
			if d, ok := action.Direction(); ok {
				c.engine.Steer(d)
			}
		}

		res := c.engine.Step()
		if err := c.view.Draw(c.engine); err != nil {
			return err
		}

		if res.State.GameOver {
			c.finishRound(res)
			c.state = StateGameOver
			return nil
		}
	}
}

// finishRound persists the result of a round that just ended.
func (c *Controller) finishRound(res core.StepResult) {
	st := res.State
	c.rounds++

	cause := res.Event.String()
	if !res.Event.Terminal() {
		cause = "quit"
	}

	if st.NewRecord {
		c.store.Save(st.HighScore)
	}
	if rec, ok := c.store.(storage.Recorder); ok {
		rec.Record(c.player, st.Score, st.Length)
	}

	c.logger.Info("round over",
		"player", c.player,
		"score", st.Score,
		"length", st.Length,
		"cause", cause,
		"record", st.NewRecord,
	)
	if s, ok := c.engine.(interface{ Snapshot() game.Snapshot }); ok {
		c.logger.Debug("final state", "snapshot", s.Snapshot())
	}
}

func (c *Controller) gameOver(ctx context.Context) error {
	// Keys typed during the round must not answer the summary.
	c.keys.Discard(c.term)
	if err := c.view.GameOver(c.engine.State()); err != nil {
		return err
	}

	key, err := c.keys.Wait(ctx, c.term)
	if err != nil {
		return err
	}

	switch {
	case key.Action == core.ActionInterrupt:
		c.state = StateDone
	case key.Action == core.ActionRestart:
		c.start()
	case key.Byte == 'q' || key.Byte == 'Q':
		c.state = StateDone
	default:
		c.state = StateWelcome
	}
	return nil
}
