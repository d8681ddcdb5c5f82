package loop

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/terminal/termtest"
)

// recordingStore remembers saves and recorded rounds.
type recordingStore struct {
	high    int
	saves   []int
	records []int
	players []string
}

func (s *recordingStore) Load() int { return s.high }

func (s *recordingStore) Save(score int) {
	s.saves = append(s.saves, score)
	s.high = score
}

func (s *recordingStore) Record(player string, score, length int) {
	s.records = append(s.records, score)
	s.players = append(s.players, player)
}

// harness wires a controller over a fake terminal. onSleep runs after each
// tick with the 1-based tick number, typically to feed input.
type harness struct {
	term    *termtest.Fake
	store   *recordingStore
	game    *game.Game
	ctrl    *Controller
	ticks   int
	onSleep func(tick int)
}

func newHarness(t *testing.T, high int) *harness {
	t.Helper()
	cfg := config.Default()

	opts, err := render.Configure(cfg.Render)
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	h := &harness{
		term:  termtest.New(80, 40),
		store: &recordingStore{high: high},
		game:  game.New(cfg, 42),
	}
	h.ctrl = New(Params{
		Terminal: h.term,
		Mapper:   input.NewMapper(0),
		View:     render.NewDiffer(h.term, cfg.Game.GridSize, opts),
		Engine:   h.game,
		Store:    h.store,
		Player:   "tester",
		Sleep: func(ctx context.Context, d time.Duration) error {
			h.ticks++
			if h.onSleep != nil {
				h.onSleep(h.ticks)
			}
			return ctx.Err()
		},
	})
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.ctrl.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
}

func TestWallThenQuit(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "q")
	h.run(t)

	if h.ctrl.State() != StateDone {
		t.Errorf("State() = %v, expected done", h.ctrl.State())
	}
	if h.ctrl.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", h.ctrl.Rounds())
	}
	// Ten moves from the center leave the grid, one tick each
	if h.ticks != 10 {
		t.Errorf("ticks = %d, expected 10", h.ticks)
	}
	if !h.term.Contains("GAME OVER!") {
		t.Errorf("game over screen not shown:\n%s", h.term.Screen())
	}
	if len(h.store.saves) != 0 {
		t.Errorf("Save called %v without beating the high score", h.store.saves)
	}
	if len(h.store.records) != 1 || h.store.players[0] != "tester" {
		t.Errorf("records = %v by %v, expected one round by tester", h.store.records, h.store.players)
	}
}

func TestWelcomeShowsStoredHighScore(t *testing.T) {
	h := newHarness(t, 480)
	h.run(t) // Input closes at the welcome screen

	if !h.term.Contains("High Score: 480") {
		t.Errorf("welcome screen:\n%s", h.term.Screen())
	}
	if h.ctrl.State() != StateWelcome {
		t.Errorf("State() = %v, expected welcome after input closed", h.ctrl.State())
	}
}

func TestRestart(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "r", "Q")
	h.run(t)

	if h.ctrl.Rounds() != 2 {
		t.Errorf("Rounds() = %d, expected 2", h.ctrl.Rounds())
	}
	if h.ticks != 20 {
		t.Errorf("ticks = %d, expected 10 per round", h.ticks)
	}
	if h.ctrl.State() != StateDone {
		t.Errorf("State() = %v, expected done", h.ctrl.State())
	}
}

func TestOtherKeyReturnsToWelcome(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "z", "x", "q")
	h.run(t)

	if h.ctrl.Rounds() != 2 {
		t.Errorf("Rounds() = %d, expected 2", h.ctrl.Rounds())
	}
	if h.ctrl.State() != StateDone {
		t.Errorf("State() = %v, expected done", h.ctrl.State())
	}
}

func TestEscapeEndsRound(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "\x1b")
	h.onSleep = func(tick int) {
		if tick == 2 {
			h.term.Feed("\x1b")
		}
	}
	h.run(t)

	if h.ticks != 2 {
		t.Errorf("ticks = %d, expected the round to end on the second tick", h.ticks)
	}
	if h.ctrl.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", h.ctrl.Rounds())
	}
	// ESC at the game-over screen is "any other key"
	if h.ctrl.State() != StateWelcome {
		t.Errorf("State() = %v, expected welcome", h.ctrl.State())
	}
}

func TestKeysTypedDuringPlayDoNotSkipGameOver(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "q")
	h.onSleep = func(tick int) {
		if tick == 2 {
			// ESC ends the round and leaves the 'w' queued
			h.term.Feed("\x1bw")
		}
	}
	h.run(t)

	if h.ticks != 2 {
		t.Errorf("ticks = %d, expected the round to end on the second tick", h.ticks)
	}
	if !h.term.Contains("GAME OVER!") {
		t.Errorf("game over screen not shown:\n%s", h.term.Screen())
	}
	// The scripted 'q' answers the summary, not the leftover 'w'
	if h.ctrl.State() != StateDone {
		t.Errorf("State() = %v, expected done", h.ctrl.State())
	}
	if h.ctrl.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", h.ctrl.Rounds())
	}
}

func TestFirstFrameShowsStartingSnake(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x")
	h.onSleep = func(tick int) {
		if tick != 1 {
			return
		}
		// Center of the 20x20 board, facing right, before any move
		row := 5 + 1 + 10
		if got := h.term.Cell(11, row); got != '>' {
			t.Errorf("head cell = %q, expected '>'\n%s", got, h.term.Screen())
		}
		if got := h.term.Cell(10, row); got != 'o' {
			t.Errorf("body cell = %q, expected 'o'", got)
		}
		if st := h.game.State(); st.Score != 0 || st.Length != 3 {
			t.Errorf("state before first tick = %+v", st)
		}
	}
	h.run(t)

	if h.ticks < 1 {
		t.Fatal("round never slept")
	}
}

func TestInterruptDuringPlay(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x")
	h.onSleep = func(tick int) {
		if tick == 3 {
			h.term.Feed("\x03")
		}
	}
	h.run(t)

	if h.ctrl.State() != StateDone {
		t.Errorf("State() = %v, expected done", h.ctrl.State())
	}
	if h.ctrl.Rounds() != 0 {
		t.Errorf("Rounds() = %d, interrupt should not finish a round", h.ctrl.Rounds())
	}
}

func TestPauseHoldsTheSnake(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "q")
	h.onSleep = func(tick int) {
		switch tick {
		case 1, 4:
			h.term.Feed("p")
		case 2:
			if !h.term.Contains("[PAUSED]") {
				t.Errorf("header should show [PAUSED]:\n%s", h.term.Screen())
			}
		}
	}
	h.run(t)

	// Three paused ticks, then ten moves to the wall
	if h.ticks != 13 {
		t.Errorf("ticks = %d, expected 13", h.ticks)
	}
}

func TestSteering(t *testing.T) {
	h := newHarness(t, 1000)
	h.term.Script("x", "q")
	h.onSleep = func(tick int) {
		if tick == 1 {
			h.term.Feed("\x1b[A") // Up arrow
		}
	}
	h.run(t)

	// Turns before the first move, then eleven moves up from (10,10) leave the grid
	if h.ticks != 11 {
		t.Errorf("ticks = %d, expected 11", h.ticks)
	}
	if snap := h.game.Snapshot(); snap.Dir != core.DirUp {
		t.Errorf("final direction = %v, expected up", snap.Dir)
	}
}

func TestCancelledContext(t *testing.T) {
	h := newHarness(t, 0)
	h.term.Script("x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.ctrl.Run(ctx); err != nil {
		t.Errorf("Run() with cancelled context = %v, expected nil", err)
	}
}

// scriptedEngine ends every round with a fixed result.
type scriptedEngine struct {
	score  int
	high   int
	over   bool
	resets int
}

func (e *scriptedEngine) Render(dst *core.Screen, glyphs core.Glyphs) { dst.Fill(glyphs.Empty) }
func (e *scriptedEngine) Reset()                                      { e.over = false; e.resets++ }
func (e *scriptedEngine) SetHighScore(score int)                      { e.high = max(e.high, score) }
func (e *scriptedEngine) Steer(core.Direction)                        {}
func (e *scriptedEngine) TogglePause()                                {}
func (e *scriptedEngine) EndRound()                                   { e.over = true }

func (e *scriptedEngine) State() core.GameState {
	st := core.GameState{Score: e.score, HighScore: e.high, Length: 5, GameOver: e.over, Tick: time.Millisecond}
	if e.over && e.score > 0 && e.score >= e.high {
		st.NewRecord = true
	}
	return st
}

func (e *scriptedEngine) Step() core.StepResult {
	if !e.over {
		e.over = true
		e.high = max(e.high, e.score)
		return core.StepResult{State: e.State(), Event: core.EventSelf}
	}
	return core.StepResult{State: e.State(), Event: core.EventIdle}
}

func TestNewRecordIsSaved(t *testing.T) {
	term := termtest.New(80, 40)
	store := &recordingStore{high: 20}
	engine := &scriptedEngine{score: 50}

	opts, _ := render.Configure(config.Default().Render)
	ctrl := New(Params{
		Terminal: term,
		View:     render.NewDiffer(term, 20, opts),
		Engine:   engine,
		Store:    store,
		Player:   "ada",
	})

	term.Script("x", "r", "q")
	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(store.saves) != 2 || store.saves[0] != 50 {
		t.Errorf("saves = %v, expected the record 50 saved each round", store.saves)
	}
	if len(store.records) != 2 {
		t.Errorf("records = %v, expected two rounds", store.records)
	}
	if engine.resets != 1 {
		t.Errorf("resets = %d, expected one restart", engine.resets)
	}
	if !term.Contains("NEW HIGH SCORE!") {
		t.Errorf("game over screen should announce the record:\n%s", term.Screen())
	}
}

func TestNewSession(t *testing.T) {
	term := termtest.New(80, 40)
	ctrl, err := NewSession(term, config.Default(), nil, nil, "p", 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if ctrl.State() != StateWelcome {
		t.Errorf("State() = %v, expected welcome", ctrl.State())
	}

	cfg := config.Default()
	cfg.Render.Theme = "missing"
	if _, err := NewSession(term, cfg, nil, nil, "p", 1); err == nil {
		t.Error("NewSession() should fail for an unknown theme")
	}
}
