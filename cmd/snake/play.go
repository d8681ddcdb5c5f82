package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/A/S/D, Arrows, h/j/k/l - Steer
  P/Space                  - Pause
  Esc                      - End the round
  R                        - Restart (after game over)
  Q                        - Quit (after game over)
  Ctrl+C                   - Quit at any time

Difficulty options:
  easy   - Slow start, gentle ramp
  normal - 100ms start, 2ms faster per food, 50ms floor
  hard   - Fast start, steep ramp
  fixed  - No speed-up, stays at the initial interval

Examples:
  snake play
  snake play --difficulty easy
  snake play --theme emoji --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := render.Configure(cfg.Render)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg.Storage, logger)
	defer store.Close()

	console, err := terminal.Open()
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return errors.New("snake needs an interactive terminal")
		}
		return err
	}
	defer console.Close()

	// A panic must not leave the terminal in raw mode.
	defer func() {
		if r := recover(); r != nil {
			console.Close()
			logger.Error("panic", "value", r)
			panic(r)
		}
	}()

	cols, rows := opts.Footprint(cfg.Game.GridSize)
	if w, h := console.Size(); w < cols || h < rows {
		console.Close()
		return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", cols, rows, w, h)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := seed()
	logger.Info("starting", "seed", s, "grid", cfg.Game.GridSize, "theme", cfg.Render.Theme)

	ctrl, err := loop.NewSession(console, cfg, store, logger, playerName(), s)
	if err != nil {
		return err
	}
	if err := ctrl.Run(ctx); err != nil {
		return err
	}

	console.Close()
	logger.Info("finished", "rounds", ctrl.Rounds())
	return nil
}
