// snake is a terminal Snake game.
//
// Usage:
//
//	snake                - Play (same as snake play)
//	snake play           - Play in this terminal
//	snake scores         - Browse recorded rounds (sqlite backend)
//	snake serve          - Start SSH server for remote play
//	snake themes         - List available board themes
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.snake, ./configs, embedded)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--difficulty <name>  - Speed preset: easy, normal, hard, fixed
//	--theme <id>         - Board theme
//	--no-color           - Disable ANSI colors
//	--full-redraw        - Repaint the whole board every tick
//	--debug              - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDebug      bool
	flagDifficulty string
	flagTheme      string
	flagNoColor    bool
	flagFullRedraw bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game played on a square grid in your terminal.

Steer with W/A/S/D, arrow keys or h/j/k/l, eat food to grow and score,
and avoid the walls and your own tail. The snake speeds up as it eats.

Available commands:
  play     - Play in this terminal (default)
  scores   - Browse recorded rounds
  serve    - Start SSH server for remote play
  themes   - List board themes

Examples:
  snake
  snake --difficulty hard --theme blocks
  snake serve --ssh :2222
  snake scores --plain`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Board theme (see 'snake themes')")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().BoolVar(&flagFullRedraw, "full-redraw", false, "Redraw the whole board every tick")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Render.Theme = flagTheme
	}
	if flagNoColor {
		cfg.Render.Color = false
	}
	if flagFullRedraw {
		cfg.Render.Diff = false
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Render.Theme) {
		return cfg, fmt.Errorf("unknown theme %q, run 'snake themes' to see available themes", cfg.Render.Theme)
	}
	return cfg, nil
}

// openLogger returns a logger writing to w at the configured level.
func openLogger(w io.Writer, lc config.LogConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(lc.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens the session log named by lc, or discards logs when
// none is configured. The terminal is in raw mode during play, so logs
// never go to stderr.
func openLogFile(lc config.LogConfig) (*log.Logger, func(), error) {
	if lc.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := config.ExpandPath(lc.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return openLogger(f, lc, "snake"), func() { f.Close() }, nil
}

// openStore opens the configured high score backend. A backend that cannot
// be opened is replaced by an in-memory store so the game still runs.
func openStore(sc config.StorageConfig, logger *log.Logger) storage.Backend {
	store, err := storage.New(sc, logger)
	if err != nil {
		logger.Warn("high scores will not persist", "backend", sc.Backend, "error", err)
		return &storage.Memory{}
	}
	return store
}

// seed returns the --seed value or a time-based one.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName identifies the local player in the score history.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
