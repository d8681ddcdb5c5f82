// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for a snake session.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Speed   SpeedConfig   `yaml:"speed"`
	Render  RenderConfig  `yaml:"render"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines board and scoring parameters.
type GameConfig struct {
	GridSize        int `yaml:"grid_size"`
	InitialLength   int `yaml:"initial_length"`
	FoodPoints      int `yaml:"food_points"`
	MaxFoodAttempts int `yaml:"max_food_attempts"`
}

// SpeedConfig defines the tick interval and its linear ramp.
type SpeedConfig struct {
	InitialMS int  `yaml:"initial_ms"`
	StepMS    int  `yaml:"step_ms"`  // Reduction per food eaten
	FloorMS   int  `yaml:"floor_ms"` // Interval never drops below this
	Ramp      bool `yaml:"ramp"`
}

// RenderConfig selects how the board is drawn.
type RenderConfig struct {
	Theme           string `yaml:"theme"`            // Registered theme ID (ascii, blocks, emoji)
	Color           bool   `yaml:"color"`            // Emit ANSI colors
	Diff            bool   `yaml:"diff"`             // Redraw changed cells only
	DirectionalHead bool   `yaml:"directional_head"` // Head glyph follows travel direction
}

// InputConfig tunes key decoding.
type InputConfig struct {
	// EscapeTimeoutMS is how long to wait after ESC for the rest of an arrow
	// sequence. 0 means a single non-blocking peek.
	EscapeTimeoutMS int `yaml:"escape_timeout_ms"`
}

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // Plain-text high score file
	DBPath  string `yaml:"db_path"` // SQLite score history
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs in interactive play
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// MinGridSize is the smallest playable board.
const MinGridSize = 5

// InitialTick returns the starting tick interval.
func (s SpeedConfig) InitialTick() time.Duration {
	return time.Duration(s.InitialMS) * time.Millisecond
}

// Floor returns the minimum tick interval.
func (s SpeedConfig) Floor() time.Duration {
	return time.Duration(s.FloorMS) * time.Millisecond
}

// Next returns the tick interval after one more food has been eaten.
// Without the ramp the interval never changes.
func (s SpeedConfig) Next(current time.Duration) time.Duration {
	if !s.Ramp {
		return current
	}
	next := int(current/time.Millisecond) - s.StepMS
	return time.Duration(core.Clamp(next, s.FloorMS, max(s.InitialMS, s.FloorMS))) * time.Millisecond
}

// EscapeTimeout returns the ESC disambiguation window.
func (i InputConfig) EscapeTimeout() time.Duration {
	return time.Duration(i.EscapeTimeoutMS) * time.Millisecond
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	g := c.Game
	if g.GridSize < MinGridSize || g.GridSize > core.MaxGridSize {
		return fmt.Errorf("config: grid_size %d out of range [%d, %d]", g.GridSize, MinGridSize, core.MaxGridSize)
	}
	if g.InitialLength < 1 || g.InitialLength > g.GridSize/2+1 {
		return fmt.Errorf("config: initial_length %d does not fit a %d grid", g.InitialLength, g.GridSize)
	}
	if g.FoodPoints < 0 {
		return fmt.Errorf("config: food_points must not be negative")
	}
	if g.MaxFoodAttempts < 1 {
		return fmt.Errorf("config: max_food_attempts must be positive")
	}

	s := c.Speed
	if s.FloorMS <= 0 || s.InitialMS <= 0 {
		return fmt.Errorf("config: speed intervals must be positive")
	}
	if s.FloorMS > s.InitialMS {
		return fmt.Errorf("config: floor_ms %d exceeds initial_ms %d", s.FloorMS, s.InitialMS)
	}
	if s.Ramp && s.StepMS <= 0 {
		return fmt.Errorf("config: step_ms must be positive when ramp is enabled")
	}

	if c.Render.Theme == "" {
		return fmt.Errorf("config: render.theme is required")
	}
	if c.Input.EscapeTimeoutMS < 0 {
		return fmt.Errorf("config: escape_timeout_ms must not be negative")
	}

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// DifficultyPreset represents a named speed profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the speed section based on a difficulty preset.
// Unknown presets return an error and leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy:
		cfg.Speed = SpeedConfig{InitialMS: 150, StepMS: 2, FloorMS: 80, Ramp: true}
	case DifficultyNormal:
		cfg.Speed = SpeedConfig{InitialMS: 100, StepMS: 2, FloorMS: 50, Ramp: true}
	case DifficultyHard:
		cfg.Speed = SpeedConfig{InitialMS: 70, StepMS: 3, FloorMS: 35, Ramp: true}
	case DifficultyFixed:
		cfg.Speed.Ramp = false
	default:
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	return nil
}
