package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize:        20,
			InitialLength:   3,
			FoodPoints:      10,
			MaxFoodAttempts: 100,
		},
		Speed: SpeedConfig{
			InitialMS: 100,
			StepMS:    2,
			FloorMS:   50,
			Ramp:      true,
		},
		Render: RenderConfig{
			Theme:           "ascii",
			Color:           true,
			Diff:            true,
			DirectionalHead: true,
		},
		Input: InputConfig{
			EscapeTimeoutMS: 25,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "~/.snake/highscore",
			DBPath:  "~/.snake/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
