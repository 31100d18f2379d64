package config

import (
	_ "embed"
)

//go:embed defaults/snek.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 25x30 board, the snake at
// (1,1) heading down, food at (10,10) and 16 steps per second.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 25,
			Cols: 30,
		},
		Snake: SnakeConfig{
			StartCol:  1,
			StartRow:  1,
			Direction: "down",
		},
		Food: FoodConfig{
			StartCol: 10,
			StartRow: 10,
		},
		Timing: TimingConfig{
			StepsPerSecond: 16,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
