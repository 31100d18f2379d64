// Package config provides YAML-based configuration loading for snek.
package config

import (
	"fmt"
	"strings"
)

// Config contains everything needed to start a session.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  SnakeConfig  `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`

	// Source names where the config was loaded from (path or "embedded").
	Source string `yaml:"-"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeConfig defines the initial one-cell snake.
type SnakeConfig struct {
	StartCol  int    `yaml:"start_col"`
	StartRow  int    `yaml:"start_row"`
	Direction string `yaml:"direction"` // up, down, left, right
}

// FoodConfig defines the first food placement.
type FoodConfig struct {
	StartCol int  `yaml:"start_col"`
	StartRow int  `yaml:"start_row"`
	Random   bool `yaml:"random"` // Ignore start_col/start_row and place randomly
}

// TimingConfig defines how fast the snake moves.
type TimingConfig struct {
	StepsPerSecond int `yaml:"steps_per_second"`
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Snake.StartCol < 0 || c.Snake.StartCol >= c.Board.Cols ||
		c.Snake.StartRow < 0 || c.Snake.StartRow >= c.Board.Rows {
		return fmt.Errorf("config: snake start (%d,%d) outside %dx%d board",
			c.Snake.StartCol, c.Snake.StartRow, c.Board.Rows, c.Board.Cols)
	}
	switch strings.ToLower(c.Snake.Direction) {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("config: unknown snake direction %q", c.Snake.Direction)
	}
	if c.Timing.StepsPerSecond <= 0 {
		return fmt.Errorf("config: steps_per_second must be positive, got %d", c.Timing.StepsPerSecond)
	}
	return nil
}
