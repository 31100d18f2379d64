package snake

import (
	"fmt"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
)

// Preset is a named board size. Zero dimensions keep the configured board.
type Preset struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Presets lists the built-in boards.
var Presets = []Preset{
	{ID: "classic", Title: "Snek"},
	{ID: "small", Title: "Snek (Small)", Rows: 10, Cols: 10},
	{ID: "large", Title: "Snek (Large)", Rows: 40, Cols: 60},
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, func(cfg config.Config) registry.Game {
			return NewGame(p, cfg)
		})
	}
}

// Apply returns cfg resized to the preset's board. The start cell is
// clamped onto the new board; food outside it is placed randomly later.
func (p Preset) Apply(cfg config.Config) config.Config {
	if p.Rows > 0 && p.Cols > 0 {
		cfg.Board.Rows = p.Rows
		cfg.Board.Cols = p.Cols
	}
	cfg.Snake.StartCol = core.Clamp(cfg.Snake.StartCol, 0, cfg.Board.Cols-1)
	cfg.Snake.StartRow = core.Clamp(cfg.Snake.StartRow, 0, cfg.Board.Rows-1)
	return cfg
}

// PresetByID looks up a built-in preset.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// OptionsFromConfig converts a validated config into simulation options.
func OptionsFromConfig(cfg config.Config, seed int64) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	dir, err := ParseDirection(cfg.Snake.Direction)
	if err != nil {
		return Options{}, fmt.Errorf("snake: %w", err)
	}

	opts := Options{
		Rows:      cfg.Board.Rows,
		Cols:      cfg.Board.Cols,
		Start:     Cell{Col: cfg.Snake.StartCol, Row: cfg.Snake.StartRow},
		Direction: dir,
		Seed:      seed,
	}
	if !cfg.Food.Random {
		opts.Food = &Cell{Col: cfg.Food.StartCol, Row: cfg.Food.StartRow}
	}
	return opts, nil
}
