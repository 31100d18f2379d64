package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/games/snake"
	"github.com/vovakirdan/snek/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window [preset]",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. Requires a build with the
ebiten tag:

  go build -tags ebiten ./cmd/snek

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  Q/Esc        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 20, "Pixels per cell")
}

func runWindow(cmd *cobra.Command, args []string) error {
	id, err := presetArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	sim, cfg, err := newSimulation(id, resolveSeed(), logger)
	if err != nil {
		return err
	}

	title := "snek"
	if p, ok := snake.PresetByID(id); ok {
		title = p.Title
	}

	err = window.Run(sim, window.Options{
		Title:          title,
		Scale:          flagScale,
		StepsPerSecond: cfg.Timing.StepsPerSecond,
	}, logger)
	if errors.Is(err, window.ErrNoWindow) {
		return fmt.Errorf("%w (try 'snek play' for the terminal version)", err)
	}
	return err
}
