package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The preset defaults to "classic".

The classic board needs a terminal of at least 32x30; use "small"
(needs 12x15) on a standard 80x24 terminal.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space           - Pause
  Q/Esc/Ctrl+C      - Quit

Examples:
  snek play
  snek play small
  snek play large
  snek play --config ./my-snek.yaml --log-file snek.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := presetArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", loaded.Source)

	game, err := registry.Create(id, loaded)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed()

	return tui.Run(game, cfg, logger)
}
