package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/host"
)

var (
	flagMoves    string
	flagTicks    int
	flagInterval time.Duration
	flagFrames   bool
)

var runCmd = &cobra.Command{
	Use:   "run [preset]",
	Short: "Run headless from a move script",
	Long: `Run a session without a terminal UI and print the result.

The move script has one symbol per step: U, D, L, R turn the snake and
'.' keeps going straight. Whitespace is ignored. When the script runs out
the snake keeps its direction until it crashes or --ticks is reached.

Examples:
  snek run small --seed 1 --moves "RRRR DDDD"
  snek run --ticks 50 --frames --interval 100ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script (U/D/L/R/.)")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many steps (0 = until the game ends)")
	runCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Delay between steps")
	runCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every frame instead of only the last")
}

func runRun(cmd *cobra.Command, args []string) error {
	id, err := presetArg(args)
	if err != nil {
		return err
	}

	input, err := host.NewScriptInput(flagMoves)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed()
	sim, _, err := newSimulation(id, seed, logger)
	if err != nil {
		return err
	}
	logger.Info("headless run", "preset", id, "seed", seed, "moves", input.Len())

	runner := host.NewRunner(sim, input, host.NewTextRenderer(os.Stdout, !flagFrames), logger)
	runner.Interval = flagInterval
	runner.MaxTicks = flagTicks

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runner.Run(ctx)
}
