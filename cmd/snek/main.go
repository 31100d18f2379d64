// snek is a grid-based snake game for the terminal.
//
// Usage:
//
//	snek list               - List board presets
//	snek play [preset]      - Play in the terminal
//	snek run [preset]       - Run headless from a move script
//	snek window [preset]    - Play in a desktop window (build tag ebiten)
//
// Global flags:
//
//	--fps <rate>       - Terminal tick rate (default: 60)
//	--seed <value>     - RNG seed for reproducible food placement
//	--config <path>    - Custom config YAML
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/games/snake"
	"github.com/vovakirdan/snek/internal/registry"
)

const defaultPreset = "classic"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snek - the snake game for your terminal",
	Long: `Snek steers a snake around a walled grid. Eat food to grow,
avoid the walls and your own tail.

Available commands:
  list     - Show board presets
  play     - Play in the terminal
  run      - Run headless from a move script
  window   - Play in a desktop window

Examples:
  snek play
  snek play small --seed 42
  snek run small --moves "RRDDLL" --frames
  snek window large --scale 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(windowCmd)
}

// newLogger builds the process logger. Logs are discarded unless --log-file
// is set so they never draw over the game. The returned closer must be called.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snek",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// presetArg returns the preset named in args, or the default.
func presetArg(args []string) (string, error) {
	id := defaultPreset
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown preset %q (run 'snek list' to see presets)", id)
	}
	return id, nil
}

// newSimulation loads the config, applies the preset and starts a session.
func newSimulation(presetID string, seed int64, logger *log.Logger) (*snake.Simulation, config.Config, error) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return nil, config.Config{}, err
	}
	logger.Debug("config loaded", "source", loaded.Source)

	p, ok := snake.PresetByID(presetID)
	if !ok {
		return nil, config.Config{}, fmt.Errorf("unknown preset %q", presetID)
	}
	cfg := p.Apply(loaded)

	opts, err := snake.OptionsFromConfig(cfg, seed)
	if err != nil {
		return nil, config.Config{}, err
	}
	sim, err := snake.NewSimulation(opts)
	if err != nil {
		return nil, config.Config{}, err
	}
	return sim, cfg, nil
}
