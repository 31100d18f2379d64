package host

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/games/snake"
)

// Runner steps a simulation with input from a source and draws every frame.
type Runner struct {
	sim      *snake.Simulation
	input    InputSource
	renderer Renderer
	logger   *log.Logger

	// Interval between steps in Run. Zero steps as fast as possible.
	Interval time.Duration

	// MaxTicks stops Run after this many steps. Zero means no limit.
	MaxTicks int

	steps int
}

// NewRunner creates a runner. input and renderer may be nil.
func NewRunner(sim *snake.Simulation, input InputSource, renderer Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		sim:      sim,
		input:    input,
		renderer: renderer,
		logger:   logger,
	}
}

// Steps returns how many steps the runner has taken.
func (r *Runner) Steps() int { return r.steps }

// Step applies the next turn, ticks once and draws the result.
// It reports whether the session is still playing.
func (r *Runner) Step() (bool, error) {
	if r.input != nil {
		if d, ok := r.input.Next(); ok {
			r.sim.SetDirection(d)
		}
	}

	playing := r.sim.Tick()
	r.steps++

	if err := r.draw(); err != nil {
		return playing, err
	}
	return playing, nil
}

// Run draws the initial frame, then steps until the session ends, MaxTicks
// is reached or ctx is cancelled. Buffered renderers are flushed in every
// case; a cancelled run returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("session started",
		"rows", r.sim.Grid().Rows(),
		"cols", r.sim.Grid().Cols(),
		"head", r.sim.Head().String(),
		"direction", r.sim.Direction().String(),
	)

	if err := r.draw(); err != nil {
		return err
	}

	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	runErr := r.loop(ctx, tick)

	switch {
	case runErr != nil:
		r.logger.Info("session interrupted", "steps", r.steps, "score", r.sim.Score(), "error", runErr)
	case r.sim.Playing():
		r.logger.Info("session stopped", "steps", r.steps, "score", r.sim.Score())
	default:
		r.logger.Info("session ended",
			"steps", r.steps,
			"score", r.sim.Score(),
			"reason", r.sim.Reason().String(),
		)
	}

	// The last frame is written even when the run was interrupted.
	if f, ok := r.renderer.(Flusher); ok {
		if err := f.Flush(); err != nil && runErr == nil {
			runErr = fmt.Errorf("host: flush: %w", err)
		}
	}
	return runErr
}

func (r *Runner) loop(ctx context.Context, tick <-chan time.Time) error {
	for r.sim.Playing() && (r.MaxTicks == 0 || r.steps < r.MaxTicks) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		playing, err := r.Step()
		if err != nil {
			return err
		}
		r.logger.Debug("tick", "n", r.steps, "head", r.sim.Head().String(), "score", r.sim.Score())
		if !playing {
			break
		}
	}
	return nil
}

func (r *Runner) draw() error {
	if r.renderer == nil {
		return nil
	}
	if err := r.renderer.Draw(r.sim.Snapshot()); err != nil {
		return fmt.Errorf("host: draw: %w", err)
	}
	return nil
}
