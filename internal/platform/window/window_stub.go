//go:build !ebiten

package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/games/snake"
)

// Run reports that the window host was not compiled in.
func Run(_ *snake.Simulation, _ Options, _ *log.Logger) error {
	return ErrNoWindow
}
