// Package window hosts a simulation in a desktop window using ebiten.
// The window itself is only compiled with the ebiten build tag; without it
// Run reports that the tag is missing.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vovakirdan/snek/internal/games/snake"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("window: build with -tags ebiten for window support")

// hudPixels is the height of the status strip above the board.
const hudPixels = 16

// Palette used by the window host.
var (
	colorBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colorHead       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBody       = color.RGBA{R: 0x3c, G: 0xb3, B: 0x71, A: 0xff}
	colorDead       = color.RGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
	colorFood       = color.RGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}
)

// Options configures the window host.
type Options struct {
	Title          string
	Scale          int // Pixels per cell
	StepsPerSecond int
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 20
	}
	if o.StepsPerSecond <= 0 {
		o.StepsPerSecond = 16
	}
	if o.Title == "" {
		o.Title = "snek"
	}
	return o
}

// screenSize returns the logical window size for a board.
func screenSize(rows, cols, scale int) (w, h int) {
	return cols * scale, rows*scale + hudPixels
}

// cellRect returns the pixel rectangle of a board cell.
func cellRect(c snake.Cell, scale int) (x, y, w, h float32) {
	s := float32(scale)
	return float32(c.Col) * s, float32(c.Row)*s + hudPixels, s, s
}

// statusText is the HUD line shown above the board.
func statusText(snap snake.Snapshot, paused bool) string {
	switch {
	case !snap.Playing:
		return fmt.Sprintf("Score: %d  %s", snap.Score, snap.Reason.Message())
	case paused:
		return fmt.Sprintf("Score: %d  Paused", snap.Score)
	default:
		return fmt.Sprintf("Score: %d  Length: %d", snap.Score, len(snap.Body))
	}
}
