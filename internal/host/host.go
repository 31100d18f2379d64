// Package host drives a snake simulation from outside: it feeds turns in,
// ticks at a fixed interval and hands each frame to a renderer. The
// simulation itself knows nothing about any host.
package host

import "github.com/vovakirdan/snek/internal/games/snake"

// Renderer draws one frame from a read-only snapshot.
type Renderer interface {
	Draw(snap snake.Snapshot) error
}

// InputSource yields at most one turn per step.
type InputSource interface {
	Next() (snake.Direction, bool)
}

// Flusher is implemented by renderers that buffer output until the run ends.
type Flusher interface {
	Flush() error
}
