package host

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/games/snake"
)

// TextRenderer writes frames as plain text: the bordered board followed by
// a status line.
type TextRenderer struct {
	w      io.Writer
	screen *core.Screen

	// FinalOnly buffers frames and writes only the last one on Flush.
	FinalOnly bool

	last    snake.Snapshot
	pending bool
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, finalOnly bool) *TextRenderer {
	return &TextRenderer{
		w:         w,
		screen:    core.NewScreen(0, 0),
		FinalOnly: finalOnly,
	}
}

// Draw writes the frame, or keeps it for Flush when FinalOnly is set.
func (t *TextRenderer) Draw(snap snake.Snapshot) error {
	if t.FinalOnly {
		t.last = snap
		t.pending = true
		return nil
	}
	return t.write(snap)
}

// Flush writes the last buffered frame.
func (t *TextRenderer) Flush() error {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.write(t.last)
}

func (t *TextRenderer) write(snap snake.Snapshot) error {
	w, h := snake.BoardSize(snap.Rows, snap.Cols)
	if t.screen.Width() != w || t.screen.Height() != h {
		t.screen.Resize(w, h)
	}
	t.screen.Clear()
	snake.DrawBoard(t.screen, snap, 0, 0)

	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(t.screen.Row(y))
		b.WriteByte('\n')
	}
	b.WriteString(StatusLine(snap))
	b.WriteByte('\n')

	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("host: write frame: %w", err)
	}
	return nil
}

// StatusLine summarizes a snapshot on one line.
func StatusLine(snap snake.Snapshot) string {
	state := "playing"
	if !snap.Playing {
		state = "ended:" + snap.Reason.String()
	}
	return fmt.Sprintf("tick=%d score=%d length=%d direction=%s state=%s",
		snap.Tick, snap.Score, len(snap.Body), snap.Direction, state)
}
