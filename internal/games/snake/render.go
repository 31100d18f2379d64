package snake

import (
	"github.com/vovakirdan/snek/internal/core"
)

// Glyphs used on the board.
const (
	GlyphHead = '@'
	GlyphBody = 'o'
	GlyphDead = 'x'
	GlyphFood = '*'
)

// BoardSize returns the screen footprint of a board including its border.
func BoardSize(rows, cols int) (w, h int) {
	return cols + 2, rows + 2
}

// DrawBoard draws the bordered board with its top-left corner at (x, y).
func DrawBoard(dst *core.Screen, snap Snapshot, x, y int) {
	w, h := BoardSize(snap.Rows, snap.Cols)
	dst.DrawBox(core.NewRect(x, y, w, h), core.ColorGray)

	if snap.HasFood {
		dst.SetColored(x+1+snap.Food.Col, y+1+snap.Food.Row, GlyphFood, core.ColorBrightRed)
	}

	// Draw tail first so the head wins on overlap
	for i := len(snap.Body) - 1; i >= 0; i-- {
		seg := snap.Body[i]
		glyph, color := GlyphBody, core.ColorGreen
		if i == 0 {
			glyph, color = GlyphHead, core.ColorBrightGreen
			if snap.Reason == ReasonHitWall || snap.Reason == ReasonHitSelf {
				glyph, color = GlyphDead, core.ColorRed
			}
		}
		dst.SetColored(x+1+seg.Col, y+1+seg.Row, glyph, color)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
