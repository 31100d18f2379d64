package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// ErrBoardFull is returned when every cell of the grid is occupied.
var ErrBoardFull = errors.New("snake: no free cell left on the board")

// Cell is one grid position, identified by column and row.
type Cell struct {
	Col, Row int
}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dc, dr := d.delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid holds the immutable board dimensions.
type Grid struct {
	rows int
	cols int
}

// NewGrid creates a grid with the given dimensions. Both must be positive.
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("snake: invalid grid %dx%d", rows, cols)
	}
	return Grid{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g Grid) Size() int { return g.rows * g.cols }

// Contains reports whether c lies within [0,cols) x [0,rows).
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// RandomFreeCell picks a cell not in occupied, uniformly at random.
// Free cells are enumerated, so the cost is bounded by the grid size.
// Returns ErrBoardFull when nothing is free.
func (g Grid) RandomFreeCell(rng *rand.Rand, occupied mapset.Set[Cell]) (Cell, error) {
	if occupied.Size() >= g.Size() {
		return Cell{}, ErrBoardFull
	}

	free := make([]Cell, 0, g.Size()-occupied.Size())
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := Cell{Col: col, Row: row}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}

	return free[rng.Intn(len(free))], nil
}
