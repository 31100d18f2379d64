package snake

import "math/rand"

// Food is the single piece of food on the board.
type Food struct {
	Cell Cell
}

// RelocateFood places new food on a random cell clear of the snake.
// Returns ErrBoardFull when the snake covers the whole grid.
func RelocateFood(rng *rand.Rand, grid Grid, s *Snake) (Food, error) {
	c, err := grid.RandomFreeCell(rng, s.Occupied())
	if err != nil {
		return Food{}, err
	}
	return Food{Cell: c}, nil
}

// ConsumedBy reports whether the snake's head is on the food.
func (f Food) ConsumedBy(s *Snake) bool {
	return s.Head() == f.Cell
}
