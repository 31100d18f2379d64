package snake

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// StepResult is the outcome of moving the snake one cell.
type StepResult int

const (
	Alive StepResult = iota
	HitWall
	HitSelf
)

func (r StepResult) String() string {
	switch r {
	case Alive:
		return "alive"
	case HitWall:
		return "hit_wall"
	case HitSelf:
		return "hit_self"
	default:
		return "unknown"
	}
}

// Snake is the ordered body (head at index 0) and its facing direction.
type Snake struct {
	body      []Cell
	direction Direction
	justAte   bool // Last step grew the body
}

// NewSnake creates a one-cell snake.
func NewSnake(head Cell, dir Direction) *Snake {
	return &Snake{
		body:      []Cell{head},
		direction: dir,
	}
}

// NewSnakeFromBody creates a snake from an explicit body, head first.
// The body must be non-empty and free of duplicate cells.
func NewSnakeFromBody(body []Cell, dir Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("snake: empty body")
	}
	seen := mapset.New[Cell]()
	for _, c := range body {
		if seen.Has(c) {
			return nil, fmt.Errorf("snake: body overlaps itself at %s", c)
		}
		seen.Put(c)
	}

	b := make([]Cell, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir}, nil
}

// Head returns the first body cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Cell {
	b := make([]Cell, len(s.body))
	copy(b, s.body)
	return b
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current facing direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// JustAte reports whether the most recent step grew the body.
func (s *Snake) JustAte() bool {
	return s.justAte
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c Cell) bool {
	return occupies(s.body, c)
}

// Occupied returns the body cells as a set.
func (s *Snake) Occupied() mapset.Set[Cell] {
	set := mapset.New[Cell]()
	for _, c := range s.body {
		set.Put(c)
	}
	return set
}

// SetDirection turns the snake. Reversing onto the neck is ignored.
func (s *Snake) SetDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Step moves the snake one cell. When ateFood is false the tail leaves
// its cell on the same step, so the head may enter it. On HitWall and
// HitSelf the body is left untouched.
func (s *Snake) Step(ateFood bool, grid Grid) StepResult {
	newHead := s.Head().Add(s.direction)

	if !grid.Contains(newHead) {
		return HitWall
	}

	remaining := s.body
	if !ateFood {
		remaining = s.body[:len(s.body)-1]
	}

	if occupies(remaining, newHead) {
		return HitSelf
	}

	if ateFood {
		s.body = append(s.body, Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	s.justAte = ateFood

	return Alive
}

func occupies(cells []Cell, c Cell) bool {
	for _, seg := range cells {
		if seg == c {
			return true
		}
	}
	return false
}
