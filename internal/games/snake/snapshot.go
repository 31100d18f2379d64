package snake

// Snapshot is a read-only copy of everything a renderer needs to draw a frame.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Body      []Cell // Head first
	Food      Cell
	HasFood   bool
	Direction Direction
	Score     int
	Playing   bool
	Reason    EndReason
}

// Head returns the head cell, or false for an empty snapshot.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Body) == 0 {
		return Cell{}, false
	}
	return s.Body[0], true
}

// Snapshot returns the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.ticks,
		Rows:      s.grid.Rows(),
		Cols:      s.grid.Cols(),
		Body:      s.snake.Body(),
		Food:      s.food.Cell,
		HasFood:   s.fed,
		Direction: s.snake.Direction(),
		Score:     s.score,
		Playing:   s.Playing(),
		Reason:    s.reason,
	}
}

// Message returns a short human-readable description of why the session ended.
func (r EndReason) Message() string {
	switch r {
	case ReasonHitWall:
		return "Hit the wall"
	case ReasonHitSelf:
		return "Ate itself"
	case ReasonBoardFull:
		return "Board full - you win!"
	default:
		return ""
	}
}
