package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// State is the simulation's lifecycle state.
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// EndReason explains why a session ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonHitWall
	ReasonHitSelf
	ReasonBoardFull
)

func (r EndReason) String() string {
	switch r {
	case ReasonHitWall:
		return "hit_wall"
	case ReasonHitSelf:
		return "hit_self"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Options configures a new Simulation.
type Options struct {
	Rows      int
	Cols      int
	Start     Cell
	Direction Direction
	Food      *Cell // Preferred first food cell; nil or invalid means random
	Seed      int64
}

// Simulation owns the grid, snake, food and score for one session.
// It is not safe for concurrent use; the host serializes SetDirection and Tick.
type Simulation struct {
	grid   Grid
	snake  *Snake
	food   Food
	fed    bool // Food is on the board
	rng    *rand.Rand
	score  int
	grow   bool // Food eaten last tick; suppresses tail removal on the next step
	state  State
	reason EndReason
	ticks  uint64
}

// NewSimulation creates a running session with a one-cell snake.
func NewSimulation(opts Options) (*Simulation, error) {
	grid, err := NewGrid(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	if !grid.Contains(opts.Start) {
		return nil, fmt.Errorf("snake: start %s outside %dx%d grid", opts.Start, opts.Rows, opts.Cols)
	}
	return newSimulation(grid, NewSnake(opts.Start, opts.Direction), opts.Food, opts.Seed)
}

// NewSimulationWithSnake creates a session around an existing snake body.
func NewSimulationWithSnake(grid Grid, s *Snake, food *Cell, seed int64) (*Simulation, error) {
	for _, c := range s.body {
		if !grid.Contains(c) {
			return nil, fmt.Errorf("snake: body cell %s outside %dx%d grid", c, grid.Rows(), grid.Cols())
		}
	}
	return newSimulation(grid, s, food, seed)
}

func newSimulation(grid Grid, s *Snake, food *Cell, seed int64) (*Simulation, error) {
	sim := &Simulation{
		grid:  grid,
		snake: s,
		rng:   rand.New(rand.NewSource(seed)),
		state: Running,
	}

	if food != nil && grid.Contains(*food) && !s.Occupies(*food) {
		sim.food = Food{Cell: *food}
		sim.fed = true
		return sim, nil
	}

	f, err := RelocateFood(sim.rng, grid, s)
	if errors.Is(err, ErrBoardFull) {
		// Nothing left to eat: the board is already won.
		sim.end(ReasonBoardFull)
		return sim, nil
	}
	if err != nil {
		return nil, err
	}
	sim.food = f
	sim.fed = true
	return sim, nil
}

// SetDirection forwards a turn to the snake. Ignored once the session ended.
func (s *Simulation) SetDirection(d Direction) {
	if s.state == Ended {
		return
	}
	s.snake.SetDirection(d)
}

// Tick advances the session one step and reports whether it is still running.
// Ticking an ended session does nothing.
func (s *Simulation) Tick() bool {
	if s.state == Ended {
		return false
	}

	switch s.snake.Step(s.grow, s.grid) {
	case HitWall:
		s.end(ReasonHitWall)
		return false
	case HitSelf:
		s.end(ReasonHitSelf)
		return false
	}
	s.ticks++

	if !s.food.ConsumedBy(s.snake) {
		s.grow = false
		return true
	}

	s.score++
	s.grow = true

	f, err := RelocateFood(s.rng, s.grid, s.snake)
	if err != nil {
		// RelocateFood only fails when the board is full.
		s.fed = false
		s.end(ReasonBoardFull)
		return false
	}
	s.food = f
	return true
}

func (s *Simulation) end(reason EndReason) {
	s.state = Ended
	s.reason = reason
}

// Grid returns the board dimensions.
func (s *Simulation) Grid() Grid { return s.grid }

// Body returns a copy of the snake body, head first.
func (s *Simulation) Body() []Cell { return s.snake.Body() }

// Head returns the snake's head cell.
func (s *Simulation) Head() Cell { return s.snake.Head() }

// Direction returns the snake's facing direction.
func (s *Simulation) Direction() Direction { return s.snake.Direction() }

// Food returns the current food cell. The second result is false when
// the board is full and no food could be placed.
func (s *Simulation) Food() (Cell, bool) { return s.food.Cell, s.fed }

// Score returns the number of food eaten.
func (s *Simulation) Score() int { return s.score }

// Playing reports whether the session is still running.
func (s *Simulation) Playing() bool { return s.state == Running }

// State returns the lifecycle state.
func (s *Simulation) State() State { return s.state }

// Reason returns why the session ended, or ReasonNone.
func (s *Simulation) Reason() EndReason { return s.reason }

// Ticks returns the number of committed steps.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Growing reports whether the next step will keep the tail.
func (s *Simulation) Growing() bool { return s.grow }
