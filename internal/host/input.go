package host

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/snek/internal/games/snake"
)

// ScriptInput replays a fixed move script, one symbol per step:
// U, D, L, R turn the snake and '.' leaves it alone. Whitespace is ignored.
type ScriptInput struct {
	moves []scriptMove
	pos   int
}

type scriptMove struct {
	dir  snake.Direction
	turn bool
}

// NewScriptInput parses a move script.
func NewScriptInput(script string) (*ScriptInput, error) {
	s := &ScriptInput{}
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		switch unicode.ToUpper(r) {
		case 'U':
			s.moves = append(s.moves, scriptMove{dir: snake.DirUp, turn: true})
		case 'D':
			s.moves = append(s.moves, scriptMove{dir: snake.DirDown, turn: true})
		case 'L':
			s.moves = append(s.moves, scriptMove{dir: snake.DirLeft, turn: true})
		case 'R':
			s.moves = append(s.moves, scriptMove{dir: snake.DirRight, turn: true})
		case '.':
			s.moves = append(s.moves, scriptMove{})
		default:
			return nil, fmt.Errorf("host: invalid move %q at offset %d", r, i)
		}
	}
	return s, nil
}

// Next returns the turn for the current step and advances the script.
func (s *ScriptInput) Next() (snake.Direction, bool) {
	if s.pos >= len(s.moves) {
		return 0, false
	}
	m := s.moves[s.pos]
	s.pos++
	return m.dir, m.turn
}

// Len returns the number of steps in the script.
func (s *ScriptInput) Len() int { return len(s.moves) }

// Remaining returns the number of steps not yet replayed.
func (s *ScriptInput) Remaining() int { return len(s.moves) - s.pos }
