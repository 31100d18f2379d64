package snake

import (
	"reflect"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustSnake(t *testing.T, body []Cell, dir Direction) *Snake {
	t.Helper()
	s, err := NewSnakeFromBody(body, dir)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSnakeFromBodyRejectsInvalid(t *testing.T) {
	if _, err := NewSnakeFromBody(nil, DirUp); err == nil {
		t.Error("empty body should be rejected")
	}
	if _, err := NewSnakeFromBody([]Cell{{1, 1}, {1, 2}, {1, 1}}, DirUp); err == nil {
		t.Error("duplicate cells should be rejected")
	}
}

func TestSetDirectionIgnoresReverse(t *testing.T) {
	tests := []struct {
		name  string
		start Direction
		turns []Direction
		want  Direction
	}{
		{"reverse ignored", DirRight, []Direction{DirLeft}, DirRight},
		{"perpendicular accepted", DirRight, []Direction{DirUp}, DirUp},
		{"same direction", DirDown, []Direction{DirDown}, DirDown},
		{"last write wins", DirRight, []Direction{DirUp, DirLeft}, DirLeft},
		{"reverse after turn ignored", DirRight, []Direction{DirDown, DirUp}, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(Cell{5, 5}, tt.start)
			for _, d := range tt.turns {
				s.SetDirection(d)
			}
			if s.Direction() != tt.want {
				t.Errorf("Direction() = %v, want %v", s.Direction(), tt.want)
			}
		})
	}
}

func TestStepMovesHead(t *testing.T) {
	g := mustGrid(t, 10, 10)
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{DirUp, Cell{5, 4}},
		{DirDown, Cell{5, 6}},
		{DirLeft, Cell{4, 5}},
		{DirRight, Cell{6, 5}},
	}
	for _, tt := range tests {
		s := NewSnake(Cell{5, 5}, tt.dir)
		if r := s.Step(false, g); r != Alive {
			t.Fatalf("%v: got %v", tt.dir, r)
		}
		if s.Head() != tt.want {
			t.Errorf("%v: head = %s, want %s", tt.dir, s.Head(), tt.want)
		}
		if s.Len() != 1 {
			t.Errorf("%v: length = %d, want 1", tt.dir, s.Len())
		}
	}
}

func TestStepGrowth(t *testing.T) {
	g := mustGrid(t, 10, 10)
	s := NewSnake(Cell{2, 2}, DirRight)

	if r := s.Step(true, g); r != Alive {
		t.Fatalf("got %v", r)
	}
	want := []Cell{{3, 2}, {2, 2}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("body = %v, want %v", s.Body(), want)
	}
	if !s.JustAte() {
		t.Error("JustAte should be true after growing")
	}

	s.Step(false, g)
	if s.Len() != 2 {
		t.Errorf("length = %d, want 2", s.Len())
	}
	if s.JustAte() {
		t.Error("JustAte should be false after a plain step")
	}
}

func TestStepTailFollows(t *testing.T) {
	g := mustGrid(t, 10, 10)
	tests := []struct {
		name  string
		body  []Cell
		dir   Direction
		turns []Direction
		want  []Cell
	}{
		{
			name: "straight",
			body: []Cell{{2, 2}, {1, 2}, {0, 2}},
			dir:  DirRight,
			want: []Cell{{3, 2}, {2, 2}, {1, 2}},
		},
		{
			name:  "loop back over the vacated tail",
			body:  []Cell{{5, 5}, {4, 5}, {3, 5}},
			dir:   DirRight,
			turns: []Direction{DirDown, DirLeft, DirUp},
			want:  []Cell{{4, 5}, {4, 6}, {5, 6}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSnake(t, tt.body, tt.dir)
			if len(tt.turns) == 0 {
				if r := s.Step(false, g); r != Alive {
					t.Fatalf("got %v", r)
				}
			}
			for _, d := range tt.turns {
				s.SetDirection(d)
				if r := s.Step(false, g); r != Alive {
					t.Fatalf("turn %v: got %v", d, r)
				}
			}
			if !reflect.DeepEqual(s.Body(), tt.want) {
				t.Errorf("body = %v, want %v", s.Body(), tt.want)
			}
		})
	}
}

func TestStepIntoVacatedTail(t *testing.T) {
	g := mustGrid(t, 10, 10)
	// A 2x2 loop: the head chases the tail around.
	s := mustSnake(t, []Cell{{1, 1}, {1, 2}, {2, 2}, {2, 1}}, DirRight)

	if r := s.Step(false, g); r != Alive {
		t.Fatalf("moving into the vacating tail should be alive, got %v", r)
	}
	want := []Cell{{2, 1}, {1, 1}, {1, 2}, {2, 2}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("body = %v, want %v", s.Body(), want)
	}
}

func TestStepHitWall(t *testing.T) {
	g := mustGrid(t, 5, 5)
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"top", Cell{2, 0}, DirUp},
		{"bottom", Cell{2, 4}, DirDown},
		{"left", Cell{0, 2}, DirLeft},
		{"right", Cell{4, 2}, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSnake(t, []Cell{tt.head}, tt.dir)
			if r := s.Step(false, g); r != HitWall {
				t.Fatalf("got %v, want hit_wall", r)
			}
			if !reflect.DeepEqual(s.Body(), []Cell{tt.head}) {
				t.Errorf("body changed on wall hit: %v", s.Body())
			}
		})
	}
}

func TestStepHitSelf(t *testing.T) {
	g := mustGrid(t, 10, 10)
	body := []Cell{{5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}}
	s := mustSnake(t, body, DirLeft)

	if r := s.Step(false, g); r != HitSelf {
		t.Fatalf("got %v, want hit_self", r)
	}
	if !reflect.DeepEqual(s.Body(), body) {
		t.Errorf("body changed on self hit: %v", s.Body())
	}
}

func TestStepIntoTailDependsOnGrowth(t *testing.T) {
	g := mustGrid(t, 10, 10)
	body := []Cell{{5, 5}, {5, 6}, {5, 4}, {4, 4}, {4, 5}}

	tests := []struct {
		name    string
		ateFood bool
		want    StepResult
	}{
		{"tail leaves", false, Alive},
		{"tail stays when growing", true, HitSelf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSnake(t, body, DirLeft)
			if r := s.Step(tt.ateFood, g); r != tt.want {
				t.Errorf("got %v, want %v", r, tt.want)
			}
		})
	}
}

func TestOccupied(t *testing.T) {
	s := mustSnake(t, []Cell{{1, 1}, {1, 2}}, DirUp)
	set := s.Occupied()
	if set.Size() != 2 || !set.Has(Cell{1, 1}) || !set.Has(Cell{1, 2}) {
		t.Error("Occupied does not match body")
	}
	if !s.Occupies(Cell{1, 2}) || s.Occupies(Cell{2, 2}) {
		t.Error("Occupies mismatch")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(Cell{3, 3}, DirUp)
	b := s.Body()
	b[0] = Cell{9, 9}
	if s.Head() != (Cell{3, 3}) {
		t.Error("mutating Body() result changed the snake")
	}
}
