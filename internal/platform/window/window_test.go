//go:build ebiten

package window

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snek/internal/games/snake"
)

func TestPressedDirectionsOrder(t *testing.T) {
	down := map[ebiten.Key]bool{
		ebiten.KeyD:         true,
		ebiten.KeyArrowUp:   true,
		ebiten.KeyArrowLeft: true,
	}
	pressed := func(k ebiten.Key) bool { return down[k] }

	want := []snake.Direction{snake.DirUp, snake.DirLeft, snake.DirRight}
	for i := 0; i < 20; i++ {
		if got := pressedDirections(pressed); !reflect.DeepEqual(got, want) {
			t.Fatalf("pressedDirections = %v, want %v", got, want)
		}
	}
}

func TestPressedDirectionsNone(t *testing.T) {
	if got := pressedDirections(func(ebiten.Key) bool { return false }); len(got) != 0 {
		t.Errorf("expected no turns, got %v", got)
	}
}
