//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snek/internal/games/snake"
)

// directionKeys is scanned in order; when several keys are pressed in one
// frame the last accepted turn wins.
var directionKeys = []struct {
	key ebiten.Key
	dir snake.Direction
}{
	{ebiten.KeyArrowUp, snake.DirUp},
	{ebiten.KeyW, snake.DirUp},
	{ebiten.KeyArrowDown, snake.DirDown},
	{ebiten.KeyS, snake.DirDown},
	{ebiten.KeyArrowLeft, snake.DirLeft},
	{ebiten.KeyA, snake.DirLeft},
	{ebiten.KeyArrowRight, snake.DirRight},
	{ebiten.KeyD, snake.DirRight},
}

// Game adapts a Simulation to the ebiten.Game interface. Ebiten calls
// Update once per tick, so TPS is the snake's speed.
type Game struct {
	sim    *snake.Simulation
	scale  int
	paused bool
	ended  bool
	logger *log.Logger
}

// New constructs a Game for the provided simulation.
func New(sim *snake.Simulation, scale int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{sim: sim, scale: scale, logger: logger}
}

// Update handles input and advances the simulation one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.sim.Playing() && (inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.paused = !g.paused
	}
	if g.paused || !g.sim.Playing() {
		return nil
	}

	for _, d := range pressedDirections(inpututil.IsKeyJustPressed) {
		g.sim.SetDirection(d)
	}

	if !g.sim.Tick() && !g.ended {
		g.ended = true
		g.logger.Info("game over", "score", g.sim.Score(), "reason", g.sim.Reason().String())
	}
	return nil
}

// pressedDirections returns the turns for keys reported by pressed, in
// directionKeys order.
func pressedDirections(pressed func(ebiten.Key) bool) []snake.Direction {
	var dirs []snake.Direction
	for _, dk := range directionKeys {
		if pressed(dk.key) {
			dirs = append(dirs, dk.dir)
		}
	}
	return dirs
}

// Draw renders the board and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.sim.Snapshot()

	if snap.HasFood {
		x, y, w, h := cellRect(snap.Food, g.scale)
		vector.DrawFilledRect(screen, x, y, w, h, colorFood, false)
	}

	for i := len(snap.Body) - 1; i >= 0; i-- {
		clr := colorBody
		if i == 0 {
			clr = colorHead
			if snap.Reason == snake.ReasonHitWall || snap.Reason == snake.ReasonHitSelf {
				clr = colorDead
			}
		}
		x, y, w, h := cellRect(snap.Body[i], g.scale)
		vector.DrawFilledRect(screen, x+1, y+1, w-2, h-2, clr, false)
	}

	ebitenutil.DebugPrintAt(screen, statusText(snap, g.paused), 2, 0)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sim.Grid()
	return screenSize(grid.Rows(), grid.Cols(), g.scale)
}

// Run opens a window and plays sim until the window is closed.
func Run(sim *snake.Simulation, opts Options, logger *log.Logger) error {
	opts = opts.withDefaults()
	game := New(sim, opts.Scale, logger)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.StepsPerSecond)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
