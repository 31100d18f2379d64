package snake

import (
	"fmt"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
)

const hudHeight = 2 // HUD line plus separator

// Game adapts a Simulation to the platform's fixed-rate tick loop.
type Game struct {
	preset Preset
	cfg    config.Config
	sim    *Simulation

	moveEveryTicks int
	moveTicker     int

	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	paused   bool
	tooSmall bool
}

// NewGame creates a game for preset p over the loaded config.
func NewGame(p Preset, cfg config.Config) *Game {
	return &Game{
		preset: p,
		cfg:    p.Apply(cfg),
	}
}

// ID returns the preset identifier.
func (g *Game) ID() string { return g.preset.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.preset.Title }

// Reset starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	opts, err := OptionsFromConfig(g.cfg, rc.Seed)
	if err != nil {
		return err
	}
	sim, err := NewSimulation(opts)
	if err != nil {
		return err
	}

	g.sim = sim
	g.paused = false
	g.moveTicker = 0
	g.moveEveryTicks = max(1, rc.TickRate/g.cfg.Timing.StepsPerSecond)
	g.Resize(rc.ScreenW, rc.ScreenH)
	return nil
}

// Resize recomputes the board layout. The session is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	minW, minH := MinScreenSize(g.cfg.Board.Rows, g.cfg.Board.Cols)
	g.tooSmall = w < minW || h < minH
	g.offsetX = (w - minW) / 2
	g.offsetY = hudHeight
}

// MinScreenSize returns the smallest screen that fits the HUD and a
// rows x cols board.
func MinScreenSize(rows, cols int) (w, h int) {
	bw, bh := BoardSize(rows, cols)
	return bw, hudHeight + bh
}

// Step advances the game by one platform tick. The snake moves once every
// moveEveryTicks ticks; turns are handed to the simulation as they arrive.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.sim.Playing() {
		g.paused = !g.paused
	}

	if !g.sim.Playing() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Turns {
		if d, ok := directionFor(a); ok {
			g.sim.SetDirection(d)
		}
	}

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0
	g.sim.Tick()

	return core.StepResult{State: g.State(), Moved: true}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Render draws the HUD, board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		minW, minH := MinScreenSize(snap.Rows, snap.Cols)
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	DrawBoard(dst, snap, g.offsetX, g.offsetY)

	switch {
	case snap.Reason == ReasonBoardFull:
		drawOverlay(dst, snap.Reason.Message(), fmt.Sprintf("Final Score: %d", snap.Score))
	case !snap.Playing:
		drawOverlay(dst, "Game Over", snap.Reason.Message())
	case g.paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d", g.preset.Title, snap.Score, len(snap.Body))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: !g.sim.Playing(),
		Paused:   g.paused,
		Reason:   g.sim.Reason().Message(),
	}
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	return g.sim.Snapshot()
}
