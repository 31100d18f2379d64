package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	sessionID  string
	quitting   bool
	ended      bool // Game over has been logged
}

// NewModel creates a model and starts a new session of game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screenCfg := cfg
	screenCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	if err := game.Reset(screenCfg); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	id := uuid.NewString()
	logger.Info("session started",
		"session", id,
		"game", game.ID(),
		"seed", cfg.Seed,
		"screen", [2]int{cfg.ScreenW, cfg.ScreenH},
	)

	return Model{
		game:       game,
		screen:     core.NewScreen(screenCfg.ScreenW, screenCfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		sessionID:  id,
	}, nil
}

// SessionID returns the id used to tag this session's log lines.
func (m Model) SessionID() string { return m.sessionID }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("session quit", "session", m.sessionID, "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize relayouts the game without restarting it when possible.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	w, h := msg.Width, max(msg.Height-helpHeight, 0)
	m.screen.Resize(w, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
		return m, nil
	}

	if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenH = h
		if err := m.game.Reset(cfg); err != nil {
			m.logger.Error("reset after resize failed", "session", m.sessionID, "error", err)
		}
	}
	return m, nil
}

// handleTick advances the game one platform tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.ended {
		m.ended = true
		m.logger.Info("game over",
			"session", m.sessionID,
			"score", m.gameState.Score,
			"reason", m.gameState.Reason,
		)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
