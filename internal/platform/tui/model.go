package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/storage"
)

// statusSecs is how long a transient message stays on the status line.
const statusSecs = 3

// Model is the Bubble Tea model for running one arcade game. The last
// screen row is reserved for the transient message status line.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	status    core.Message
	statusTTL int // Ticks until the status line clears

	allowBack      bool // Esc returns to the menu (session flow)
	backToMenu     bool
	quitting       bool
	scoreSubmitted bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// gameConfig is the runtime config handed to the game: one row short,
// reserved for the status line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH--
	return cfg
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.submitScore()
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.inputFrame.Has(core.ActionBack) &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.submitScore()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. Resizing restarts the
// game so it can lay out for the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)

	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSubmitted = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if len(result.Messages) > 0 {
		m.status = result.Messages[len(result.Messages)-1]
		m.statusTTL = statusSecs * m.config.TickRate
	} else if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = core.Message{}
		}
	}

	if m.gameState.GameOver {
		m.submitScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// submitScore records the current score once per run. A new best is
// announced on the status line.
func (m *Model) submitScore() {
	if m.store == nil || m.scoreSubmitted || m.gameState.Score <= 0 {
		return
	}
	m.scoreSubmitted = true

	newBest, err := m.store.SubmitScore(m.game.ID(), m.gameState.Score)
	if err != nil {
		return
	}
	if newBest {
		m.status = core.Success("New best score!")
		m.statusTTL = statusSecs * m.config.TickRate
	}
}

// View renders the game plus the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	view += "\n"
	if m.status.Text != "" {
		view += RenderMessage(m.status)
	}
	return view
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
