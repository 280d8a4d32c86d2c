package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sakhare12/selfstalker/internal/core"
	"github.com/sakhare12/selfstalker/internal/stalker"
)

// holdTicks is how many ticks a directional key press stays asserted.
// Terminals deliver presses but no releases; with key repeat a held key
// refreshes the window faster than it drains, so movement feels continuous.
const holdTicks = 6

// Model is the Bubble Tea model driving a Self Stalker session.
type Model struct {
	game       *stalker.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       map[core.Action]int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given engine.
func NewModel(game *stalker.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
}

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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsDirectional(action):
		m.held[action] = holdTicks
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The arena lives in world
// coordinates, so a resize only rescales the view; the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	for action, left := range m.held {
		if left > 0 {
			frame.Set(action)
			m.held[action] = left - 1
		}
	}

	m.game.Step(frame)

	// Edge actions are consumed; directional hold windows persist
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given engine and blocks until
// the player quits.
func Run(game *stalker.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
