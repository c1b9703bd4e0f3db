package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalev/minetui/internal/core"
	"github.com/akovalev/minetui/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        core.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	board       BoardParams
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// BoardParams are forwarded to the results store when a game finishes.
// The model does not inspect the board itself; the session owns it.
type BoardParams struct {
	Width  int
	Height int
	Mines  int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, board BoardParams) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// tickCmd divides by the tick rate, so a zero or negative --fps would
	// panic the program. Fall back to the default rate instead.
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		board:      board,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The board keeps its state; only the screen buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.resultSaved = false
	}

	// Run the game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the game continues regardless
			m.store.SaveResult(storage.Result{
				Width:    m.board.Width,
				Height:   m.board.Height,
				Mines:    m.board.Mines,
				Won:      m.gameState.Won,
				Duration: m.gameState.Elapsed,
			})
		}
		m.resultSaved = true
	}

	// Clear input for the next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render the game to the screen buffer
	m.game.Render(m.screen)

	// Convert the screen to a styled string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, board BoardParams) error {
	model := NewModel(game, store, cfg, board)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
