package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-run/internal/core"
	"github.com/vovakirdan/jungle-run/internal/registry"
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// Options configure the host.
type Options struct {
	core.RuntimeConfig // TickRate drives frames; non-positive means the default

	Width  int         // Initial terminal width
	Height int         // Initial terminal height
	Logger *log.Logger // Nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	hud    *HUD
	canvas *core.Canvas
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	opts   Options

	width    int
	height   int
	state    core.GameState
	dragging bool
	dragRow  int
	quitting bool
}

// NewModel creates a host for game. The HUD should already be wired to
// the game as its score observer.
func NewModel(game registry.Game, hud *HUD, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if hud.title == "" {
		hud.title = game.Title()
	}

	field := game.Playfield()
	m := Model{
		game:   game,
		hud:    hud,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		opts:   opts,
		state:  game.State(),
	}
	m.canvas = core.NewCanvas(core.NewScreen(0, 0), field.W, field.H)
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.RuntimeConfig)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height,
			"cols", m.screen().Width(), "rows", m.screen().Height())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.game.HandleInput(core.Press(action))
		m.syncState()
	}
	return m, nil
}

// handleMouse turns a left-button drag into vertical movement. A drag
// only starts on the playfield, not on the HUD or help rows.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row := msg.Y - hudRows

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.screen().Bounds().Contains(msg.X, row) {
			m.dragging = true
			m.dragRow = row
		}
	case tea.MouseActionMotion:
		if !m.dragging || row == m.dragRow {
			return m, nil
		}
		dy := m.canvas.CellsToWorldY(float64(row - m.dragRow))
		m.dragRow = row
		m.game.HandleInput(core.Drag(dy))
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// handleTick runs one game frame into the canvas.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Frame(m.canvas)
	m.syncState()
	return m, tickCmd(m.opts.RuntimeConfig)
}

// syncState refreshes the cached game state and the bindings that
// depend on it.
func (m *Model) syncState() {
	m.state = m.game.State()
	m.keys.Restart.SetEnabled(m.state.GameOver)
}

// resize fits the cell buffer between the HUD and the help footer.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	rows := core.Clamp(height-hudRows-lipgloss.Height(m.help.View(m.keys)), 0, height)
	m.screen().Resize(width, rows)
}

// screen returns the cell buffer the canvas draws into.
func (m *Model) screen() *core.Screen {
	return m.canvas.Screen()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.hud.View() + "\n" + RenderScreen(m.screen()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, hud *HUD, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, hud, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
