package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trainboard/internal/console"
	"github.com/vovakirdan/trainboard/internal/core"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/modes"
)

// Model is the Bubble Tea model that hosts a console. Each TickMsg runs
// one iteration of the console's main loop; key presses go through the
// simulated button panel so they are debounced like the real matrix.
type Model struct {
	console  *console.Console
	board    *Board
	panel    *input.Panel
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	quitting bool
}

// NewModel wires a console to the board and panel it was built with.
func NewModel(c *console.Console, board *Board, panel *input.Panel, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		console:  c,
		board:    board,
		panel:    panel,
		screen:   core.NewScreen(ScreenW, ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.console.Tick()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		if err := m.console.SelectMode(modes.MenuIndex); err != nil {
			m.logger.Warn("cannot return to menu", "error", err)
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.panel.Press(b)
	}
	return m, nil
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	faultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the board, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	if f := m.console.Fault(); f != nil {
		return faultStyle.Render(fmt.Sprintf("fault %d: %s", f.Code, f.Msg))
	}
	return statusStyle.Render(fmt.Sprintf("mode %s  tick %d", m.console.ModeLabel(), m.console.Ticks()))
}

// Run boots the console and runs the simulator until the user quits.
func Run(ctx context.Context, c *console.Console, board *Board, panel *input.Panel, cfg core.RuntimeConfig, logger *log.Logger) error {
	if err := c.Boot(ctx); err != nil {
		return err
	}

	model := NewModel(c, board, panel, cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
