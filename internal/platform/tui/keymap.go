package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trainboard/internal/input"
)

// KeyMap binds terminal keys to the board's buttons.
type KeyMap struct {
	Track [input.NumTrackButtons]key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Menu  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Track[0], k.Up, k.Down, k.Left, k.Right, k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Track[:4],
		k.Track[4:],
		{k.Up, k.Down, k.Left, k.Right},
		{k.Menu, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings: 1-8 for the track buttons,
// arrows or wasd for the direction pad.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	for i := range km.Track {
		k := string(rune('1' + i))
		desc := "switch " + k
		if i == 0 {
			// Only the first one shows in the short help.
			desc = "switches"
			km.Track[i] = key.NewBinding(key.WithKeys(k), key.WithHelp("1-8", desc))
			continue
		}
		km.Track[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}
	return km
}

// Button returns the board button bound to msg.
func (k KeyMap) Button(msg tea.KeyMsg) (input.Button, bool) {
	for i, b := range k.Track {
		if key.Matches(msg, b) {
			return input.Track(i), true
		}
	}
	switch {
	case key.Matches(msg, k.Up):
		return input.Up, true
	case key.Matches(msg, k.Down):
		return input.Down, true
	case key.Matches(msg, k.Left):
		return input.Left, true
	case key.Matches(msg, k.Right):
		return input.Right, true
	}
	return 0, false
}
