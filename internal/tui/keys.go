package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jomtui/jom/internal/menu"
)

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	Quit      key.Binding
	Esc       key.Binding
	ForceQuit key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Back, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Select, km.Back}, {km.Quit, km.Esc, km.ForceQuit}}
}

var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Translate maps a terminal key press onto the dispatcher's key set.
func (km KeyMap) Translate(msg tea.KeyMsg) menu.Key {
	switch {
	case key.Matches(msg, km.Up):
		return menu.KeyUp
	case key.Matches(msg, km.Down):
		return menu.KeyDown
	case key.Matches(msg, km.Select):
		return menu.KeyEnter
	case key.Matches(msg, km.Back):
		return menu.KeyBackspace
	case key.Matches(msg, km.Quit):
		return menu.KeyQuit
	case key.Matches(msg, km.Esc):
		return menu.KeyEsc
	case key.Matches(msg, km.ForceQuit):
		return menu.KeyCtrlC
	default:
		return menu.KeyUnknown
	}
}
