package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jomtui/jom/internal/log"
	"github.com/jomtui/jom/internal/menu"
)

// Model adapts a menu.Dispatcher to Bubble Tea. The dispatcher is held by
// pointer and only touched from Update.
type Model struct {
	dispatcher *menu.Dispatcher
	keys       KeyMap
	help       help.Model
	styles     Styles
	version    string
	host       string
	width      int
	err        error
}

func NewModel(d *menu.Dispatcher, version string) Model {
	return Model{
		dispatcher: d,
		keys:       DefaultKeyMap,
		help:       help.New(),
		styles:     NewStyles(PurpleTheme()),
		version:    version,
	}
}

// WithHost sets the detected host description shown above the distro list.
func (m Model) WithHost(prettyName string) Model {
	m.host = prettyName
	return m
}

func (m Model) Dispatcher() *menu.Dispatcher {
	return m.dispatcher
}

// Err is the dispatch error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		k := m.keys.Translate(msg)
		if err := m.dispatcher.Dispatch(k); err != nil {
			log.Error("dispatch failed", "screen", m.dispatcher.Screen(), "key", msg.String(), "err", err)
			m.err = err
			return m, tea.Quit
		}
		if m.dispatcher.Screen() == menu.ScreenNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.dispatcher.Screen() {
	case menu.ScreenDistros:
		return m.viewDistros()
	case menu.ScreenActions:
		return m.viewActions()
	case menu.ScreenPackages:
		return m.viewPackages()
	default:
		return ""
	}
}

// Run drives the program until the menu reaches ScreenNone and returns the
// final model.
func Run(m Model, altScreen bool) (Model, error) {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, fm.err
	}
	return m, nil
}
