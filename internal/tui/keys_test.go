package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jomtui/jom/internal/menu"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want menu.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, menu.KeyUp},
		{"vim up", runeKey('k'), menu.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, menu.KeyDown},
		{"vim down", runeKey('j'), menu.KeyDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, menu.KeyEnter},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, menu.KeyBackspace},
		{"q", runeKey('q'), menu.KeyQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, menu.KeyEsc},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, menu.KeyCtrlC},
		{"unbound rune", runeKey('x'), menu.KeyUnknown},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, menu.KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultKeyMap.Translate(tt.msg))
		})
	}
}

func TestHelpBindings(t *testing.T) {
	assert.Len(t, DefaultKeyMap.ShortHelp(), 5)
	assert.Len(t, DefaultKeyMap.FullHelp(), 3)
}

func TestHelpMatchesBoundKeys(t *testing.T) {
	seen := make(map[string]string)
	for _, group := range DefaultKeyMap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			for _, name := range strings.Split(h.Key, "/") {
				prev, dup := seen[name]
				assert.False(t, dup, "%q is listed by both %q and %q", name, prev, h.Key)
				seen[name] = h.Key
			}
		}
	}
	assert.Equal(t, []string{"q"}, DefaultKeyMap.Quit.Keys())
	assert.Equal(t, "q", DefaultKeyMap.Quit.Help().Key)
}
