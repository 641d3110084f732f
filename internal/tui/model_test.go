package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jomtui/jom/internal/catalog"
	"github.com/jomtui/jom/internal/errdefs"
	"github.com/jomtui/jom/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Distros: []catalog.Distro{
		{Name: "Arch Linux", Manager: catalog.PackageManagerPacman, Packages: []catalog.Package{
			{Name: "git", Install: []string{"pacman -S git"}, Uninstall: []string{"pacman -R git"}},
		}},
		{Name: "Fedora", Manager: catalog.PackageManagerDNF, Packages: []catalog.Package{
			{Name: "git", Install: []string{"dnf install git"}, Uninstall: []string{"dnf remove git"}},
			{Name: "neovim", Install: []string{"dnf install neovim"}, Uninstall: []string{"dnf remove neovim"}},
		}},
		{Name: "Void"},
	}}
}

func newTestModel(opts ...menu.Option) Model {
	return NewModel(menu.NewDispatcher(menu.NewApp(testCatalog()), opts...), "test")
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

var (
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	back  = tea.KeyMsg{Type: tea.KeyBackspace}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestInit(t *testing.T) {
	assert.Nil(t, newTestModel().Init())
}

func TestDistroScreenView(t *testing.T) {
	m := newTestModel().WithHost("Fedora Linux 41")
	view := m.View()

	assert.Contains(t, view, "System: Fedora Linux 41")
	assert.Contains(t, view, "What would you like to do?")
	assert.Contains(t, view, "> Arch Linux (pacman)")
	assert.Contains(t, view, "  Fedora (dnf)")
	assert.Contains(t, view, "  Void")
	assert.Contains(t, view, "To exit, type Q, ESC or Ctrl + C.")
}

func TestCursorMarkerFollowsKeys(t *testing.T) {
	m, cmd := send(t, newTestModel(), down)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "> Fedora (dnf)")
	assert.Contains(t, m.View(), "  Arch Linux (pacman)")
}

func TestActionScreenView(t *testing.T) {
	m, _ := send(t, newTestModel(), down, enter)
	view := m.View()

	assert.Contains(t, view, "Distribution: Fedora")
	assert.Contains(t, view, "> install")
	assert.Contains(t, view, "  uninstall")

	m, _ = send(t, m, down)
	assert.Contains(t, m.View(), "> uninstall")
}

func TestPackageScreenView(t *testing.T) {
	m, _ := send(t, newTestModel(), down, enter, down, enter)
	view := m.View()
	assert.Contains(t, view, "Packages to uninstall on Fedora")
	assert.Contains(t, view, "> [ ] git")
	assert.NotContains(t, view, "Plan (not executed):")

	m, _ = send(t, m, down, enter)
	view = m.View()
	assert.Contains(t, view, "  [ ] git")
	assert.Contains(t, view, "> [x] neovim")
	assert.Contains(t, view, "Plan (not executed):")
	assert.Contains(t, view, "$ dnf remove neovim")

	m, _ = send(t, m, enter)
	view = m.View()
	assert.Contains(t, view, "> [ ] neovim")
	assert.NotContains(t, view, "Plan (not executed):")
}

func TestEmptyPackageList(t *testing.T) {
	m, _ := send(t, newTestModel(), down, down, enter, enter)
	assert.Contains(t, m.View(), "This distribution lists no packages.")
}

func TestEmptyCatalogView(t *testing.T) {
	m := NewModel(menu.NewDispatcher(menu.NewApp(&catalog.Catalog{})), "test")
	assert.Contains(t, m.View(), "No distributions in the catalog.")

	m, _ = send(t, m, enter)
	assert.Equal(t, menu.ScreenDistros, m.Dispatcher().Screen())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{esc, runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := send(t, newTestModel(), msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, menu.ScreenNone, m.Dispatcher().Screen())
			assert.Empty(t, m.View())
			assert.NoError(t, m.Err())
		})
	}
}

func TestBackNavigation(t *testing.T) {
	m, _ := send(t, newTestModel(), down, enter, enter, back, back, up)
	assert.Equal(t, menu.ScreenDistros, m.Dispatcher().Screen())
	assert.Contains(t, m.View(), "> Arch Linux (pacman)")
}

func TestStrictDispatchErrorQuits(t *testing.T) {
	m, cmd := send(t, newTestModel(menu.WithStrict(true)), enter, down)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, errdefs.IsType(m.Err(), errdefs.ErrTypeUnhandledKey))
}

func TestWindowSize(t *testing.T) {
	m, cmd := send(t, newTestModel(), tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 80, m.help.Width)
}
