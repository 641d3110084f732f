package menu

import (
	"slices"

	"github.com/jomtui/jom/internal/catalog"
	"golang.org/x/exp/maps"
)

// App is the selection state for one run. It owns a read-only catalog.
type App struct {
	catalog          *catalog.Catalog
	selectedDistro   int
	action           catalog.Action
	selectedPackages map[string]struct{}
	running          bool
}

func NewApp(c *catalog.Catalog) *App {
	if c == nil {
		c = &catalog.Catalog{}
	}
	return &App{
		catalog:          c,
		selectedPackages: make(map[string]struct{}),
		running:          true,
	}
}

func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// SetDistro overwrites the selected distro index. Callers pass an index that
// ClampAdd already bounded. Marks belong to one distro and are dropped when
// the index changes.
func (a *App) SetDistro(index int) {
	if index != a.selectedDistro {
		a.ClearPackages()
	}
	a.selectedDistro = index
}

func (a *App) SelectedDistro() int {
	return a.selectedDistro
}

// SetPackage marks a package name. Marking twice is a no-op.
func (a *App) SetPackage(name string) {
	a.selectedPackages[name] = struct{}{}
}

func (a *App) UnsetPackage(name string) {
	delete(a.selectedPackages, name)
}

// TogglePackage flips the mark on name and reports whether it is now marked.
func (a *App) TogglePackage(name string) bool {
	if a.HasPackage(name) {
		a.UnsetPackage(name)
		return false
	}
	a.SetPackage(name)
	return true
}

func (a *App) ClearPackages() {
	clear(a.selectedPackages)
}

func (a *App) HasPackage(name string) bool {
	_, ok := a.selectedPackages[name]
	return ok
}

// SelectedPackages returns the marked names sorted.
func (a *App) SelectedPackages() []string {
	names := maps.Keys(a.selectedPackages)
	slices.Sort(names)
	return names
}

func (a *App) SetAction(action catalog.Action) {
	a.action = action
}

func (a *App) Action() catalog.Action {
	return a.action
}

func (a *App) DistroName(index int) (string, error) {
	return a.catalog.DistroName(index)
}

func (a *App) Running() bool {
	return a.running
}

func (a *App) Stop() {
	a.running = false
}

// Plan lists, in catalog order, the commands the chosen action would run for
// every marked package of the selected distro. Nothing is executed.
func (a *App) Plan() []string {
	distro, err := a.catalog.Distro(a.selectedDistro)
	if err != nil {
		return nil
	}

	var cmds []string
	for _, pkg := range distro.Packages {
		if a.HasPackage(pkg.Name) {
			cmds = append(cmds, pkg.Commands(a.action)...)
		}
	}
	return cmds
}
