package menu

import (
	"fmt"

	"github.com/jomtui/jom/internal/catalog"
	"github.com/jomtui/jom/internal/errdefs"
	"github.com/jomtui/jom/internal/log"
)

type effect int

const (
	effectNone effect = iota
	effectChooseAction
	effectMarkPackage
)

// transition is the outcome of one (screen, key) lookup. offset moves the
// cursor of the screen the key was pressed on.
type transition struct {
	next   uint8
	offset int
	effect effect
}

// Dispatcher drives the screen state machine. Every screen keeps its own
// cursor; the distro cursor is mirrored into App after each event.
type Dispatcher struct {
	app     *App
	screen  Screen
	cursors map[Screen]int
	strict  bool
}

type Option func(*Dispatcher)

// WithStrict makes Backspace, Up and Down on the action screen fail with
// ErrTypeUnhandledKey instead of navigating.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// WithCursor starts screen s with the given cursor, clamped to its list.
func WithCursor(s Screen, pos int) Option {
	return func(d *Dispatcher) {
		d.cursors[s] = pos
	}
}

func NewDispatcher(app *App, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		app:     app,
		screen:  ScreenDistros,
		cursors: make(map[Screen]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.cursors[ScreenDistros] = ClampAdd(d.listLen(ScreenDistros), d.cursors[ScreenDistros], 0)
	app.SetDistro(d.cursors[ScreenDistros])
	for s, pos := range d.cursors {
		d.cursors[s] = ClampAdd(d.listLen(s), pos, 0)
	}
	return d
}

func (d *Dispatcher) App() *App {
	return d.app
}

func (d *Dispatcher) Screen() Screen {
	return d.screen
}

// Cursor is the highlighted row on the active screen.
func (d *Dispatcher) Cursor() int {
	return d.cursors[d.screen]
}

func (d *Dispatcher) CursorOf(s Screen) int {
	return d.cursors[s]
}

// Dispatch applies one key event. Errors are invariant violations or, in
// strict mode, unsupported keys; state is left untouched when one is returned.
func (d *Dispatcher) Dispatch(k Key) error {
	t, err := d.route(k)
	if err != nil {
		return err
	}

	next, err := ScreenFromOrdinal(t.next)
	if err != nil {
		return err
	}

	cur := d.screen
	d.cursors[cur] = ClampAdd(d.listLen(cur), d.cursors[cur], t.offset)

	switch t.effect {
	case effectChooseAction:
		d.app.SetAction(catalog.Actions[d.cursors[ScreenActions]])
		d.app.ClearPackages()
		d.cursors[ScreenPackages] = 0
	case effectMarkPackage:
		d.markHighlighted()
	}

	if next == ScreenNone {
		d.app.Stop()
	}
	if next != cur {
		log.Debug("screen transition", "from", cur, "to", next, "key", k)
	}

	d.screen = next
	d.app.SetDistro(d.cursors[ScreenDistros])
	return nil
}

func (d *Dispatcher) route(k Key) (transition, error) {
	stay := transition{next: d.screen.Ordinal()}
	exit := transition{next: ScreenNone.Ordinal()}

	switch d.screen {
	case ScreenDistros:
		switch {
		case k == KeyUp:
			return transition{next: ScreenDistros.Ordinal(), offset: -1}, nil
		case k == KeyDown:
			return transition{next: ScreenDistros.Ordinal(), offset: 1}, nil
		case k == KeyEnter:
			if d.app.Catalog().Len() == 0 {
				return stay, nil
			}
			return transition{next: ScreenActions.Ordinal()}, nil
		case k.isExit():
			return exit, nil
		}

	case ScreenActions:
		switch {
		case k.isExit():
			return exit, nil
		case k == KeyBackspace || k == KeyUp || k == KeyDown:
			if d.strict {
				return transition{}, errdefs.NewCustomError(errdefs.ErrTypeUnhandledKey,
					fmt.Sprintf("key %s is not supported on the %s screen", k, d.screen))
			}
			switch k {
			case KeyUp:
				return transition{next: ScreenActions.Ordinal(), offset: -1}, nil
			case KeyDown:
				return transition{next: ScreenActions.Ordinal(), offset: 1}, nil
			default:
				return transition{next: ScreenDistros.Ordinal()}, nil
			}
		case k == KeyEnter:
			return transition{next: ScreenPackages.Ordinal(), effect: effectChooseAction}, nil
		}

	case ScreenPackages:
		switch {
		case k == KeyEnter:
			return transition{next: ScreenPackages.Ordinal(), effect: effectMarkPackage}, nil
		case k == KeyUp:
			return transition{next: ScreenPackages.Ordinal(), offset: -1}, nil
		case k == KeyDown:
			return transition{next: ScreenPackages.Ordinal(), offset: 1}, nil
		case k == KeyBackspace:
			return transition{next: ScreenActions.Ordinal()}, nil
		case k.isExit():
			return exit, nil
		}
	}

	return stay, nil
}

// markHighlighted toggles the mark on the highlighted package.
func (d *Dispatcher) markHighlighted() {
	distro, err := d.app.Catalog().Distro(d.app.SelectedDistro())
	if err != nil {
		return
	}
	pos := d.cursors[ScreenPackages]
	if pos >= len(distro.Packages) {
		return
	}
	d.app.TogglePackage(distro.Packages[pos].Name)
}

// listLen is the number of rows the screen displays.
func (d *Dispatcher) listLen(s Screen) int {
	switch s {
	case ScreenDistros:
		return d.app.Catalog().Len()
	case ScreenActions:
		return len(catalog.Actions)
	case ScreenPackages:
		distro, err := d.app.Catalog().Distro(d.app.SelectedDistro())
		if err != nil {
			return 0
		}
		return len(distro.Packages)
	default:
		return 0
	}
}
