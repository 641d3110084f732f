package menu

import (
	"fmt"

	"github.com/jomtui/jom/internal/errdefs"
)

// Screen is one UI mode of the menu. The ordinals are stable.
type Screen uint8

const (
	// ScreenNone ends the program loop.
	ScreenNone Screen = iota
	// ScreenDistros lists the catalog distributions.
	ScreenDistros
	// ScreenActions offers install or uninstall for the chosen distro.
	ScreenActions
	// ScreenPackages lists the packages of the chosen distro.
	ScreenPackages
)

func (s Screen) Ordinal() uint8 {
	return uint8(s)
}

// ScreenFromOrdinal converts back from Ordinal. Ordinals above 3 are an
// invariant violation and are reported as ErrTypeInvalidScreen.
func ScreenFromOrdinal(o uint8) (Screen, error) {
	switch o {
	case 0:
		return ScreenNone, nil
	case 1:
		return ScreenDistros, nil
	case 2:
		return ScreenActions, nil
	case 3:
		return ScreenPackages, nil
	default:
		return ScreenNone, errdefs.NewCustomError(errdefs.ErrTypeInvalidScreen, fmt.Sprintf("invalid screen %d", o))
	}
}

func (s Screen) String() string {
	switch s {
	case ScreenNone:
		return "none"
	case ScreenDistros:
		return "distributions"
	case ScreenActions:
		return "actions"
	case ScreenPackages:
		return "packages"
	default:
		return fmt.Sprintf("screen(%d)", uint8(s))
	}
}
