package menu

// Key is a keyboard event as seen by the dispatcher. The view layer decides
// which physical keys map to which Key.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
	KeyCtrlC
	// KeyQuit is the 'q' character.
	KeyQuit
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyQuit:
		return "q"
	case KeyBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

func (k Key) isExit() bool {
	return k == KeyEsc || k == KeyCtrlC || k == KeyQuit
}
