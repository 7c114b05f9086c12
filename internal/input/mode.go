package input

// Mode is the input-interpretation state. Normal interprets keys as
// navigation and commands; Insert interprets printable keys as literal
// character entry.
type Mode uint8

// Editing modes.
const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the display label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
