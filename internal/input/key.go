package input

import (
	"fmt"
	"unicode"
)

// Key identifies a named key. Printable characters arrive as KeyRune
// with the character in Event.Rune.
type Key uint16

// Named keys.
const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyResize
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyResize:    "Resize",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Mod is a bitmask of modifier keys held during an event.
type Mod uint8

// Modifier flags.
const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// Event is one input occurrence: a key press or a terminal resize.
// For KeyRune events the character is in Rune; for KeyResize the new
// dimensions are in Width and Height.
type Event struct {
	Key    Key
	Rune   rune
	Mod    Mod
	Width  int
	Height int
}

// IsChar reports whether the event is a bare printable character,
// suitable for literal insertion.
func (e Event) IsChar() bool {
	return e.Key == KeyRune &&
		e.Mod&(ModCtrl|ModAlt|ModMeta) == 0 &&
		unicode.IsPrint(e.Rune)
}

// String formats the event for logs and test failures.
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		if e.Mod&ModCtrl != 0 {
			return fmt.Sprintf("Ctrl+%c", e.Rune)
		}
		return fmt.Sprintf("%q", e.Rune)
	case KeyResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Key.String()
	}
}
