package input

import "fmt"

// Op enumerates every command the editor can execute. The set is
// closed: the dispatcher handles each member exhaustively.
type Op uint8

// Operations.
const (
	Nop Op = iota
	Quit
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	EnterMode
	InsertChar
	NewLine
	PageUp
	PageDown
	EndOfLine
	StartOfLine
	DeleteCharBefore
	DeleteCharAtCursor
)

var opNames = map[Op]string{
	Nop:                "Nop",
	Quit:               "Quit",
	MoveUp:             "MoveUp",
	MoveDown:           "MoveDown",
	MoveLeft:           "MoveLeft",
	MoveRight:          "MoveRight",
	EnterMode:          "EnterMode",
	InsertChar:         "InsertChar",
	NewLine:            "NewLine",
	PageUp:             "PageUp",
	PageDown:           "PageDown",
	EndOfLine:          "EndOfLine",
	StartOfLine:        "StartOfLine",
	DeleteCharBefore:   "DeleteCharBefore",
	DeleteCharAtCursor: "DeleteCharAtCursor",
}

// String returns the operation name.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Action is one resolved command: the operation plus its payload.
// Mode is set for EnterMode, Rune for InsertChar; both are zero
// otherwise. Actions live for a single loop iteration.
type Action struct {
	Op   Op
	Mode Mode
	Rune rune
}
