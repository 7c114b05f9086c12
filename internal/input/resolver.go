package input

// Resolve maps an input event to the action it triggers in the given
// mode. The boolean is false when the event is not bound. Resolve is a
// pure function: it inspects nothing but its arguments and mutates
// nothing.
//
// Resize events are not resolved here; the editor loop consumes them
// before mode dispatch.
func Resolve(mode Mode, ev Event) (Action, bool) {
	switch mode {
	case ModeNormal:
		return resolveNormal(ev)
	case ModeInsert:
		return resolveInsert(ev)
	default:
		return Action{}, false
	}
}

func resolveNormal(ev Event) (Action, bool) {
	switch ev.Key {
	case KeyUp:
		return Action{Op: MoveUp}, true
	case KeyDown:
		return Action{Op: MoveDown}, true
	case KeyLeft:
		return Action{Op: MoveLeft}, true
	case KeyRight:
		return Action{Op: MoveRight}, true
	case KeyPageUp:
		return Action{Op: PageUp}, true
	case KeyPageDown:
		return Action{Op: PageDown}, true
	case KeyHome:
		return Action{Op: StartOfLine}, true
	case KeyEnd:
		return Action{Op: EndOfLine}, true
	case KeyRune:
		if ev.Mod&ModCtrl != 0 {
			switch ev.Rune {
			case 'f':
				return Action{Op: PageDown}, true
			case 'b':
				return Action{Op: PageUp}, true
			}
			return Action{}, false
		}
		switch ev.Rune {
		case 'q':
			return Action{Op: Quit}, true
		case 'k':
			return Action{Op: MoveUp}, true
		case 'l':
			return Action{Op: MoveDown}, true
		case 'j':
			return Action{Op: MoveLeft}, true
		case ';':
			return Action{Op: MoveRight}, true
		case 'i':
			return Action{Op: EnterMode, Mode: ModeInsert}, true
		case '$':
			return Action{Op: EndOfLine}, true
		case '0':
			return Action{Op: StartOfLine}, true
		case 'x':
			return Action{Op: DeleteCharAtCursor}, true
		}
	}
	return Action{}, false
}

func resolveInsert(ev Event) (Action, bool) {
	switch ev.Key {
	case KeyEscape:
		return Action{Op: EnterMode, Mode: ModeNormal}, true
	case KeyUp:
		return Action{Op: MoveUp}, true
	case KeyDown:
		return Action{Op: MoveDown}, true
	case KeyLeft:
		return Action{Op: MoveLeft}, true
	case KeyRight:
		return Action{Op: MoveRight}, true
	case KeyEnter:
		return Action{Op: NewLine}, true
	case KeyBackspace:
		return Action{Op: DeleteCharBefore}, true
	case KeyDelete:
		return Action{Op: DeleteCharAtCursor}, true
	case KeyPageUp:
		return Action{Op: PageUp}, true
	case KeyPageDown:
		return Action{Op: PageDown}, true
	case KeyHome:
		return Action{Op: StartOfLine}, true
	case KeyEnd:
		return Action{Op: EndOfLine}, true
	case KeyRune:
		if ev.IsChar() {
			return Action{Op: InsertChar, Rune: ev.Rune}, true
		}
	}
	return Action{}, false
}
