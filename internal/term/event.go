package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/acreek/rill/internal/input"
)

// convertEvent maps a tcell event into the editor's input vocabulary.
// The boolean is false for event types the editor has no use for.
func convertEvent(ev tcell.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return input.Event{Key: input.KeyResize, Width: w, Height: h}, true
	default:
		return input.Event{}, false
	}
}

// convertKey maps one key event. Named keys map first: tcell aliases
// Tab to Ctrl-I, Enter to Ctrl-M, and Backspace to Ctrl-H, and the
// named reading wins. The remaining control chords are normalized to
// their letter rune with ModCtrl set, so the resolver sees a single
// shape for every Ctrl binding.
func convertKey(e *tcell.EventKey) (input.Event, bool) {
	mod := convertMod(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		return input.Event{Key: input.KeyRune, Rune: e.Rune(), Mod: mod}, true
	case tcell.KeyUp:
		return input.Event{Key: input.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return input.Event{Key: input.KeyDown, Mod: mod}, true
	case tcell.KeyLeft:
		return input.Event{Key: input.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return input.Event{Key: input.KeyRight, Mod: mod}, true
	case tcell.KeyEnter:
		return input.Event{Key: input.KeyEnter, Mod: mod}, true
	case tcell.KeyEscape:
		return input.Event{Key: input.KeyEscape, Mod: mod}, true
	case tcell.KeyTab:
		return input.Event{Key: input.KeyTab, Mod: mod}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Event{Key: input.KeyBackspace, Mod: mod}, true
	case tcell.KeyDelete:
		return input.Event{Key: input.KeyDelete, Mod: mod}, true
	case tcell.KeyHome:
		return input.Event{Key: input.KeyHome, Mod: mod}, true
	case tcell.KeyEnd:
		return input.Event{Key: input.KeyEnd, Mod: mod}, true
	case tcell.KeyPgUp:
		return input.Event{Key: input.KeyPageUp, Mod: mod}, true
	case tcell.KeyPgDn:
		return input.Event{Key: input.KeyPageDown, Mod: mod}, true
	}

	if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return input.Event{
			Key:  input.KeyRune,
			Rune: 'a' + rune(k-tcell.KeyCtrlA),
			Mod:  mod | input.ModCtrl,
		}, true
	}

	return input.Event{}, false
}

// convertMod maps the tcell modifier mask.
func convertMod(m tcell.ModMask) input.Mod {
	var mod input.Mod
	if m&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= input.ModMeta
	}
	return mod
}
