package editor

import (
	"github.com/acreek/rill/internal/input"
)

// apply executes one resolved action against the buffer and view.
// Actions may leave the view out of bounds; the clamp pass at the top
// of the next loop iteration restores the invariants. Buffer mutations
// are bounds-checked by their own guards here, so an error from the
// buffer indicates a broken invariant rather than routine input.
func (e *Editor) apply(a input.Action) error {
	v := e.view

	switch a.Op {
	case input.MoveUp:
		if v.cy > 0 {
			v.cy--
		} else if v.vtop > 0 {
			v.vtop--
		}
		e.restoreColumn()

	case input.MoveDown:
		v.cy++
		e.restoreColumn()

	case input.MoveLeft:
		if v.cx <= v.vleft {
			if v.cy == 0 && v.vtop > 0 {
				v.vtop--
				v.cx = lineLen(e.buf, v.bufferLine())
			} else if v.cy > 0 {
				v.cy--
				v.cx = lineLen(e.buf, v.bufferLine())
			}
		} else {
			v.cx--
		}
		v.desired = v.cx

	case input.MoveRight:
		v.cx++
		v.desired = v.cx

	case input.PageUp:
		if v.vtop >= v.vheight() {
			v.vtop -= v.vheight()
		} else {
			v.vtop = 0
			v.cy = 0
		}
		e.restoreColumn()

	case input.PageDown:
		v.vtop += v.vheight()
		if v.vtop+v.vheight() > e.buf.LineCount() {
			v.cy = v.vheight() - 1
		}
		e.restoreColumn()

	case input.StartOfLine:
		v.cx = v.vleft
		v.desired = v.cx

	case input.EndOfLine:
		v.cx = lineLen(e.buf, v.bufferLine())
		v.desired = v.cx

	case input.EnterMode:
		v.mode = a.Mode
		e.screen.Sync()

	case input.InsertChar:
		if err := e.buf.InsertRune(v.bufferLine(), v.cx, a.Rune); err != nil {
			return err
		}
		v.cx++
		v.desired = v.cx

	case input.NewLine:
		if err := e.buf.InsertText(v.bufferLine(), v.cx, "\n"); err != nil {
			return err
		}
		v.cx = 0
		v.cy++

	case input.DeleteCharBefore:
		if v.cx > v.vleft {
			if err := e.buf.RemoveRune(v.bufferLine(), v.cx-1); err != nil {
				return err
			}
			v.cx--
			v.desired = v.cx
		}

	case input.DeleteCharAtCursor:
		if ll := lineLen(e.buf, v.bufferLine()); v.cx < ll && ll > 0 {
			if err := e.buf.RemoveRune(v.bufferLine(), v.cx); err != nil {
				return err
			}
		}
		if v.vtop+v.vheight() > e.buf.LineCount() {
			v.cy++
		}
	}

	return nil
}

// restoreColumn re-applies the remembered column on the line the
// cursor now addresses, clamped to that line's length. Vertical moves
// call it so the cursor snaps back out to the desired column whenever
// a long enough line comes around.
func (e *Editor) restoreColumn() {
	v := e.view
	if ll := lineLen(e.buf, v.bufferLine()); v.desired > ll {
		v.cx = ll
	} else {
		v.cx = v.desired
	}
}
