package editor

import (
	"github.com/acreek/rill/internal/buffer"
	"github.com/acreek/rill/internal/input"
	"github.com/acreek/rill/internal/logger"
	"github.com/acreek/rill/internal/term"
)

// Screen is the terminal surface the editor draws to and reads events
// from. *term.Screen implements it; tests substitute a scripted fake.
type Screen interface {
	// Size reports the full terminal dimensions in cells.
	Size() (width, height int)
	// PollEvent blocks until the next event. A zero event (KeyNone)
	// means the input stream has ended.
	PollEvent() input.Event
	// Draw paints a complete frame.
	Draw(f term.Frame)
	// Sync forces a full repaint on the next draw.
	Sync()
}

// Editor ties a buffer, a view, and a screen into the interactive
// loop. It is single-threaded: all state changes happen inside Run.
type Editor struct {
	buf    *buffer.Buffer
	view   *View
	screen Screen
}

// New creates an editor over buf, sized to the screen.
func New(buf *buffer.Buffer, screen Screen) *Editor {
	w, h := screen.Size()
	return &Editor{
		buf:    buf,
		view:   NewView(w, h),
		screen: screen,
	}
}

// Run drives the editor until the user quits or the input stream
// ends. Each iteration clamps the view, draws a frame, blocks for an
// event, resolves it against the current mode, and applies the
// resulting action. Unmapped events are ignored.
func (e *Editor) Run() error {
	logger.Info("editor started",
		"path", e.buf.Path(),
		"lines", e.buf.LineCount(),
	)

	for {
		e.view.Clamp(e.buf)
		e.screen.Draw(e.frame())

		ev := e.screen.PollEvent()
		switch ev.Key {
		case input.KeyNone:
			return nil
		case input.KeyResize:
			e.view.Resize(ev.Width, ev.Height)
			continue
		}

		act, ok := input.Resolve(e.view.Mode(), ev)
		if !ok {
			continue
		}
		logger.Debug("action", "op", act.Op, "event", ev)

		if act.Op == input.Quit {
			logger.Info("editor quit")
			return nil
		}
		if err := e.apply(act); err != nil {
			logger.Error("action failed", "op", act.Op, "error", err)
			return err
		}
	}
}

// frame packages the state the screen needs for one draw: the visible
// buffer lines, the cursor cell, and the status line fields.
func (e *Editor) frame() term.Frame {
	height := e.view.vheight()
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		text, ok := e.buf.Line(e.view.vtop + i)
		if !ok {
			break
		}
		lines = append(lines, text)
	}
	return term.Frame{
		Lines:   lines,
		CursorX: e.view.cx,
		CursorY: e.view.cy,
		Mode:    e.view.mode,
		Path:    e.buf.Path(),
		Dirty:   e.buf.Dirty(),
	}
}
