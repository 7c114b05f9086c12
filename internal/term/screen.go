package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/acreek/rill/internal/input"
)

// Theme is the status line palette, parsed into terminal colors.
type Theme struct {
	Accent tcell.Color
	Bar    tcell.Color
}

// ParseTheme builds a Theme from the color values found in the config
// file, either #RRGGBB or a W3C color name.
func ParseTheme(accent, bar string) (Theme, error) {
	a := tcell.GetColor(accent)
	if !a.Valid() {
		return Theme{}, fmt.Errorf("bad accent color %q", accent)
	}
	b := tcell.GetColor(bar)
	if !b.Valid() {
		return Theme{}, fmt.Errorf("bad bar color %q", bar)
	}
	return Theme{Accent: a, Bar: b}, nil
}

// Screen owns the terminal: raw mode, the alternate screen, drawing,
// and the event queue. It is not safe for concurrent use; the editor
// loop owns it.
type Screen struct {
	ts       tcell.Screen
	theme    Theme
	finished bool
}

// New allocates the terminal screen and switches it to raw mode on the
// alternate screen. Callers must arrange for Fini to run on every exit
// path.
func New(theme Theme) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocate screen: %w", err)
	}
	return newScreen(ts, theme)
}

// newScreen finishes setup on an allocated tcell screen. Tests inject
// a simulation screen here.
func newScreen(ts tcell.Screen, theme Theme) (*Screen, error) {
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	ts.SetStyle(tcell.StyleDefault)
	return &Screen{ts: ts, theme: theme}, nil
}

// Fini restores the terminal. Safe to call more than once.
func (s *Screen) Fini() {
	if s.finished {
		return
	}
	s.finished = true
	s.ts.Fini()
}

// Size reports the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.ts.Size()
}

// Sync forces a complete redraw of the terminal.
func (s *Screen) Sync() {
	s.ts.Sync()
}

// PollEvent blocks until an event the editor understands arrives.
// Mouse, paste, focus, and unmapped key events are swallowed here. The
// zero event (KeyNone) means the screen has been finalized and no more
// events will come.
func (s *Screen) PollEvent() input.Event {
	for {
		tev := s.ts.PollEvent()
		if tev == nil {
			return input.Event{}
		}
		if ev, ok := convertEvent(tev); ok {
			return ev
		}
	}
}
