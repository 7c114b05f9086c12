package editor

import (
	"github.com/acreek/rill/internal/buffer"
	"github.com/acreek/rill/internal/input"
)

// View holds the viewport origin in buffer space, the cursor position
// in viewport space, the active mode, and the desired-column memory.
// It never owns buffer content; it only indexes into it.
//
// Coordinates are signed ints with a non-negativity invariant. Action
// code may leave transient negatives or overshoots; Clamp saturates
// and re-bounds everything before the next draw.
type View struct {
	vtop  int
	vleft int
	cx    int
	cy    int

	width  int
	height int

	mode    input.Mode
	desired int
}

// NewView creates a view for a terminal of the given size, in Normal
// mode with the cursor at the top-left of the document.
func NewView(width, height int) *View {
	v := &View{}
	v.Resize(width, height)
	return v
}

// Resize records new terminal dimensions, clamped to at least 1x1.
func (v *View) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Mode returns the active editing mode.
func (v *View) Mode() input.Mode {
	return v.mode
}

// vheight is the number of rows available to buffer content: the
// terminal height minus the status line row and the row beneath it.
func (v *View) vheight() int {
	h := v.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// vwidth is the number of columns available to buffer content.
func (v *View) vwidth() int {
	return v.width
}

// bufferLine is the absolute buffer line the cursor addresses.
func (v *View) bufferLine() int {
	return v.vtop + v.cy
}

// Clamp restores the viewport and cursor invariants: the window never
// scrolls past the last line, the cursor stays inside the window, it
// never rests past the end of the line it addresses (the end-of-line
// slot cx == length is valid), and its row always addresses a real
// line. Runs once per loop iteration, after an action has been applied
// and before drawing.
//
// The pass is total and idempotent: it accepts any state the actions
// can produce and running it twice equals running it once.
func (v *View) Clamp(buf *buffer.Buffer) {
	if v.vtop < 0 {
		v.vtop = 0
	}
	if v.vleft < 0 {
		v.vleft = 0
	}
	if v.cx < 0 {
		v.cx = 0
	}
	if v.cy < 0 {
		v.cy = 0
	}

	lines := buf.LineCount()
	height := v.vheight()

	// Never scroll past the point where the last line sits on the
	// bottom row. Documents shorter than the window render short.
	if v.vtop+height > lines {
		v.vtop = lines - height
		if v.vtop < 0 {
			v.vtop = 0
		}
	}

	// Scroll one line at a time while content remains below the
	// window, rather than jumping; then pin the cursor to the last
	// row either way.
	if v.cy > height-1 {
		if v.vtop+height < lines {
			v.vtop++
		}
		v.cy = height - 1
	}

	// On column overshoot, past the window's right edge or past the
	// line's content, the cursor wraps to the start of the next row,
	// with the window scrolling along when it can.
	if v.cx > v.vwidth() || v.cx > lineLen(buf, v.bufferLine()) {
		if v.cy < height-1 {
			v.cy++
		}
		if v.vtop+height < lines {
			v.vtop++
		}
		v.cx = 0
		v.desired = 0
	}

	// The cursor row must address a real line, even when the document
	// is shorter than the window.
	if v.vtop+v.cy >= lines {
		v.cy = lines - 1 - v.vtop
	}
}

// lineLen is the length of buffer line i in runes, or 0 when the row
// is past the end of the document.
func lineLen(buf *buffer.Buffer, i int) int {
	n, err := buf.LineLen(i)
	if err != nil {
		return 0
	}
	return n
}
