package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/acreek/rill/internal/input"
)

// Powerline separators between status line segments.
const (
	sepRight = ''
	sepLeft  = ''
)

// Frame is one complete picture of the editor: the visible buffer
// lines in window order, the cursor cell, and the status line fields.
type Frame struct {
	Lines   []string
	CursorX int
	CursorY int
	Mode    input.Mode
	Path    string
	Dirty   bool
}

// Draw paints the frame and flushes it to the terminal. The cursor
// shape follows the mode, a block in Normal and a bar in Insert.
func (s *Screen) Draw(f Frame) {
	s.ts.Clear()

	width, height := s.ts.Size()
	for y, line := range f.Lines {
		s.drawLine(y, line, width)
	}
	s.drawStatusLine(f, width, height)

	s.ts.ShowCursor(f.CursorX, f.CursorY)
	s.ts.SetCursorStyle(cursorStyle(f.Mode))
	s.ts.Show()
}

// drawLine renders one buffer line. Wide runes take two cells; control
// runes, tabs included, render as a single blank cell.
func (s *Screen) drawLine(y int, line string, width int) {
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			r, w = ' ', 1
		}
		s.ts.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += w
	}
}

// drawStatusLine renders the bar on the second-to-last row: the mode
// and cursor position on the accent color at either end, the file path
// on the bar color between them, powerline separators joining the
// segments. A modified buffer gets a [+] marker after the path.
func (s *Screen) drawStatusLine(f Frame, width, height int) {
	if height < 2 {
		return
	}
	y := height - 2

	segment := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(s.theme.Accent).
		Bold(true)
	bar := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(s.theme.Bar)
	arrow := tcell.StyleDefault.
		Foreground(s.theme.Accent).
		Background(s.theme.Bar)

	mode := " " + f.Mode.String() + " "
	file := " [" + f.Path + "]"
	if f.Dirty {
		file += " [+]"
	}
	pos := fmt.Sprintf(" %d:%d ", f.CursorX, f.CursorY)

	fileWidth := width - runewidth.StringWidth(mode) - runewidth.StringWidth(pos) - 2
	if fileWidth < 0 {
		fileWidth = 0
	}
	file = runewidth.FillRight(runewidth.Truncate(file, fileWidth, ""), fileWidth)

	x := s.drawText(0, y, mode, segment)
	x = s.drawText(x, y, string(sepRight), arrow)
	x = s.drawText(x, y, file, bar)
	x = s.drawText(x, y, string(sepLeft), arrow)
	s.drawText(x, y, pos, segment)
}

// drawText writes a run of styled text and returns the column after it.
func (s *Screen) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.ts.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func cursorStyle(m input.Mode) tcell.CursorStyle {
	if m == input.ModeInsert {
		return tcell.CursorStyleSteadyBar
	}
	return tcell.CursorStyleSteadyBlock
}
