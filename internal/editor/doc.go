// Package editor implements the interactive core: the view state that
// maps buffer space onto the terminal window, the dispatcher that
// applies resolved actions, and the blocking event loop that ties
// buffer, input, and screen together.
//
// # Coordinate spaces
//
// The buffer is addressed by absolute (line, column) pairs. The view
// projects a window onto it: vtop is the buffer line shown on the
// window's first row, and the cursor (cx, cy) lives in window space,
// so the cursor's buffer line is always vtop+cy. Columns are rune
// offsets; the slot just past the last rune of a line is a valid rest
// position for the cursor.
//
// # Loop discipline
//
// Run is strictly sequential: clamp, draw, block for one event,
// resolve, apply. Actions are free to leave the view out of bounds;
// the clamp pass at the top of the next iteration restores every
// invariant before anything is drawn. Nothing outside Run mutates
// editor state.
package editor
