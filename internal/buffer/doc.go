// Package buffer provides the line-indexed text buffer the editor
// operates on.
//
// A Buffer wraps an immutable rope with the editing vocabulary the
// dispatcher speaks: look up a line, measure its length, insert or
// remove characters at a (line, column) position. Columns count runes
// from the line start; the line length excludes the trailing newline,
// so column == LineLen(i) is a valid position (the newline's slot, or
// the end of the document on the last line).
//
// Buffers are created once at startup from a file or reader, with the
// content validated as UTF-8, and are mutated in place afterwards. Any
// mutation that changes content sets the dirty flag; nothing resets it.
//
// Out-of-range positions are reported as ErrOutOfRange rather than
// panicking. Callers that hold a valid cursor never trigger them.
package buffer
