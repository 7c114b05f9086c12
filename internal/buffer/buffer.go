package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/acreek/rill/internal/rope"
)

// Errors returned by buffer operations.
var (
	ErrOutOfRange      = errors.New("position out of range")
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// Buffer owns the editable text of one file. Content is line-indexed:
// positions are (line, column) pairs where the column counts runes from
// the line start and may equal the line length (the slot of the newline,
// or the end of the document on the last line).
//
// A Buffer is not safe for concurrent use. The editor core is
// single-threaded and owns the buffer exclusively.
type Buffer struct {
	content rope.Rope
	path    string
	dirty   bool
}

// Load reads the file at path into a new buffer.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return New(f, path)
}

// New reads all of r into a new buffer. The path is recorded for
// display only; no file access happens through it.
func New(r io.Reader, path string) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	return &Buffer{content: rope.FromString(string(data)), path: path}, nil
}

// FromString creates a buffer with initial content.
func FromString(s, path string) *Buffer {
	return &Buffer{content: rope.FromString(s), path: path}
}

// Path returns the originating file path.
func (b *Buffer) Path() string {
	return b.path
}

// Dirty reports whether the buffer has been modified since load.
// Nothing in the core resets it.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Text returns the full buffer content.
// Prefer Line for rendering; this copies the whole document.
func (b *Buffer) Text() string {
	return b.content.String()
}

// LineCount returns the number of lines. A trailing newline opens a
// final empty line, and the empty buffer has one empty line.
func (b *Buffer) LineCount() int {
	return b.content.LineCount()
}

// Line returns the text of line i without its trailing newline, and
// false when i is past the last line. A missing line is not an error:
// viewport rows past the end of the document simply have no content.
func (b *Buffer) Line(i int) (string, bool) {
	text, err := b.content.Line(i)
	if err != nil {
		return "", false
	}
	return text, true
}

// LineLen returns the rune count of line i, excluding the newline.
func (b *Buffer) LineLen(i int) (int, error) {
	start, err := b.content.LineStart(i)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", i, ErrOutOfRange)
	}
	end, err := b.content.LineEnd(i)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", i, ErrOutOfRange)
	}
	return end - start, nil
}

// InsertRune inserts one character at the given position.
func (b *Buffer) InsertRune(line, col int, r rune) error {
	return b.InsertText(line, col, string(r))
}

// InsertText inserts text at the given position. Line breaks in the
// text split the line. Empty text is a no-op and does not mark the
// buffer dirty.
func (b *Buffer) InsertText(line, col int, text string) error {
	if text == "" {
		return nil
	}

	offset, err := b.offsetAt(line, col)
	if err != nil {
		return err
	}

	content, err := b.content.Insert(offset, text)
	if err != nil {
		return err
	}
	b.content = content
	b.dirty = true
	return nil
}

// RemoveRune removes the character at the given position. When col is
// the length of a non-final line the removed character is the newline,
// joining the line with the next. Past the end of the document there is
// no character to remove and the call fails with ErrOutOfRange.
func (b *Buffer) RemoveRune(line, col int) error {
	offset, err := b.offsetAt(line, col)
	if err != nil {
		return err
	}
	if offset >= b.content.RuneLen() {
		return fmt.Errorf("line %d col %d: %w", line, col, ErrOutOfRange)
	}

	content, err := b.content.Delete(offset, offset+1)
	if err != nil {
		return err
	}
	b.content = content
	b.dirty = true
	return nil
}

// offsetAt converts a (line, col) position to an absolute rune offset,
// validating both coordinates. col may equal the line length.
func (b *Buffer) offsetAt(line, col int) (int, error) {
	if col < 0 {
		return 0, fmt.Errorf("line %d col %d: %w", line, col, ErrOutOfRange)
	}

	start, err := b.content.LineStart(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", line, ErrOutOfRange)
	}
	end, err := b.content.LineEnd(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", line, ErrOutOfRange)
	}
	if start+col > end {
		return 0, fmt.Errorf("line %d col %d: %w", line, col, ErrOutOfRange)
	}
	return start + col, nil
}
