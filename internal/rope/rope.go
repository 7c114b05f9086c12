package rope

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors returned by rope operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrLineOutOfRange   = errors.New("line out of range")
)

// Rope is an immutable rope for efficient text storage.
// All offsets at the API are rune counts, not bytes. Operations return
// new Rope values; the original is never modified, so old values stay
// valid snapshots.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeaf("")}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}

	// Cut into leaves at rune boundaries, then build the tree bottom-up.
	var leaves []*node
	for len(s) > 0 {
		end := len(s)
		if end > maxLeafBytes {
			end = maxLeafBytes
			for end > 0 && !utf8.RuneStart(s[end]) {
				end--
			}
			if end == 0 {
				end = len(s)
			}
		}
		leaves = append(leaves, newLeaf(s[:end]))
		s = s[end:]
	}

	return Rope{root: buildFromNodes(leaves)}
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// RuneLen returns the total rune count.
func (r Rope) RuneLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Runes
}

// LineCount returns the number of lines (newlines + 1).
// The empty rope has one empty line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end).
// The range is clamped to the rope.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.RuneLen() {
		end = r.RuneLen()
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// Insert inserts text at the given rune offset.
// Returns a new rope; the original is unchanged.
func (r Rope) Insert(offset int, text string) (Rope, error) {
	if offset < 0 || offset > r.RuneLen() {
		return r, ErrOffsetOutOfRange
	}
	if len(text) == 0 {
		return r, nil
	}

	if r.root == nil || r.RuneLen() == 0 {
		return FromString(text), nil
	}
	if offset == 0 {
		return FromString(text).Concat(r), nil
	}
	if offset == r.RuneLen() {
		return r.Concat(FromString(text)), nil
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right), nil
}

// Delete removes text in the rune range [start, end).
// Returns a new rope; the original is unchanged.
func (r Rope) Delete(start, end int) (Rope, error) {
	if start < 0 || start > end || end > r.RuneLen() {
		return r, ErrOffsetOutOfRange
	}
	if start == end || r.root == nil {
		return r, nil
	}

	if start == 0 && end == r.RuneLen() {
		return New(), nil
	}
	if start == 0 {
		_, right := r.Split(end)
		return right, nil
	}
	if end == r.RuneLen() {
		left, _ := r.Split(start)
		return left, nil
	}

	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right), nil
}

// Split splits the rope at the given rune offset, clamped to the rope.
// The left rope holds [0, offset), the right holds [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.RuneLen() {
		return r, New()
	}

	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
// Returns a new rope; the originals are unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.RuneLen() == 0 {
		return other
	}
	if other.root == nil || other.RuneLen() == 0 {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// LineStart returns the rune offset of the start of the given line.
// Lines are 0-indexed.
func (r Rope) LineStart(line int) (int, error) {
	if line < 0 || line >= r.LineCount() {
		return 0, ErrLineOutOfRange
	}
	if r.root == nil || line == 0 {
		return 0, nil
	}
	return r.root.lineOffset(line), nil
}

// LineEnd returns the rune offset of the end of the given line,
// not including the newline character.
func (r Rope) LineEnd(line int) (int, error) {
	if line < 0 || line >= r.LineCount() {
		return 0, ErrLineOutOfRange
	}
	if r.root == nil {
		return 0, nil
	}

	if line == r.LineCount()-1 {
		return r.RuneLen(), nil
	}

	next, err := r.LineStart(line + 1)
	if err != nil {
		return 0, err
	}
	return next - 1, nil
}

// Line returns the text of the given line, not including the newline.
func (r Rope) Line(line int) (string, error) {
	start, err := r.LineStart(line)
	if err != nil {
		return "", err
	}
	end, err := r.LineEnd(line)
	if err != nil {
		return "", err
	}
	return r.Slice(start, end), nil
}

// Height returns the height of the rope tree.
// Useful for testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}
