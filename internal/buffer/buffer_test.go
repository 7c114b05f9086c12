package buffer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewFromReader(t *testing.T) {
	b, err := New(strings.NewReader("hello\nworld"), "greeting.txt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := b.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if got, ok := b.Line(0); !ok || got != "hello" {
		t.Errorf("Line(0) = %q, %v, want %q, true", got, ok, "hello")
	}
	if got, ok := b.Line(1); !ok || got != "world" {
		t.Errorf("Line(1) = %q, %v, want %q, true", got, ok, "world")
	}
	if b.Dirty() {
		t.Error("fresh buffer is dirty")
	}
	if got := b.Path(); got != "greeting.txt" {
		t.Errorf("Path() = %q, want %q", got, "greeting.txt")
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New(bytes.NewReader([]byte{'h', 'i', 0xff, 0xfe}), "bad.txt")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("New() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestLinePastEnd(t *testing.T) {
	b := FromString("one\ntwo", "t.txt")

	if _, ok := b.Line(2); ok {
		t.Error("Line(2) ok = true, want false")
	}
	if _, ok := b.Line(-1); ok {
		t.Error("Line(-1) ok = true, want false")
	}
}

func TestLineLen(t *testing.T) {
	b := FromString("héllo\nab\n", "t.txt")

	tests := []struct {
		line int
		want int
	}{
		{0, 5},
		{1, 2},
		{2, 0},
	}
	for _, tt := range tests {
		got, err := b.LineLen(tt.line)
		if err != nil {
			t.Fatalf("LineLen(%d) error = %v", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("LineLen(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}

	if _, err := b.LineLen(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("LineLen(3) error = %v, want ErrOutOfRange", err)
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	b := FromString("hello", "t.txt")

	if err := b.InsertRune(0, 2, 'X'); err != nil {
		t.Fatalf("InsertRune() error = %v", err)
	}
	if got, _ := b.Line(0); got != "heXllo" {
		t.Fatalf("Line(0) = %q, want %q", got, "heXllo")
	}
	if err := b.RemoveRune(0, 2); err != nil {
		t.Fatalf("RemoveRune() error = %v", err)
	}
	if got, _ := b.Line(0); got != "hello" {
		t.Errorf("Line(0) = %q, want %q", got, "hello")
	}
	if !b.Dirty() {
		t.Error("dirty flag cleared by the round trip")
	}
}

func TestInsertRuneAtLineEnd(t *testing.T) {
	b := FromString("abc", "t.txt")

	if err := b.InsertRune(0, 3, '!'); err != nil {
		t.Fatalf("InsertRune() error = %v", err)
	}
	if got, _ := b.Line(0); got != "abc!" {
		t.Errorf("Line(0) = %q, want %q", got, "abc!")
	}
}

func TestInsertTextSplitsLine(t *testing.T) {
	b := FromString("abcdef", "t.txt")

	if err := b.InsertText(0, 2, "\n"); err != nil {
		t.Fatalf("InsertText() error = %v", err)
	}
	if got := b.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	first, _ := b.Line(0)
	second, _ := b.Line(1)
	if first != "ab" || second != "cdef" {
		t.Errorf("lines = %q, %q, want %q, %q", first, second, "ab", "cdef")
	}
	if first+"\n"+second != "abcdef"[:2]+"\n"+"abcdef"[2:] {
		t.Errorf("split does not rejoin to the original line")
	}
}

func TestInsertTextMultiline(t *testing.T) {
	b := FromString("top\nbottom", "t.txt")

	if err := b.InsertText(1, 0, "mid1\nmid2\n"); err != nil {
		t.Fatalf("InsertText() error = %v", err)
	}
	if got := b.Text(); got != "top\nmid1\nmid2\nbottom" {
		t.Errorf("Text() = %q", got)
	}
}

func TestInsertTextEmptyIsNoOp(t *testing.T) {
	b := FromString("abc", "t.txt")

	if err := b.InsertText(0, 1, ""); err != nil {
		t.Fatalf("InsertText() error = %v", err)
	}
	if b.Dirty() {
		t.Error("empty insert marked the buffer dirty")
	}
	if got, _ := b.Line(0); got != "abc" {
		t.Errorf("Line(0) = %q, want %q", got, "abc")
	}
}

func TestRemoveRuneJoinsLines(t *testing.T) {
	b := FromString("ab\ncd", "t.txt")

	if err := b.RemoveRune(0, 2); err != nil {
		t.Fatalf("RemoveRune() error = %v", err)
	}
	if got := b.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
	if got, _ := b.Line(0); got != "abcd" {
		t.Errorf("Line(0) = %q, want %q", got, "abcd")
	}
}

func TestRemoveRuneOutOfRange(t *testing.T) {
	b := FromString("abc", "t.txt")

	if err := b.RemoveRune(0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveRune(0, 3) error = %v, want ErrOutOfRange", err)
	}
	if err := b.RemoveRune(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveRune(0, 4) error = %v, want ErrOutOfRange", err)
	}
	if err := b.RemoveRune(1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveRune(1, 0) error = %v, want ErrOutOfRange", err)
	}
	if b.Dirty() {
		t.Error("failed removes marked the buffer dirty")
	}
}

func TestInsertTextOutOfRange(t *testing.T) {
	b := FromString("abc", "t.txt")

	if err := b.InsertText(0, 4, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("InsertText(0, 4) error = %v, want ErrOutOfRange", err)
	}
	if err := b.InsertText(2, 0, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("InsertText(2, 0) error = %v, want ErrOutOfRange", err)
	}
	if err := b.InsertText(0, -1, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("InsertText(0, -1) error = %v, want ErrOutOfRange", err)
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := FromString("", "empty.txt")

	if got := b.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
	if got, ok := b.Line(0); !ok || got != "" {
		t.Errorf("Line(0) = %q, %v, want empty, true", got, ok)
	}
	n, err := b.LineLen(0)
	if err != nil || n != 0 {
		t.Errorf("LineLen(0) = %d, %v, want 0, nil", n, err)
	}

	if err := b.InsertRune(0, 0, 'a'); err != nil {
		t.Fatalf("InsertRune() error = %v", err)
	}
	if got, _ := b.Line(0); got != "a" {
		t.Errorf("Line(0) = %q, want %q", got, "a")
	}
}
