package rope

import (
	"strings"
	"unicode/utf8"
)

// Summary holds aggregated metrics for a text span.
// Summaries combine associatively, so every node caches the summary of
// its subtree and tree operations recompute only the affected path.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Runes is the Unicode scalar value count.
	Runes int

	// Lines is the number of newline characters.
	Lines int
}

// add combines two summaries.
func (s Summary) add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Runes: s.Runes + other.Runes,
		Lines: s.Lines + other.Lines,
	}
}

// summarize calculates metrics for a string.
func summarize(s string) Summary {
	return Summary{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Lines: strings.Count(s, "\n"),
	}
}

// byteIndex returns the byte index of the nth rune in s.
// n must be in [0, rune count of s].
func byteIndex(s string, n int) int {
	i := 0
	for n > 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}
