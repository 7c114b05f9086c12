// Package term is the tcell-backed terminal layer. It owns raw mode
// and the alternate screen, converts tcell events into the editor's
// input vocabulary, and renders complete frames: buffer lines, the
// powerline status bar, and a mode-shaped cursor.
//
// The key conversion normalizes tcell's control-key aliasing. Tab,
// Enter, Escape, and Backspace keep their named identities; every
// other Ctrl chord becomes its plain letter rune with the Ctrl
// modifier set, which is the shape the resolver matches on.
package term
