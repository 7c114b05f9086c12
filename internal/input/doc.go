// Package input defines the editor's input vocabulary: key events,
// editing modes, the closed set of actions, and the resolver that maps
// (mode, event) pairs to actions.
//
// The resolver is a pure function with no state of its own. Mode lives
// on the editor's view; the resolver is handed the current mode each
// time. Unbound events resolve to nothing and are dropped by the loop.
//
// Bindings follow the editor's keymap: in Normal mode letters act as
// commands (q quits, i enters Insert, k/l/j/; move, x deletes, $ and 0
// jump within the line, Ctrl-F/Ctrl-B page); in Insert mode printable
// characters insert themselves and Escape returns to Normal. Named
// keys (arrows, paging, Home/End, Enter, Backspace, Delete) keep their
// usual meanings in both modes where bound.
package input
