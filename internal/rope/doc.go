// Package rope provides an immutable rope data structure for text storage.
//
// A rope is a balanced tree where leaf nodes hold text fragments and
// internal nodes store aggregated metrics (byte count, rune count,
// newline count). Aggregation makes line-to-offset lookup logarithmic
// instead of requiring a scan of the preceding text.
//
// All offsets at the API are rune counts. Operations are immutable:
// Insert, Delete, Split and Concat return new ropes built by sharing
// the unchanged subtrees of the original, so an old value remains a
// valid snapshot of the text at the time it was taken.
//
// Basic usage:
//
//	r := rope.FromString("hello\nworld")
//	r, _ = r.Insert(5, ",")   // "hello,\nworld"
//	line, _ := r.Line(1)      // "world"
//
// Mutating operations validate their offsets and return
// ErrOffsetOutOfRange or ErrLineOutOfRange rather than panicking.
package rope
