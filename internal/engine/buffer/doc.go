// Package buffer implements the in-memory text container at the bottom of
// the editor's stack: an ordered sequence of lines with insert, delete,
// clamp, and comparison primitives.
//
// # Representation
//
// A Buffer is a line array ([]string), not a rope or piece table. Every
// mutating method (Insert, DeleteRange, DeleteCharBefore, DeleteCharAt)
// returns a new *Buffer; the receiver is left untouched so history entries
// can hold old buffer values without defensive copying at the call site.
//
// # Invariants
//
//   - LineCount() is always >= 1 (an empty buffer is one empty line).
//   - No line contains '\n'; newlines exist only between lines.
//   - Clamp(p) always returns a Position inside the buffer, and
//     b.Clamp(b.Clamp(p)) == b.Clamp(p).
//
// # Basic usage
//
//	b := buffer.New()
//	b = b.Insert(buffer.Position{}, "hello\nworld")
//	b.LineCount() // 2
//	b.FullText()  // "hello\nworld"
package buffer
