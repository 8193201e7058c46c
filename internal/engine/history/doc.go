// Package history implements branching undo/redo over whole-buffer
// snapshots rather than individual edit commands.
//
// # Model
//
// An Entry is a (buffer, cursor) pair captured just before a mutation.
// Push appends to the undo stack and clears the redo stack, so any new
// edit after an undo discards the abandoned redo branch. Undo and Redo
// are symmetric: each pops one stack, pushes the caller's current state
// onto the other, and returns the popped entry for the caller to restore.
//
// # Bound
//
// The undo stack is capped (default 1000 entries); once full, the oldest
// entry is dropped on the next Push. The redo stack is never trimmed
// independently — it can hold at most as many entries as prior undos.
//
// # Policy
//
// Pushing is the executor's responsibility: it pushes before any mutation
// that will produce a new buffer, never as part of Undo/Redo themselves.
//
// Basic usage:
//
//	h := history.New(1000)
//	h.Push(buf, cur)
//	buf = buf.Insert(pos, "x")
//	entry, err := h.Undo(buf, cur)
//	buf, cur = entry.Buffer, entry.Cursor
package history
