package history

import (
	"errors"

	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// defaultMaxEntries is the bound on undo stack depth when none is given.
const defaultMaxEntries = 1000

// Entry is a single history snapshot: the buffer and cursor as they stood
// before the edit that pushed this entry.
type Entry struct {
	Buffer *buffer.Buffer
	Cursor cursor.Cursor
}

// History is a pair of bounded undo/redo stacks of Entry snapshots. It is
// not safe for concurrent use; the core is single-threaded by design, so
// no locking is needed.
type History struct {
	undo []Entry
	redo []Entry
	max  int
}

// New creates a history with the given undo-stack bound. maxEntries <= 0
// uses the default bound of 1000.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &History{max: maxEntries}
}

// Push records buf/cur as an undo entry and clears the redo stack. The
// executor calls this before any mutation that will produce a new buffer,
// never after. If the undo stack exceeds the bound, the oldest entry is
// dropped; redo entries are never trimmed independently, since they are
// finite by construction (at most as many as prior undos).
func (h *History) Push(buf *buffer.Buffer, cur cursor.Cursor) {
	h.undo = append(h.undo, Entry{Buffer: buf, Cursor: cur})
	h.redo = nil
	if len(h.undo) > h.max {
		excess := len(h.undo) - h.max
		h.undo = h.undo[excess:]
	}
}

// Undo pops the newest undo entry, pushes (currentBuf, currentCur) onto the
// redo stack, and returns the popped entry for the caller to restore into
// editor state. Returns ErrNothingToUndo if the undo stack is empty.
func (h *History) Undo(currentBuf *buffer.Buffer, currentCur cursor.Cursor) (Entry, error) {
	if len(h.undo) == 0 {
		return Entry{}, ErrNothingToUndo
	}
	entry := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, Entry{Buffer: currentBuf, Cursor: currentCur})
	return entry, nil
}

// Redo pops the newest redo entry, pushes (currentBuf, currentCur) onto the
// undo stack, and returns the popped entry. Returns ErrNothingToRedo if the
// redo stack is empty.
func (h *History) Redo(currentBuf *buffer.Buffer, currentCur cursor.Cursor) (Entry, error) {
	if len(h.redo) == 0 {
		return Entry{}, ErrNothingToRedo
	}
	entry := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, Entry{Buffer: currentBuf, Cursor: currentCur})
	return entry, nil
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int { return len(h.undo) }

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int { return len(h.redo) }

// Clear discards all undo/redo entries. Called when the editor is loaded
// with new content, per the core's "load clears history" contract.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// MaxEntries returns the configured undo-stack bound.
func (h *History) MaxEntries() int { return h.max }
