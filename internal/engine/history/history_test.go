package history

import (
	"testing"

	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
)

func TestPushThenUndoReturnsPushedEntry(t *testing.T) {
	h := New(10)
	buf := buffer.FromString("hello")
	cur := cursor.New(buffer.Position{Line: 0, Column: 0})
	h.Push(buf, cur)

	editedBuf := buf.Insert(buffer.Position{Line: 0, Column: 5}, "!")
	editedCur := cursor.New(buffer.Position{Line: 0, Column: 6})

	entry, err := h.Undo(editedBuf, editedCur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Buffer.FullText() != "hello" {
		t.Errorf("got %q", entry.Buffer.FullText())
	}
}

func TestUndoOnEmptyStackFails(t *testing.T) {
	h := New(10)
	_, err := h.Undo(buffer.New(), cursor.New(buffer.Position{}))
	if err != ErrNothingToUndo {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestRedoOnEmptyStackFails(t *testing.T) {
	h := New(10)
	_, err := h.Redo(buffer.New(), cursor.New(buffer.Position{}))
	if err != ErrNothingToRedo {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestUndoThenRedoRestoresEditedState(t *testing.T) {
	h := New(10)
	original := buffer.FromString("hello")
	originalCur := cursor.New(buffer.Position{Line: 0, Column: 0})
	h.Push(original, originalCur)

	edited := original.Insert(buffer.Position{Line: 0, Column: 5}, "!")
	editedCur := cursor.New(buffer.Position{Line: 0, Column: 6})

	undone, err := h.Undo(edited, editedCur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if undone.Buffer.FullText() != "hello" {
		t.Fatalf("got %q", undone.Buffer.FullText())
	}

	redone, err := h.Redo(undone.Buffer, undone.Cursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redone.Buffer.FullText() != "hello!" {
		t.Errorf("got %q", redone.Buffer.FullText())
	}
}

func TestPushClearsRedoStack(t *testing.T) {
	h := New(10)
	buf := buffer.FromString("a")
	cur := cursor.New(buffer.Position{})
	h.Push(buf, cur)
	edited := buf.Insert(buffer.Position{Line: 0, Column: 1}, "b")
	h.Undo(edited, cur)
	if !h.CanRedo() {
		t.Fatalf("expected redo available after undo")
	}
	h.Push(edited, cur)
	if h.CanRedo() {
		t.Errorf("expected redo stack cleared after new push")
	}
}

func TestPushTrimsOldestUndoEntryAtBound(t *testing.T) {
	h := New(2)
	cur := cursor.New(buffer.Position{})
	h.Push(buffer.FromString("1"), cur)
	h.Push(buffer.FromString("2"), cur)
	h.Push(buffer.FromString("3"), cur)
	if h.UndoCount() != 2 {
		t.Fatalf("expected undo stack capped at 2, got %d", h.UndoCount())
	}
	entry, err := h.Undo(buffer.FromString("4"), cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Buffer.FullText() != "3" {
		t.Errorf("expected oldest entry '1' to have been dropped, got %q", entry.Buffer.FullText())
	}
}

func TestRedoStackIsNotIndependentlyTrimmed(t *testing.T) {
	h := New(2)
	cur := cursor.New(buffer.Position{})
	buf := buffer.FromString("a")
	h.Push(buf, cur)
	h.Push(buf, cur)
	h.Undo(buf, cur)
	h.Undo(buf, cur)
	if h.RedoCount() != 2 {
		t.Errorf("expected 2 redo entries, got %d", h.RedoCount())
	}
}

func TestClearDiscardsBothStacks(t *testing.T) {
	h := New(10)
	buf := buffer.FromString("a")
	cur := cursor.New(buffer.Position{})
	h.Push(buf, cur)
	h.Undo(buf, cur)
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Errorf("expected both stacks empty after Clear")
	}
}

func TestCanUndoCanRedoReflectStackState(t *testing.T) {
	h := New(10)
	if h.CanUndo() || h.CanRedo() {
		t.Errorf("expected empty history to report no undo/redo")
	}
	buf := buffer.FromString("a")
	cur := cursor.New(buffer.Position{})
	h.Push(buf, cur)
	if !h.CanUndo() {
		t.Errorf("expected CanUndo true after push")
	}
}
