package cursor

import (
	"fmt"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Mode is the editor's editing mode. Visual selection is orthogonal to mode:
// a selection can be active while Mode is still ModeNormal or ModeInsert.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	default:
		return "normal"
	}
}

// noDesiredColumn marks a Cursor whose desired column hint is unset.
const noDesiredColumn = -1

// Cursor is a Position plus a "desired column" hint used by vertical
// motions (j/k). When a vertical motion lands on a shorter line, the
// originating column is remembered so subsequent vertical motions can
// restore it once a long-enough line is reached again. Any non-vertical
// motion clears the hint. Cursor is an immutable value type: every method
// returns a new Cursor.
type Cursor struct {
	Pos           Position
	desiredColumn int
}

// New returns a cursor at the given position with no desired column set.
func New(pos Position) Cursor {
	return Cursor{Pos: pos, desiredColumn: noDesiredColumn}
}

// MoveTo returns a new cursor at pos, clearing the desired column hint.
// Use this for any motion other than a vertical (j/k) one.
func (c Cursor) MoveTo(pos Position) Cursor {
	return Cursor{Pos: pos, desiredColumn: noDesiredColumn}
}

// MoveVertical returns a new cursor on pos's line at the desired column
// hint (pos.Column is not used; callers clamp the result to the line),
// preserving or establishing that hint. If c has no hint yet, its current column becomes the
// hint before moving; if it already has one, the hint is carried forward
// unchanged so a run of j/k keeps remembering the original column.
func (c Cursor) MoveVertical(pos Position) Cursor {
	hint := c.desiredColumn
	if hint == noDesiredColumn {
		hint = c.Pos.Column
	}
	return Cursor{Pos: Position{Line: pos.Line, Column: hint}, desiredColumn: hint}
}

// DesiredColumn returns the cursor's desired column hint, or its current
// column if no hint has been established.
func (c Cursor) DesiredColumn() int {
	if c.desiredColumn == noDesiredColumn {
		return c.Pos.Column
	}
	return c.desiredColumn
}

// ClampForMode clamps the cursor's position against buf, honoring the
// mode-specific column ceiling: normal mode forbids landing one-past-end
// on a non-empty line (column is clamped to max(0, lineLength-1)); insert
// mode allows column == lineLength. The desired-column hint is preserved.
func (c Cursor) ClampForMode(buf *buffer.Buffer, mode Mode) Cursor {
	pos := buf.Clamp(c.Pos)
	if mode == ModeNormal {
		if max := buf.LineLength(pos.Line) - 1; max < 0 {
			pos.Column = 0
		} else if pos.Column > max {
			pos.Column = max
		}
	}
	return Cursor{Pos: pos, desiredColumn: c.desiredColumn}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%s)", c.Pos)
}

// Equals returns true if two cursors are at the same position. The desired
// column hint is not part of equality: it is a rendering/navigation aid,
// not observable editor state.
func (c Cursor) Equals(other Cursor) bool {
	return c.Pos == other.Pos
}
