// Package cursor models the editor's single cursor, its editing mode, and
// an optional visual-mode selection.
//
// # Cursor
//
// A Cursor pairs a buffer.Position with a "desired column" hint used by
// the vertical motions j/k: landing on a shorter line remembers the
// originating column so a later j/k back onto a long-enough line restores
// it. MoveVertical maintains the hint; MoveTo (every other motion) clears
// it. Cursor is an immutable value type.
//
// # Mode
//
// Mode is one of ModeNormal or ModeInsert. Visual selection is orthogonal
// to mode: a *Visual can be active while Mode is still ModeNormal.
//
// # Visual selection
//
// Visual holds an anchor position and a kind (char or line). The live
// cursor position supplies the other endpoint; call Range with the
// buffer's line-length lookup to get the normalised span.
//
// Basic usage:
//
//	c := cursor.New(buffer.Position{})
//	c = c.MoveTo(buffer.Position{Line: 0, Column: 3})
//	c = c.ClampForMode(buf, cursor.ModeNormal)
package cursor
