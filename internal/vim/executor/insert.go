package executor

import (
	"github.com/kiahjh/raven/internal/engine/buffer"
)

// InsertRune types a single character at the cursor while in insert mode.
// The grammar the parser/Apply implement only covers normal mode, so insert
// mode's literal keystrokes go directly through this and the two functions
// below instead of through Apply.
func InsertRune(s *State, r rune) Result {
	text := string(r)
	s.Buf = s.Buf.Insert(s.Cur.Pos, text)
	s.Cur = s.Cur.MoveTo(buffer.Position{Line: s.Cur.Pos.Line, Column: s.Cur.Pos.Column + len(text)})
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

// InsertNewline splits the current line at the cursor, computing the new
// line's indent from the line being split.
func InsertNewline(s *State) Result {
	line := s.Buf.Line(s.Cur.Pos.Line)
	indent := buffer.ComputeSmartIndent(line, s.Cur.Pos.Column, s.IndentUnit)
	s.Buf = s.Buf.Insert(s.Cur.Pos, "\n"+indent)
	s.Cur = s.Cur.MoveTo(buffer.Position{Line: s.Cur.Pos.Line + 1, Column: len(indent)})
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

// Backspace deletes the character before the cursor, joining with the
// previous line when the cursor sits at column 0. A no-op at buffer origin.
func Backspace(s *State) Result {
	newBuf, newPos := s.Buf.DeleteCharBefore(s.Cur.Pos)
	if newBuf == s.Buf {
		return Result{}
	}
	s.Buf = newBuf
	s.Cur = s.Cur.MoveTo(newPos)
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}
