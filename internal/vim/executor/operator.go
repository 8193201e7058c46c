package executor

import (
	"strings"

	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/register"
)

// applyOperator applies op (one of d, c, y, >, <, or the g-prefixed
// case-changing operators u, U, ~) to rng, pushing history before any
// mutation. rng is assumed non-empty; callers must have already treated an
// empty range as a no-op per the EmptyRange policy.
func applyOperator(s *State, op rune, regName rune, rng buffer.Range, linewise bool) Result {
	switch op {
	case 'd':
		return applyDeleteOrChange(s, regName, rng, linewise, false)
	case 'c':
		return applyDeleteOrChange(s, regName, rng, linewise, true)
	case 'y':
		return applyYank(s, regName, rng, linewise)
	case '>':
		return applyIndent(s, rng, true)
	case '<':
		return applyIndent(s, rng, false)
	case 'u', 'U', '~':
		return applyCaseOperator(s, op, rng)
	}
	return Result{}
}

// applyCaseOperator lowercases (u), uppercases (U), or toggles the case
// (~) of every character rng spans, landing the cursor at rng.Start.
func applyCaseOperator(s *State, op rune, rng buffer.Range) Result {
	s.pushHistory()
	text := textInRange(s.Buf, rng)
	var changed string
	switch op {
	case 'u':
		changed = strings.ToLower(text)
	case 'U':
		changed = strings.ToUpper(text)
	default:
		changed = toggleCase(text)
	}
	s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
	s.Buf = s.Buf.Insert(rng.Start, changed)
	s.Cur = cursor.New(rng.Start)
	s.clampCursor()
	return Result{Modified: true, BufferChanged: true}
}

func applyDeleteOrChange(s *State, regName rune, rng buffer.Range, linewise, isChange bool) Result {
	text := textInRange(s.Buf, rng)
	s.pushHistory()
	s.Registers.Set(regName, register.Content{Text: text, Linewise: linewise})

	if linewise {
		s.Buf = deleteLinewise(s.Buf, rng.Start.Line, rng.End.Line, isChange)
		landLine := rng.Start.Line
		if last := s.Buf.LineCount() - 1; landLine > last {
			landLine = last
		}
		if isChange {
			s.Cur = cursor.New(buffer.Position{Line: landLine, Column: 0})
			s.Mode = cursor.ModeInsert
		} else {
			s.Cur = cursor.New(motion.FirstNonBlank(s.Buf, buffer.Position{Line: landLine}))
		}
		return Result{Modified: true, BufferChanged: true, ModeChanged: isChange}
	}

	s.Buf = s.Buf.DeleteRange(rng.Start, rng.End)
	s.Cur = cursor.New(rng.Start)
	if isChange {
		s.Mode = cursor.ModeInsert
	} else {
		s.clampCursor()
	}
	return Result{Modified: true, BufferChanged: true, ModeChanged: isChange}
}

func applyYank(s *State, regName rune, rng buffer.Range, linewise bool) Result {
	text := textInRange(s.Buf, rng)
	s.Registers.Set(regName, register.Content{Text: text, Linewise: linewise})
	return Result{}
}

func applyIndent(s *State, rng buffer.Range, increase bool) Result {
	s.pushHistory()
	s.Buf = indentLines(s.Buf, rng.Start.Line, rng.End.Line, s.IndentUnit, increase)
	s.Cur = cursor.New(motion.FirstNonBlank(s.Buf, buffer.Position{Line: rng.Start.Line}))
	return Result{Modified: true, BufferChanged: true}
}

// textInRange returns the text spanned by rng, joining crossed lines with
// \n. rng.End is exclusive, matching DeleteRange's convention.
func textInRange(buf *buffer.Buffer, rng buffer.Range) string {
	if rng.Start.Line == rng.End.Line {
		return buf.Line(rng.Start.Line)[rng.Start.Column:rng.End.Column]
	}
	var b strings.Builder
	b.WriteString(buf.Line(rng.Start.Line)[rng.Start.Column:])
	for l := rng.Start.Line + 1; l < rng.End.Line; l++ {
		b.WriteByte('\n')
		b.WriteString(buf.Line(l))
	}
	b.WriteByte('\n')
	b.WriteString(buf.Line(rng.End.Line)[:rng.End.Column])
	return b.String()
}

// deleteLinewise removes the lines [startLine, endLine] from buf. When
// keepEmptyLine is true (the change-operator form) a single empty line
// survives at startLine; otherwise the lines vanish entirely, consuming
// whichever adjacent newline is available.
func deleteLinewise(buf *buffer.Buffer, startLine, endLine int, keepEmptyLine bool) *buffer.Buffer {
	if keepEmptyLine {
		return buf.DeleteRange(
			buffer.Position{Line: startLine, Column: 0},
			buffer.Position{Line: endLine, Column: buf.LineLength(endLine)},
		)
	}
	if endLine+1 < buf.LineCount() {
		return buf.DeleteRange(
			buffer.Position{Line: startLine, Column: 0},
			buffer.Position{Line: endLine + 1, Column: 0},
		)
	}
	if startLine > 0 {
		return buf.DeleteRange(
			buffer.Position{Line: startLine - 1, Column: buf.LineLength(startLine - 1)},
			buffer.Position{Line: endLine, Column: buf.LineLength(endLine)},
		)
	}
	return buf.DeleteRange(
		buffer.Position{Line: startLine, Column: 0},
		buffer.Position{Line: endLine, Column: buf.LineLength(endLine)},
	)
}

// indentLines adds or removes one indentUnit of leading whitespace on each
// line in [startLine, endLine], skipping fully-empty lines. Outdent removes
// only the leading space characters actually present, up to len(unit).
func indentLines(buf *buffer.Buffer, startLine, endLine int, unit string, increase bool) *buffer.Buffer {
	out := buf
	for line := startLine; line <= endLine; line++ {
		text := out.Line(line)
		if text == "" {
			continue
		}
		if increase {
			out = out.Insert(buffer.Position{Line: line, Column: 0}, unit)
			continue
		}
		n := 0
		for n < len(unit) && n < len(text) && text[n] == ' ' {
			n++
		}
		if n > 0 {
			out = out.DeleteRange(buffer.Position{Line: line, Column: 0}, buffer.Position{Line: line, Column: n})
		}
	}
	return out
}
