package executor

import (
	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/vim/parser"
	"github.com/kiahjh/raven/internal/vim/textobj"
)

// resolveOperatorRange implements the three range-resolution rules from a
// non-visual operator command: linewise double-operator (dd/cc/yy/>>/<<),
// operator-on-text-object, and operator-on-motion. ok is false when the
// command resolves to no range at all (failed motion, no containing text
// object), in which case the caller must treat the whole command as a
// no-op.
func resolveOperatorRange(s *State, cmd *parser.Command) (rng buffer.Range, linewise bool, ok bool) {
	switch {
	case cmd.Linewise:
		return linewiseDoubleRange(s, cmd.Count), true, true

	case cmd.HasTextObject:
		obj, found := textobj.Range(s.Buf, s.Cur.Pos, cmd.TextObject, cmd.TextObjectAround)
		if !found {
			return buffer.Range{}, false, false
		}
		end := obj.End
		line := s.Buf.Line(end.Line)
		if end.Column < len(line) {
			end.Column = buffer.NextGraphemeStart(line, end.Column)
		} else {
			end.Column++
		}
		return buffer.Range{Start: obj.Start, End: end}, false, true

	case cmd.HasMotion:
		target, found := resolveMotion(s, cmd, s.Cur.Pos)
		if !found {
			return buffer.Range{}, false, false
		}
		if cmd.Motion.Linewise {
			return lineSpanRange(s.Buf, s.Cur.Pos.Line, target.Line), true, true
		}
		r := buffer.NewRange(s.Cur.Pos, target)
		if cmd.Motion.Inclusive {
			r = extendInclusive(s.Buf, r)
		}
		return r, false, true
	}
	return buffer.Range{}, false, false
}

// linewiseDoubleRange returns [(L,0), (L+count-1, lineLength)], clamped to
// the buffer's last line, for the dd/cc/yy/>>/<< form.
func linewiseDoubleRange(s *State, count int) buffer.Range {
	start := s.Cur.Pos.Line
	end := start + count - 1
	if last := s.Buf.LineCount() - 1; end > last {
		end = last
	}
	return buffer.Range{
		Start: buffer.Position{Line: start, Column: 0},
		End:   buffer.Position{Line: end, Column: s.Buf.LineLength(end)},
	}
}

// lineSpanRange returns the full-line range covering both a and b
// (inclusive), for a linewise motion such as dj or d}.
func lineSpanRange(buf *buffer.Buffer, a, b int) buffer.Range {
	start, end := a, b
	if start > end {
		start, end = end, start
	}
	return buffer.Range{
		Start: buffer.Position{Line: start, Column: 0},
		End:   buffer.Position{Line: end, Column: buf.LineLength(end)},
	}
}

// extendInclusive extends r.End by one grapheme cluster on its line, so an
// inclusive motion's target character is itself part of the range. A range
// already at its line's end is left unchanged; DeleteRange's own clamping
// handles that boundary.
func extendInclusive(buf *buffer.Buffer, r buffer.Range) buffer.Range {
	if r.Start == r.End {
		return r
	}
	line := buf.Line(r.End.Line)
	if r.End.Column < len(line) {
		r.End.Column = buffer.NextGraphemeStart(line, r.End.Column)
	}
	return r
}
