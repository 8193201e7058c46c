package motion

import (
	"unicode/utf8"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

// FindState remembers the last f/F/t/T invocation so ; and , can repeat it.
type FindState struct {
	Char      rune
	Forward   bool
	Inclusive bool
}

// Find performs f/F/t/T: locate the count'th occurrence of ch on the
// current line in the given direction, landing on the char itself
// (inclusive) or one short of it (till). Returns ok=false if no such
// occurrence exists, in which case the cursor does not move.
func Find(buf *buffer.Buffer, pos buffer.Position, ch rune, count int, forward, inclusive bool) (buffer.Position, bool) {
	line := buf.Line(pos.Line)
	col := pos.Column
	found := -1
	search := col

	for i := 0; i < count; i++ {
		var next int
		var ok bool
		if forward {
			next, ok = findForward(line, search, ch)
		} else {
			next, ok = findBackward(line, search, ch)
		}
		if !ok {
			return pos, false
		}
		found = next
		// findForward/findBackward each advance one grapheme past `search`
		// before comparing, so passing `next` itself makes the next repeat
		// resume strictly beyond this match.
		search = next
	}

	landCol := found
	if !inclusive {
		if forward {
			landCol = buffer.PrevGraphemeStart(line, found)
		} else {
			landCol = buffer.NextGraphemeStart(line, found)
		}
	}
	return buffer.Position{Line: pos.Line, Column: landCol}, true
}

func findForward(line string, from int, ch rune) (int, bool) {
	col := from
	if col < len(line) {
		col = buffer.NextGraphemeStart(line, col)
	}
	for col < len(line) {
		r, _ := utf8.DecodeRuneInString(line[col:])
		if r == ch {
			return col, true
		}
		col = buffer.NextGraphemeStart(line, col)
	}
	return 0, false
}

func findBackward(line string, from int, ch rune) (int, bool) {
	col := from
	if col <= 0 {
		return 0, false
	}
	col = buffer.PrevGraphemeStart(line, col)
	for {
		r, _ := utf8.DecodeRuneInString(line[col:])
		if r == ch {
			return col, true
		}
		if col == 0 {
			return 0, false
		}
		col = buffer.PrevGraphemeStart(line, col)
	}
}

// RepeatFind re-invokes Find using a remembered FindState, either in the
// same direction (;) or the opposite one (,).
func RepeatFind(buf *buffer.Buffer, pos buffer.Position, count int, state FindState, reverse bool) (buffer.Position, bool) {
	forward := state.Forward
	if reverse {
		forward = !forward
	}
	// A repeated till-motion from the landed position must skip the
	// character under the cursor or it would never make progress.
	start := pos
	if !state.Inclusive {
		if forward {
			start.Column = buffer.NextGraphemeStart(buf.Line(pos.Line), pos.Column)
		} else if pos.Column > 0 {
			start.Column = buffer.PrevGraphemeStart(buf.Line(pos.Line), pos.Column)
		}
	}
	return Find(buf, start, state.Char, count, forward, state.Inclusive)
}
