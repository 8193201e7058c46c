package textobj

import "github.com/kiahjh/raven/internal/engine/buffer"

// quoteObject finds the pair of non-escaped quote characters on the
// cursor's line that encloses pos. Quote text objects never cross lines.
func quoteObject(buf *buffer.Buffer, pos buffer.Position, quote byte, around bool) (buffer.Range, bool) {
	line := buf.Line(pos.Line)
	positions := quotePositions(line, quote)
	if len(positions) < 2 {
		return buffer.Range{}, false
	}

	for i := 0; i+1 < len(positions); i += 2 {
		open, close := positions[i], positions[i+1]
		if pos.Column < open || pos.Column > close {
			continue
		}
		if around {
			return mkRange(pos.Line, open, close), true
		}
		if close-open <= 1 {
			return mkRange(pos.Line, open+1, open), false
		}
		return mkRange(pos.Line, open+1, close-1), true
	}

	// Cursor sits before the first pair on the line: vim still selects the
	// nearest following pair.
	if pos.Column < positions[0] {
		open, close := positions[0], positions[1]
		if around {
			return mkRange(pos.Line, open, close), true
		}
		if close-open <= 1 {
			return mkRange(pos.Line, open+1, open), false
		}
		return mkRange(pos.Line, open+1, close-1), true
	}

	return buffer.Range{}, false
}

// quotePositions returns the byte offsets of every non-escaped occurrence
// of quote on line, in order.
func quotePositions(line string, quote byte) []int {
	var out []int
	escaped := false
	for i := 0; i < len(line); i++ {
		b := line[i]
		if escaped {
			escaped = false
			continue
		}
		if b == '\\' {
			escaped = true
			continue
		}
		if b == quote {
			out = append(out, i)
		}
	}
	return out
}
