package textobj

import "github.com/kiahjh/raven/internal/engine/buffer"

type class uint8

const (
	clsWhitespace class = iota
	clsWord
	clsPunct
)

func classify(b byte, big bool) class {
	if b == ' ' || b == '\t' {
		return clsWhitespace
	}
	if big {
		return clsWord
	}
	if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' {
		return clsWord
	}
	return clsPunct
}

// wordObject computes iw/aw (or iW/aW) bounds, confined to the cursor's
// line: the maximal same-class run containing the cursor, optionally
// extended with trailing whitespace (or, failing that, leading whitespace)
// for the "around" variant.
func wordObject(buf *buffer.Buffer, pos buffer.Position, around, big bool) (buffer.Range, bool) {
	line := buf.Line(pos.Line)
	if pos.Column >= len(line) {
		return buffer.Range{}, false
	}

	cls := classify(line[pos.Column], big)
	start, end := pos.Column, pos.Column
	for start > 0 && classify(line[start-1], big) == cls {
		start--
	}
	for end+1 < len(line) && classify(line[end+1], big) == cls {
		end++
	}

	if !around {
		return mkRange(pos.Line, start, end), true
	}

	if end+1 < len(line) && classify(line[end+1], big) == clsWhitespace {
		trailEnd := end + 1
		for trailEnd+1 < len(line) && classify(line[trailEnd+1], big) == clsWhitespace {
			trailEnd++
		}
		return mkRange(pos.Line, start, trailEnd), true
	}
	if start > 0 && classify(line[start-1], big) == clsWhitespace {
		leadStart := start - 1
		for leadStart > 0 && classify(line[leadStart-1], big) == clsWhitespace {
			leadStart--
		}
		return mkRange(pos.Line, leadStart, end), true
	}
	return mkRange(pos.Line, start, end), true
}

func mkRange(line, start, end int) buffer.Range {
	return buffer.Range{
		Start: buffer.Position{Line: line, Column: start},
		End:   buffer.Position{Line: line, Column: end},
	}
}
