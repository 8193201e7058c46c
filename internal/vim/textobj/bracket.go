package textobj

import "github.com/kiahjh/raven/internal/engine/buffer"

// bracketObject finds the innermost (open, close) pair enclosing pos,
// scanning outward across lines with a depth counter, then returns the
// inner range (between the delimiters) or the around range (including
// them).
func bracketObject(buf *buffer.Buffer, pos buffer.Position, open, close byte, around bool) (buffer.Range, bool) {
	cur := currentByte(buf, pos)

	var openPos, closePos buffer.Position
	var ok bool

	switch {
	case cur == close:
		closePos = pos
		openPos, ok = scanBackward(buf, prevPosition(buf, pos), open, close)
	case cur == open:
		openPos = pos
		closePos, ok = scanForward(buf, nextPosition(buf, pos), open, close)
	default:
		openPos, ok = scanBackward(buf, pos, open, close)
		if ok {
			closePos, ok = scanForward(buf, nextPosition(buf, openPos), open, close)
		}
	}
	if !ok {
		return buffer.Range{}, false
	}

	if around {
		return buffer.Range{Start: openPos, End: closePos}, true
	}

	innerStart := nextPosition(buf, openPos)
	innerEnd := prevPosition(buf, closePos)
	if innerEnd.Before(innerStart) {
		return buffer.Range{Start: openPos, End: openPos}, false
	}
	return buffer.Range{Start: innerStart, End: innerEnd}, true
}

func currentByte(buf *buffer.Buffer, pos buffer.Position) byte {
	line := buf.Line(pos.Line)
	if pos.Column < 0 || pos.Column >= len(line) {
		return 0
	}
	return line[pos.Column]
}

func nextPosition(buf *buffer.Buffer, pos buffer.Position) buffer.Position {
	line := buf.Line(pos.Line)
	if pos.Column+1 < len(line) {
		return buffer.Position{Line: pos.Line, Column: pos.Column + 1}
	}
	if pos.Line+1 < buf.LineCount() {
		return buffer.Position{Line: pos.Line + 1, Column: 0}
	}
	return buffer.Position{Line: pos.Line, Column: len(line)}
}

func prevPosition(buf *buffer.Buffer, pos buffer.Position) buffer.Position {
	if pos.Column > 0 {
		return buffer.Position{Line: pos.Line, Column: pos.Column - 1}
	}
	if pos.Line > 0 {
		prevLine := buf.Line(pos.Line - 1)
		col := len(prevLine) - 1
		if col < 0 {
			col = 0
		}
		return buffer.Position{Line: pos.Line - 1, Column: col}
	}
	return pos
}

func scanForward(buf *buffer.Buffer, from buffer.Position, open, close byte) (buffer.Position, bool) {
	depth := 0
	pos := from
	for {
		line := buf.Line(pos.Line)
		if pos.Column < len(line) {
			switch line[pos.Column] {
			case close:
				if depth == 0 {
					return pos, true
				}
				depth--
			case open:
				depth++
			}
		}
		if pos.Line == buf.LineCount()-1 && pos.Column >= len(line) {
			return buffer.Position{}, false
		}
		pos = nextPosition(buf, pos)
	}
}

func scanBackward(buf *buffer.Buffer, from buffer.Position, open, close byte) (buffer.Position, bool) {
	depth := 0
	pos := from
	for {
		line := buf.Line(pos.Line)
		if pos.Column < len(line) {
			switch line[pos.Column] {
			case open:
				if depth == 0 {
					return pos, true
				}
				depth--
			case close:
				depth++
			}
		}
		if pos.Line == 0 && pos.Column == 0 {
			return buffer.Position{}, false
		}
		pos = prevPosition(buf, pos)
	}
}
