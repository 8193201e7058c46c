package motion

import "github.com/kiahjh/raven/internal/engine/buffer"

var bracketPairs = map[byte]byte{
	'(': ')', '[': ']', '{': '}',
	')': '(', ']': '[', '}': '{',
}

func isOpenBracket(b byte) bool { return b == '(' || b == '[' || b == '{' }
func isCloseBracket(b byte) bool { return b == ')' || b == ']' || b == '}' }

// MatchingBracket finds the bracket matching the one at or after pos on its
// line. If pos is not on a bracket, it scans forward on the current line to
// the first bracket char before matching. Returns ok=false if no bracket is
// found on the line or no match exists.
func MatchingBracket(buf *buffer.Buffer, pos buffer.Position) (buffer.Position, bool) {
	line := buf.Line(pos.Line)
	col := pos.Column
	for col < len(line) {
		b := line[col]
		if isOpenBracket(b) || isCloseBracket(b) {
			break
		}
		col++
	}
	if col >= len(line) {
		return buffer.Position{}, false
	}

	bracket := line[col]
	match := bracketPairs[bracket]
	start := buffer.Position{Line: pos.Line, Column: col}

	if isOpenBracket(bracket) {
		return scanForward(buf, start, bracket, match)
	}
	return scanBackward(buf, start, bracket, match)
}

func scanForward(buf *buffer.Buffer, from buffer.Position, open, close byte) (buffer.Position, bool) {
	depth := 1
	lineNum, col := from.Line, from.Column+1
	for lineNum < buf.LineCount() {
		line := buf.Line(lineNum)
		for col < len(line) {
			switch line[col] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return buffer.Position{Line: lineNum, Column: col}, true
				}
			}
			col++
		}
		lineNum++
		col = 0
	}
	return buffer.Position{}, false
}

func scanBackward(buf *buffer.Buffer, from buffer.Position, close, open byte) (buffer.Position, bool) {
	depth := 1
	lineNum, col := from.Line, from.Column-1
	for lineNum >= 0 {
		line := buf.Line(lineNum)
		for col >= 0 {
			switch line[col] {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return buffer.Position{Line: lineNum, Column: col}, true
				}
			}
			col--
		}
		lineNum--
		if lineNum >= 0 {
			col = len(buf.Line(lineNum)) - 1
		}
	}
	return buffer.Position{}, false
}
