package motion

import (
	"unicode"
	"unicode/utf8"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

// charClass classifies a rune for word-motion purposes. Word class is
// literally [A-Za-z0-9_] per the core's ASCII word-character contract;
// everything else is either whitespace or punctuation. For WORD (big)
// motions the only distinction that matters is whitespace vs. not.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classPunct
)

func classify(r rune, big bool) charClass {
	if unicode.IsSpace(r) {
		return classWhitespace
	}
	if big {
		return classWord
	}
	if r < utf8.RuneSelf && (isASCIILetter(byte(r)) || isASCIIDigit(byte(r)) || r == '_') {
		return classWord
	}
	return classPunct
}

func isASCIILetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isASCIIDigit(b byte) bool  { return b >= '0' && b <= '9' }

func runeAt(line string, col int) (rune, int) {
	if col >= len(line) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(line[col:])
	return r, size
}

// WordForward returns the start of the next word/WORD, repeated count
// times, crossing line boundaries. An empty line counts as a word start in
// its own right. At the end of the buffer it returns the final Position.
func WordForward(buf *buffer.Buffer, pos buffer.Position, count int, big bool) buffer.Position {
	for i := 0; i < count; i++ {
		pos = wordForwardOnce(buf, pos, big)
	}
	return pos
}

func wordForwardOnce(buf *buffer.Buffer, pos buffer.Position, big bool) buffer.Position {
	line := buf.Line(pos.Line)
	col := pos.Column

	if col < len(line) {
		r, _ := runeAt(line, col)
		if cls := classify(r, big); cls != classWhitespace {
			for col < len(line) {
				r, _ := runeAt(line, col)
				if classify(r, big) != cls {
					break
				}
				col = buffer.NextGraphemeStart(line, col)
			}
		}
	}

	lineNum := pos.Line
	for {
		if col < len(line) {
			r, _ := runeAt(line, col)
			if classify(r, big) != classWhitespace {
				return buffer.Position{Line: lineNum, Column: col}
			}
			col = buffer.NextGraphemeStart(line, col)
			continue
		}
		if lineNum >= buf.LineCount()-1 {
			return buffer.Position{Line: lineNum, Column: len(line)}
		}
		lineNum++
		line = buf.Line(lineNum)
		col = 0
		if len(line) == 0 {
			return buffer.Position{Line: lineNum, Column: 0}
		}
	}
}

// WordBackward returns the start of the previous word/WORD, mirroring
// WordForward, repeated count times.
func WordBackward(buf *buffer.Buffer, pos buffer.Position, count int, big bool) buffer.Position {
	for i := 0; i < count; i++ {
		pos = wordBackwardOnce(buf, pos, big)
	}
	return pos
}

func wordBackwardOnce(buf *buffer.Buffer, pos buffer.Position, big bool) buffer.Position {
	line := buf.Line(pos.Line)
	col := pos.Column
	lineNum := pos.Line

	// Step back one grapheme to get off the current position.
	if col > 0 {
		col = buffer.PrevGraphemeStart(line, col)
	} else if lineNum > 0 {
		lineNum--
		line = buf.Line(lineNum)
		col = len(line)
		if col == 0 {
			return buffer.Position{Line: lineNum, Column: 0}
		}
		col = buffer.PrevGraphemeStart(line, col)
	} else {
		return buffer.Position{Line: 0, Column: 0}
	}

	// Skip whitespace backward, crossing lines; stop at an empty line.
	for {
		if col < len(line) {
			r, _ := runeAt(line, col)
			if classify(r, big) != classWhitespace {
				break
			}
		}
		if col > 0 {
			col = buffer.PrevGraphemeStart(line, col)
			continue
		}
		if lineNum == 0 {
			return buffer.Position{Line: 0, Column: 0}
		}
		lineNum--
		line = buf.Line(lineNum)
		if len(line) == 0 {
			return buffer.Position{Line: lineNum, Column: 0}
		}
		col = len(line)
		col = buffer.PrevGraphemeStart(line, col)
	}

	// Walk back to the start of this word/punct run.
	r, _ := runeAt(line, col)
	cls := classify(r, big)
	for col > 0 {
		prev := buffer.PrevGraphemeStart(line, col)
		pr, _ := runeAt(line, prev)
		if classify(pr, big) != cls {
			break
		}
		col = prev
	}
	return buffer.Position{Line: lineNum, Column: col}
}

// WordEnd returns the end of the current-or-next word/WORD (inclusive),
// repeated count times.
func WordEnd(buf *buffer.Buffer, pos buffer.Position, count int, big bool) buffer.Position {
	for i := 0; i < count; i++ {
		pos = wordEndOnce(buf, pos, big)
	}
	return pos
}

func wordEndOnce(buf *buffer.Buffer, pos buffer.Position, big bool) buffer.Position {
	line := buf.Line(pos.Line)
	col := pos.Column
	lineNum := pos.Line

	// Advance one step to get off the current character.
	if col < len(line) {
		col = buffer.NextGraphemeStart(line, col)
	} else if lineNum < buf.LineCount()-1 {
		lineNum++
		line = buf.Line(lineNum)
		col = 0
	}

	// Skip whitespace, crossing lines, but stop immediately on an empty line.
	for {
		if col < len(line) {
			r, _ := runeAt(line, col)
			if classify(r, big) != classWhitespace {
				break
			}
			col = buffer.NextGraphemeStart(line, col)
			continue
		}
		if lineNum >= buf.LineCount()-1 {
			return buffer.Position{Line: lineNum, Column: col}
		}
		lineNum++
		line = buf.Line(lineNum)
		col = 0
		if len(line) == 0 {
			return buffer.Position{Line: lineNum, Column: 0}
		}
	}

	r, _ := runeAt(line, col)
	cls := classify(r, big)
	for {
		next := buffer.NextGraphemeStart(line, col)
		if next >= len(line) {
			return buffer.Position{Line: lineNum, Column: col}
		}
		nr, _ := runeAt(line, next)
		if classify(nr, big) != cls {
			return buffer.Position{Line: lineNum, Column: col}
		}
		col = next
	}
}
