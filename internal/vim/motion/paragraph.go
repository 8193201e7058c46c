package motion

import (
	"strings"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

func isBlankLine(buf *buffer.Buffer, line int) bool {
	return strings.TrimSpace(buf.Line(line)) == ""
}

// ParagraphForward skips the current same-class run of lines (blank or
// non-blank) then the next, landing at line start; repeated count times.
func ParagraphForward(buf *buffer.Buffer, pos buffer.Position, count int) buffer.Position {
	last := buf.LineCount() - 1
	line := pos.Line
	for i := 0; i < count && line < last; i++ {
		startBlank := isBlankLine(buf, line)
		for line < last && isBlankLine(buf, line) == startBlank {
			line++
		}
		for line < last && isBlankLine(buf, line) != startBlank {
			line++
		}
	}
	return buffer.Position{Line: line, Column: 0}
}

// ParagraphBackward mirrors ParagraphForward.
func ParagraphBackward(buf *buffer.Buffer, pos buffer.Position, count int) buffer.Position {
	line := pos.Line
	for i := 0; i < count && line > 0; i++ {
		startBlank := isBlankLine(buf, line)
		for line > 0 && isBlankLine(buf, line) == startBlank {
			line--
		}
		for line > 0 && isBlankLine(buf, line) != startBlank {
			line--
		}
	}
	return buffer.Position{Line: line, Column: 0}
}
