package motion

import "github.com/kiahjh/raven/internal/engine/buffer"

// GotoLine jumps to line N (1-indexed, as typed by the user) if hasCount,
// otherwise to the last line. Lands at the line's first non-whitespace
// column. Out-of-range counts clamp to the nearest valid line.
func GotoLine(buf *buffer.Buffer, pos buffer.Position, count int, hasCount bool) buffer.Position {
	last := buf.LineCount() - 1
	line := last
	if hasCount {
		line = count - 1
		if line < 0 {
			line = 0
		}
		if line > last {
			line = last
		}
	}
	return FirstNonBlank(buf, buffer.Position{Line: line, Column: 0})
}

// GotoFirstLine implements gg: line min(count-1, last), or line 0 when
// count is 0 (no count given). Lands at first non-whitespace.
func GotoFirstLine(buf *buffer.Buffer, count int) buffer.Position {
	last := buf.LineCount() - 1
	line := 0
	if count > 0 {
		line = count - 1
	}
	if line > last {
		line = last
	}
	return FirstNonBlank(buf, buffer.Position{Line: line, Column: 0})
}

// GotoPercent jumps to the line at percent% through the buffer, clamped to
// [1, 100], landing at line start.
func GotoPercent(buf *buffer.Buffer, percent int) buffer.Position {
	if percent < 1 {
		percent = 1
	}
	if percent > 100 {
		percent = 100
	}
	lineCount := buf.LineCount()
	line := (lineCount * percent) / 100
	if line >= lineCount {
		line = lineCount - 1
	}
	return buffer.Position{Line: line, Column: 0}
}
