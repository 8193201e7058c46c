package motion

import "github.com/kiahjh/raven/internal/engine/buffer"

// Char steps the cursor left or right by count grapheme clusters on the
// current line, clamped to the line's bounds. Normal-mode callers clamp the
// result further via cursor.ClampForMode; Char itself only respects the
// buffer's line length.
func Char(buf *buffer.Buffer, pos buffer.Position, count int, forward bool) buffer.Position {
	line := buf.Line(pos.Line)
	col := pos.Column
	for i := 0; i < count; i++ {
		if forward {
			if col >= len(line) {
				break
			}
			col = buffer.NextGraphemeStart(line, col)
		} else {
			if col <= 0 {
				break
			}
			col = buffer.PrevGraphemeStart(line, col)
		}
	}
	return buffer.Position{Line: pos.Line, Column: col}
}

// Vertical moves count lines up or down, landing at the given desired
// column clamped to the target line's length. The caller (cursor package)
// is responsible for tracking the desired-column hint across a run of
// vertical motions; Vertical itself is a pure function of a single move.
func Vertical(buf *buffer.Buffer, pos buffer.Position, count, desiredColumn int, down bool) buffer.Position {
	line := pos.Line
	if down {
		line += count
	} else {
		line -= count
	}
	if line < 0 {
		line = 0
	}
	if last := buf.LineCount() - 1; line > last {
		line = last
	}
	col := desiredColumn
	if max := buf.LineLength(line) - 1; max < 0 {
		col = 0
	} else if col > max {
		col = max
	}
	return buffer.Position{Line: line, Column: col}
}

// LineStart returns column 0 on the cursor's line.
func LineStart(pos buffer.Position) buffer.Position {
	return buffer.Position{Line: pos.Line, Column: 0}
}

// FirstNonBlank returns the column of the first non-whitespace rune on the
// cursor's line, or 0 if the line is blank.
func FirstNonBlank(buf *buffer.Buffer, pos buffer.Position) buffer.Position {
	line := buf.Line(pos.Line)
	col := 0
	for col < len(line) && (line[col] == ' ' || line[col] == '\t') {
		col++
	}
	if col >= len(line) {
		col = 0
	}
	return buffer.Position{Line: pos.Line, Column: col}
}

// LineEnd returns max(0, lineLength-1) on the cursor's line.
func LineEnd(buf *buffer.Buffer, pos buffer.Position) buffer.Position {
	length := buf.LineLength(pos.Line)
	col := length - 1
	if col < 0 {
		col = 0
	}
	return buffer.Position{Line: pos.Line, Column: col}
}
