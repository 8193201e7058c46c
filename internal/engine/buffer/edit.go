package buffer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Insert returns a new buffer with text inserted at pos. pos is clamped
// first, so inserting past end-of-line clamps to the line's length rather
// than failing. If text contains N newlines, the buffer gains N lines,
// split on any combination of \n, \r\n, and \r.
func (b *Buffer) Insert(pos Position, text string) *Buffer {
	if text == "" {
		return b
	}
	pos = b.Clamp(pos)
	before := b.lines[pos.Line][:pos.Column]
	after := b.lines[pos.Line][pos.Column:]

	normalised := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	inserted := strings.Split(normalised, "\n")

	out := b.clone()
	if len(inserted) == 1 {
		out.lines[pos.Line] = before + inserted[0] + after
		return out
	}

	newLines := make([]string, 0, len(out.lines)+len(inserted)-1)
	newLines = append(newLines, out.lines[:pos.Line]...)
	newLines = append(newLines, before+inserted[0])
	newLines = append(newLines, inserted[1:len(inserted)-1]...)
	newLines = append(newLines, inserted[len(inserted)-1]+after)
	newLines = append(newLines, out.lines[pos.Line+1:]...)
	out.lines = newLines
	return out
}

// DeleteRange returns a new buffer with the content from start up to but
// not including end removed. start and end are normalised so start <= end.
// The portion of start.Line before start.Column is joined with the portion
// of end.Line at and after end.Column.
func (b *Buffer) DeleteRange(start, end Position) *Buffer {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if start.After(end) {
		start, end = end, start
	}
	if start == end {
		return b
	}

	before := b.lines[start.Line][:start.Column]
	after := b.lines[end.Line][end.Column:]
	joined := before + after

	out := b.clone()
	newLines := make([]string, 0, len(out.lines)-(end.Line-start.Line))
	newLines = append(newLines, out.lines[:start.Line]...)
	newLines = append(newLines, joined)
	newLines = append(newLines, out.lines[end.Line+1:]...)
	out.lines = newLines
	return out
}

// DeleteCharBefore deletes the character immediately before pos, joining
// with the previous line when pos is at column 0. It returns the new
// buffer and the position the cursor should land at. If pos is (0,0) this
// is a no-op and pos is returned unchanged.
func (b *Buffer) DeleteCharBefore(pos Position) (*Buffer, Position) {
	pos = b.Clamp(pos)
	if pos.Column > 0 {
		prevCol := PrevGraphemeStart(b.lines[pos.Line], pos.Column)
		newPos := Position{Line: pos.Line, Column: prevCol}
		return b.DeleteRange(newPos, pos), newPos
	}
	if pos.Line > 0 {
		prevLen := len(b.lines[pos.Line-1])
		newPos := Position{Line: pos.Line - 1, Column: prevLen}
		return b.DeleteRange(newPos, pos), newPos
	}
	return b, pos
}

// DeleteCharAt deletes the character at pos, joining with the next line
// when pos is at end-of-line. If pos is at the end of the last line this
// is a no-op.
func (b *Buffer) DeleteCharAt(pos Position) *Buffer {
	pos = b.Clamp(pos)
	lineLen := b.LineLength(pos.Line)
	if pos.Column < lineLen {
		nextCol := NextGraphemeStart(b.lines[pos.Line], pos.Column)
		return b.DeleteRange(pos, Position{Line: pos.Line, Column: nextCol})
	}
	if pos.Line < b.LineCount()-1 {
		return b.DeleteRange(pos, Position{Line: pos.Line + 1, Column: 0})
	}
	return b
}

// PrevGraphemeStart returns the byte index of the start of the grapheme
// cluster immediately before col in s. Stepping by grapheme cluster rather
// than by raw rune keeps combining marks and other multi-codepoint clusters
// from being split in two by a single backspace.
func PrevGraphemeStart(s string, col int) int {
	if col <= 0 {
		return 0
	}
	gr := uniseg.NewGraphemes(s)
	prevStart := 0
	for gr.Next() {
		start, end := gr.Positions()
		if start >= col {
			break
		}
		prevStart = start
		if end >= col {
			break
		}
	}
	return prevStart
}

// NextGraphemeStart returns the byte index immediately after the grapheme
// cluster starting at or containing col in s.
func NextGraphemeStart(s string, col int) int {
	if col >= len(s) {
		return len(s)
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		start, end := gr.Positions()
		if start <= col && col < end {
			return end
		}
	}
	return len(s)
}

// leadingWhitespace returns the run of spaces and tabs at the start of s.
func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

// ComputeSmartIndent computes the indentation to apply when splitting
// line at col, given the text of the reference line (the line being
// split, before the split is applied) and an indent unit (e.g. "    ").
// The base indent is the reference line's leading whitespace; one indent
// unit is added if the trimmed text before the split ends in an opening
// bracket, and one unit is removed (if room allows) if the text at or
// after the split starts with a closing bracket.
func ComputeSmartIndent(line string, col int, indentUnit string) string {
	if col > len(line) {
		col = len(line)
	}
	before := line[:col]
	after := line[col:]

	base := leadingWhitespace(line)
	trimmedBefore := strings.TrimRight(before, " \t")
	trimmedAfter := strings.TrimLeft(after, " \t")

	opensBlock := strings.HasSuffix(trimmedBefore, "{") ||
		strings.HasSuffix(trimmedBefore, "(") ||
		strings.HasSuffix(trimmedBefore, "[")
	closesBlock := strings.HasPrefix(trimmedAfter, "}") ||
		strings.HasPrefix(trimmedAfter, ")") ||
		strings.HasPrefix(trimmedAfter, "]")

	indent := base
	if opensBlock {
		indent += indentUnit
	}
	if closesBlock && len(indent) >= len(indentUnit) {
		indent = indent[:len(indent)-len(indentUnit)]
	}
	return indent
}
