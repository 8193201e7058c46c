package search

import "github.com/kiahjh/raven/internal/engine/buffer"

// WordUnderCursor expands from cursor across word characters ([A-Za-z0-9_])
// on its line and returns the word text along with its exclusive
// [startCol, endCol) range. ok is false if the cursor does not sit on a
// word character.
func WordUnderCursor(buf *buffer.Buffer, cursor buffer.Position) (word string, startCol, endCol int, ok bool) {
	line := buf.Line(cursor.Line)
	if cursor.Column < 0 || cursor.Column >= len(line) || !isWordByte(line[cursor.Column]) {
		return "", 0, 0, false
	}

	start, end := cursor.Column, cursor.Column
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	for end+1 < len(line) && isWordByte(line[end+1]) {
		end++
	}
	return line[start : end+1], start, end + 1, true
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
