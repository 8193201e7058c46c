package search

import (
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

var folder = cases.Fold()

// Match is a single literal match: [Start, End) on one line, End exclusive.
type Match struct {
	Start buffer.Position
	End   buffer.Position
}

// FindAll returns every non-overlapping, case-insensitive literal
// occurrence of pattern in buf, in line-then-column order. Special regex
// characters in pattern carry no meaning; they are matched literally. An
// empty pattern has no non-zero-width matches and yields nil.
func FindAll(buf *buffer.Buffer, pattern string) []Match {
	patRunes := []rune(pattern)
	if len(patRunes) == 0 {
		return nil
	}
	folded := make([]string, len(patRunes))
	for i, r := range patRunes {
		folded[i] = folder.String(string(r))
	}

	var matches []Match
	for line := 0; line < buf.LineCount(); line++ {
		text := buf.Line(line)
		col := 0
		for col < len(text) {
			if end, ok := matchAt(text, col, folded); ok {
				matches = append(matches, Match{
					Start: buffer.Position{Line: line, Column: col},
					End:   buffer.Position{Line: line, Column: end},
				})
				col = end
				continue
			}
			_, size := utf8.DecodeRuneInString(text[col:])
			col += size
		}
	}
	return matches
}

func matchAt(text string, start int, folded []string) (int, bool) {
	col := start
	for _, want := range folded {
		if col >= len(text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(text[col:])
		if folder.String(string(r)) != want {
			return 0, false
		}
		col += size
	}
	return col, true
}
