package search

import "github.com/kiahjh/raven/internal/engine/buffer"

// NextMatch returns the first match strictly after cursor (forward) or
// strictly before it (backward), wrapping around at the end or start of
// matches. matches must already be in line-then-column order, as FindAll
// returns them. ok is false only when matches is empty.
func NextMatch(matches []Match, cursor buffer.Position, forward bool) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	if forward {
		for _, m := range matches {
			if after(m.Start, cursor) {
				return m, true
			}
		}
		return matches[0], true
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if before(matches[i].Start, cursor) {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}

func after(pos, cursor buffer.Position) bool {
	return pos.Line > cursor.Line || (pos.Line == cursor.Line && pos.Column > cursor.Column)
}

func before(pos, cursor buffer.Position) bool {
	return pos.Line < cursor.Line || (pos.Line == cursor.Line && pos.Column < cursor.Column)
}
