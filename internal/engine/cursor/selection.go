package cursor

import "github.com/kiahjh/raven/internal/engine/buffer"

// VisualKind distinguishes the two selection shapes the core supports.
// Block-wise visual selection is out of scope.
type VisualKind uint8

const (
	VisualChar VisualKind = iota
	VisualLine
)

// String returns a human-readable kind name.
func (k VisualKind) String() string {
	if k == VisualLine {
		return "line"
	}
	return "char"
}

// Visual is an active visual-mode selection: an anchor position plus a
// kind. The current cursor position is the other endpoint; Visual itself
// does not store it. A nil *Visual means no selection is active.
type Visual struct {
	Anchor Position
	Kind   VisualKind
}

// NewVisual starts a visual selection anchored at pos.
func NewVisual(pos Position, kind VisualKind) *Visual {
	return &Visual{Anchor: pos, Kind: kind}
}

// Range returns the normalised range covered by the selection, given the
// current cursor position as the other endpoint. For VisualLine, both
// endpoints are extended to the full line regardless of column: Start's
// column is forced to 0 and End's column is extended to its line length
// (the caller's buffer supplies that length via lineLength).
func (v *Visual) Range(cursor Position, lineLength func(line int) int) buffer.Range {
	r := buffer.NewRange(v.Anchor, cursor)
	if v.Kind != VisualLine {
		return r
	}
	r.Start.Column = 0
	r.End.Column = lineLength(r.End.Line)
	return r
}

// Contains reports whether pos falls within the selection's line span.
// Column is ignored for VisualLine selections.
func (v *Visual) Contains(pos, cursor Position) bool {
	r := buffer.NewRange(v.Anchor, cursor)
	if v.Kind == VisualLine {
		return pos.Line >= r.Start.Line && pos.Line <= r.End.Line
	}
	inclusiveEnd := Position{Line: r.End.Line, Column: r.End.Column + 1}
	return !pos.Before(r.Start) && pos.Before(inclusiveEnd)
}
