package executor

import (
	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/vim/parser"
)

// VisualRange exposes visualRange for callers outside the package (the
// editor layer's VisualRange query).
func VisualRange(s *State) (buffer.Range, bool) {
	return visualRange(s)
}

// visualRange resolves the active visual selection into a concrete,
// half-open buffer range: characterwise is the normalised (anchor, cursor)
// span extended by one column on its end (spec's "exclusive-plus-one"),
// linewise is the full-line span cursor.Visual.Range already produces.
func visualRange(s *State) (buffer.Range, bool) {
	if s.Visual == nil {
		return buffer.Range{}, false
	}
	r := s.Visual.Range(s.Cur.Pos, s.Buf.LineLength)
	if s.Visual.Kind == cursor.VisualChar {
		line := s.Buf.Line(r.End.Line)
		if r.End.Column < len(line) {
			r.End.Column = buffer.NextGraphemeStart(line, r.End.Column)
		} else {
			r.End.Column++
		}
	}
	return r, true
}

// applyVisualOperator applies cmd.Operator to the active visual selection
// and always clears the selection afterward, per spec.
func applyVisualOperator(s *State, cmd *parser.Command) Result {
	linewise := s.Visual != nil && s.Visual.Kind == cursor.VisualLine
	rng, ok := visualRange(s)
	s.Visual = nil
	if !ok || rng.IsEmpty() {
		return Result{}
	}
	res := applyOperator(s, cmd.Operator, cmd.Register, rng, linewise)
	if cmd.Operator == 'y' {
		s.Cur = cursor.New(rng.Start)
		s.clampCursor()
	}
	// u/U/~ already land the cursor at rng.Start inside applyCaseOperator.
	return res
}
