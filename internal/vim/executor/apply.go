package executor

import (
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/vim/parser"
)

// Apply executes a fully-parsed normal-mode command against s, mutating its
// buffer, cursor, mode, registers and history as needed. Callers only invoke
// Apply while s.Mode is ModeNormal; insert-mode keystrokes go through
// InsertRune/InsertNewline/Backspace instead, since the grammar the parser
// implements only covers normal mode.
func Apply(s *State, cmd *parser.Command) Result {
	switch {
	case cmd.Operator != 0 && s.Visual != nil:
		return applyVisualOperator(s, cmd)
	case cmd.Operator != 0:
		return applyNonVisualOperator(s, cmd)
	case cmd.Action != "":
		return applyAction(s, cmd)
	case cmd.HasMotion:
		applyMotionToCursor(s, cmd)
		return Result{}
	}
	return Result{}
}

func applyNonVisualOperator(s *State, cmd *parser.Command) Result {
	rng, linewise, ok := resolveOperatorRange(s, cmd)
	if !ok || rng.IsEmpty() {
		return Result{}
	}
	regName := cmd.Register
	if regName == 0 {
		regName = '"'
	}
	return applyOperator(s, cmd.Operator, regName, rng, linewise)
}

// Escape implements the Escape key, which the parser never turns into a
// Command: in insert mode it returns to normal mode and re-clamps the
// cursor; in normal mode it only clears an active visual selection.
func Escape(s *State) Result {
	if s.Mode == cursor.ModeInsert {
		s.Mode = cursor.ModeNormal
		s.clampCursor()
		return Result{ModeChanged: true}
	}
	if s.Visual != nil {
		s.Visual = nil
	}
	return Result{}
}
