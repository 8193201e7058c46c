package parser

import (
	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/textobj"
)

// CtrlR is the control byte for Ctrl-R (redo), since Go source can't spell
// a literal control rune as a quoted char.
const CtrlR = rune(18)

// Command is the fully-resolved result of a grammar parse: enough for the
// executor to act on without re-deriving any dispatch logic.
type Command struct {
	Count int
	// HasCount reports whether the user actually typed a count prefix,
	// as opposed to Count defaulting to 1. G and % both change meaning
	// when an explicit count is present.
	HasCount bool
	Register rune // 0 if none was specified

	Operator rune // 0, or one of d c y > <, or u U ~ for gu/gU/g~
	Linewise bool // set for dd/cc/yy/>>/<<

	Motion    motion.Spec
	HasMotion bool

	TextObject       textobj.Kind
	HasTextObject    bool
	TextObjectAround bool // true for "a" variant, false for "i"

	// CharArg is the replacement character for the r action, or the
	// target character for an f/F/t/T motion.
	CharArg rune

	// FindState is populated whenever Motion is a find-character motion
	// (f/F/t/T, freshly built from CharArg) or a repeat (;/,, carried
	// over from the session's remembered descriptor), so the executor
	// never needs a separate channel to motion.RepeatFind's state.
	FindState    motion.FindState
	HasFindState bool

	// Action names a simple, motion-less, text-object-less action (see
	// actions.go for the recognised set), including the zz/zt/zb
	// viewport hints and the redo action bound to Ctrl-R.
	Action string
}

// Options carries grammar-affecting context the parser can't infer from
// keystrokes alone.
type Options struct {
	// InVisualMode makes a bare operator a complete action against the
	// current visual selection, instead of requiring a motion or
	// text object to follow.
	InVisualMode bool
}

// Result is the outcome of one Parse call.
type Result struct {
	Complete   bool
	Command    *Command
	NewSession Session
	Err        error
}
