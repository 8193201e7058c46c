package parser

import "github.com/kiahjh/raven/internal/vim/motion"

type state uint8

const (
	stateInitial state = iota
	stateCount
	stateRegister
	stateOperator
	stateOperatorCount
	stateGPrefix
	stateZPrefix
	stateTextObjectPrefix
	stateCharSearch
	stateReplaceChar
)

// Session is the parser's pending state, threaded by value from one Parse
// call to the next. The zero Session is the idle state: no count, no
// register, no pending operator.
type Session struct {
	state state

	count1       int
	count1Active bool
	count2       int
	count2Active bool

	register rune
	operator rune

	textObjInner  bool
	charSearchKey rune

	// HasLastFind/LastFind survive across completed commands (not just
	// within one pending sequence) so a later ; or , can repeat the most
	// recent f/F/t/T regardless of what was typed in between.
	HasLastFind bool
	LastFind    motion.FindState
}

// idle reports whether the session has no pending parse in progress.
func (s Session) idle() bool {
	return s.state == stateInitial
}

// resetPending clears everything except the remembered find descriptor,
// which is the one piece of session state the grammar says must outlive a
// completed command.
func (s Session) resetPending() Session {
	return Session{HasLastFind: s.HasLastFind, LastFind: s.LastFind}
}

func isCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

func isCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (s Session) effectiveCount() int {
	n1, n2 := 1, 1
	if s.count1Active {
		n1 = s.count1
	}
	if s.count2Active {
		n2 = s.count2
	}
	return n1 * n2
}
