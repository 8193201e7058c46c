package parser

import (
	"errors"

	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/register"
	"github.com/kiahjh/raven/internal/vim/textobj"
)

// ErrInvalidSequence is returned when a key cannot extend the current
// pending sequence in any grammar-recognised way.
var ErrInvalidSequence = errors.New("invalid vim command sequence")

// Parse is a pure function from (accumulated input, session, options) to a
// parse result: it never mutates the editor, and the same inputs always
// produce the same outputs. Callers feed keys one at a time (or replay a
// whole pending string against a fresh Session{}); on Complete or Err the
// caller discards its accumulated input, since NewSession already reflects
// the reset state.
func Parse(input string, session Session, options Options) Result {
	sess := session
	for _, r := range input {
		res := step(sess, r, options)
		if res.Err != nil || res.Complete {
			return res
		}
		sess = res.NewSession
	}
	return Result{NewSession: sess}
}

func step(sess Session, r rune, options Options) Result {
	switch sess.state {
	case stateInitial, stateCount:
		return stepInitial(sess, r, options)
	case stateRegister:
		return stepRegister(sess, r)
	case stateOperator, stateOperatorCount:
		return stepOperator(sess, r, options)
	case stateGPrefix:
		return stepGPrefix(sess, r, options)
	case stateZPrefix:
		return stepZPrefix(sess, r)
	case stateTextObjectPrefix:
		return stepTextObjectPrefix(sess, r)
	case stateCharSearch:
		return stepCharSearch(sess, r)
	case stateReplaceChar:
		return stepReplaceChar(sess, r)
	default:
		return invalid(sess)
	}
}

func invalid(sess Session) Result {
	return Result{Err: ErrInvalidSequence, NewSession: sess.resetPending()}
}

func stepInitial(sess Session, r rune, options Options) Result {
	if sess.state == stateCount || sess.count1Active {
		if isCountDigit(r) {
			sess.count1 = sess.count1*10 + int(r-'0')
			sess.state = stateCount
			return pending(sess)
		}
	} else if isCountStart(r) {
		sess.count1 = int(r - '0')
		sess.count1Active = true
		sess.state = stateCount
		return pending(sess)
	}

	switch {
	case r == '"':
		sess.state = stateRegister
		return pending(sess)
	case r == 'g':
		sess.state = stateGPrefix
		return pending(sess)
	case r == 'z':
		sess.state = stateZPrefix
		return pending(sess)
	case r == 'r':
		sess.state = stateReplaceChar
		return pending(sess)
	case r == CtrlR:
		return completeAction(sess, "redo")
	case isOperator(r):
		if options.InVisualMode {
			return completeOperator(sess, r)
		}
		sess.operator = r
		sess.state = stateOperator
		return pending(sess)
	case motion.IsCharSearch(r):
		sess.charSearchKey = r
		sess.state = stateCharSearch
		return pending(sess)
	}

	if spec, ok := motion.Lookup(r); ok {
		return completeMotion(sess, spec)
	}
	if name, ok := isSimpleAction(r); ok {
		return completeAction(sess, name)
	}
	return invalid(sess)
}

func stepRegister(sess Session, r rune) Result {
	if !register.IsValidName(r) {
		return invalid(sess)
	}
	sess.register = r
	sess.state = stateInitial
	return pending(sess)
}

func stepOperator(sess Session, r rune, options Options) Result {
	if sess.state == stateOperator && isCountStart(r) {
		sess.count2 = int(r - '0')
		sess.count2Active = true
		sess.state = stateOperatorCount
		return pending(sess)
	}
	if sess.state == stateOperatorCount && isCountDigit(r) {
		sess.count2 = sess.count2*10 + int(r-'0')
		return pending(sess)
	}

	if r == sess.operator {
		return completeLinewise(sess)
	}
	switch {
	case r == 'g':
		sess.state = stateGPrefix
		return pending(sess)
	case r == 'i' || r == 'a':
		sess.textObjInner = r == 'i'
		sess.state = stateTextObjectPrefix
		return pending(sess)
	case motion.IsCharSearch(r):
		sess.charSearchKey = r
		sess.state = stateCharSearch
		return pending(sess)
	}

	if spec, ok := motion.Lookup(r); ok {
		return completeMotion(sess, spec)
	}
	return invalid(sess)
}

func stepGPrefix(sess Session, r rune, options Options) Result {
	if isGOperator(r) {
		if options.InVisualMode {
			return completeOperator(sess, r)
		}
		sess.operator = r
		sess.state = stateOperator
		return pending(sess)
	}
	if spec, ok := motion.LookupG(r); ok {
		return completeMotion(sess, spec)
	}
	return invalid(sess)
}

func stepZPrefix(sess Session, r rune) Result {
	if name, ok := zActions[r]; ok {
		return completeAction(sess, name)
	}
	return invalid(sess)
}

func stepTextObjectPrefix(sess Session, r rune) Result {
	kind, ok := textobj.Lookup(r)
	if !ok {
		return invalid(sess)
	}
	cmd := baseCommand(sess)
	cmd.TextObject = kind
	cmd.HasTextObject = true
	cmd.TextObjectAround = !sess.textObjInner
	return finish(sess, cmd)
}

func stepCharSearch(sess Session, r rune) Result {
	spec, ok := motion.Lookup(sess.charSearchKey)
	if !ok {
		return invalid(sess)
	}
	cmd := baseCommand(sess)
	cmd.CharArg = r

	find := motion.FindState{
		Char:      r,
		Forward:   sess.charSearchKey == 'f' || sess.charSearchKey == 't',
		Inclusive: sess.charSearchKey == 'f' || sess.charSearchKey == 'F',
	}
	cmd.Motion = spec
	cmd.HasMotion = true
	cmd.FindState = find
	cmd.HasFindState = true

	next := sess.resetPending()
	next.HasLastFind = true
	next.LastFind = find
	return Result{Complete: true, Command: cmd, NewSession: next}
}

func stepReplaceChar(sess Session, r rune) Result {
	cmd := baseCommand(sess)
	cmd.Action = "replace"
	cmd.CharArg = r
	return finish(sess, cmd)
}

func pending(sess Session) Result {
	return Result{NewSession: sess}
}

func baseCommand(sess Session) *Command {
	return &Command{
		Count:    sess.effectiveCount(),
		HasCount: sess.count1Active || sess.count2Active,
		Register: sess.register,
		Operator: sess.operator,
	}
}

func finish(sess Session, cmd *Command) Result {
	return Result{Complete: true, Command: cmd, NewSession: sess.resetPending()}
}

func completeAction(sess Session, name string) Result {
	cmd := baseCommand(sess)
	cmd.Action = name
	return finish(sess, cmd)
}

func completeOperator(sess Session, op rune) Result {
	cmd := baseCommand(sess)
	cmd.Operator = op
	return finish(sess, cmd)
}

func completeLinewise(sess Session) Result {
	cmd := baseCommand(sess)
	cmd.Linewise = true
	return finish(sess, cmd)
}

func completeMotion(sess Session, spec motion.Spec) Result {
	cmd := baseCommand(sess)
	cmd.Motion = spec
	cmd.HasMotion = true

	if spec.Name == motion.RepeatFind || spec.Name == motion.RepeatFindReverse {
		cmd.FindState = sess.LastFind
		cmd.HasFindState = sess.HasLastFind
	}
	return finish(sess, cmd)
}
