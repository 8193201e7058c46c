package executor

import (
	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/parser"
)

// resolveMotion computes cmd's target position against s, starting from
// from. ok is false only for motions that can fail to find anything
// (find-character and its repeats, matching bracket): in that case the
// returned position is not a usable target and the caller should treat the
// command as a no-op rather than moving the cursor.
func resolveMotion(s *State, cmd *parser.Command, from buffer.Position) (buffer.Position, bool) {
	switch cmd.Motion.Name {
	case motion.Left:
		return motion.Char(s.Buf, from, cmd.Count, false), true
	case motion.Right:
		return motion.Char(s.Buf, from, cmd.Count, true), true
	case motion.Up:
		return motion.Vertical(s.Buf, from, cmd.Count, s.Cur.DesiredColumn(), false), true
	case motion.Down:
		return motion.Vertical(s.Buf, from, cmd.Count, s.Cur.DesiredColumn(), true), true
	case motion.WordForward:
		return motion.WordForward(s.Buf, from, cmd.Count, false), true
	case motion.BigWordForward:
		return motion.WordForward(s.Buf, from, cmd.Count, true), true
	case motion.WordBackward:
		return motion.WordBackward(s.Buf, from, cmd.Count, false), true
	case motion.BigWordBackward:
		return motion.WordBackward(s.Buf, from, cmd.Count, true), true
	case motion.WordEnd:
		return motion.WordEnd(s.Buf, from, cmd.Count, false), true
	case motion.BigWordEnd:
		return motion.WordEnd(s.Buf, from, cmd.Count, true), true
	case motion.LineStart:
		return motion.LineStart(from), true
	case motion.FirstNonBlank:
		return motion.FirstNonBlank(s.Buf, from), true
	case motion.LineEnd:
		return motion.LineEnd(s.Buf, from), true
	case motion.GotoLine:
		return motion.GotoLine(s.Buf, from, cmd.Count, cmd.HasCount), true
	case motion.GotoFirstLine:
		count := 0
		if cmd.HasCount {
			count = cmd.Count
		}
		return motion.GotoFirstLine(s.Buf, count), true
	case motion.ParagraphForward:
		return motion.ParagraphForward(s.Buf, from, cmd.Count), true
	case motion.ParagraphBackward:
		return motion.ParagraphBackward(s.Buf, from, cmd.Count), true
	case motion.MatchingBracket:
		if cmd.HasCount {
			return motion.GotoPercent(s.Buf, cmd.Count), true
		}
		return motion.MatchingBracket(s.Buf, from)
	case motion.FindCharForward, motion.FindCharBackward, motion.TillCharForward, motion.TillCharBackward:
		return motion.Find(s.Buf, from, cmd.FindState.Char, cmd.Count, cmd.FindState.Forward, cmd.FindState.Inclusive)
	case motion.RepeatFind:
		return motion.RepeatFind(s.Buf, from, cmd.Count, cmd.FindState, false)
	case motion.RepeatFindReverse:
		return motion.RepeatFind(s.Buf, from, cmd.Count, cmd.FindState, true)
	}
	return from, true
}

// applyMotionToCursor moves s.Cur to the resolved target of cmd, handling
// the j/k desired-column preservation rule: vertical motions keep (or
// establish) the hint, every other motion clears it.
func applyMotionToCursor(s *State, cmd *parser.Command) {
	target, ok := resolveMotion(s, cmd, s.Cur.Pos)
	if !ok {
		return
	}
	if cmd.Motion.Name == motion.Up || cmd.Motion.Name == motion.Down {
		s.Cur = s.Cur.MoveVertical(target)
	} else {
		s.Cur = s.Cur.MoveTo(target)
	}
	s.clampCursor()
}
