package executor

import (
	"testing"

	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/vim/motion"
	"github.com/kiahjh/raven/internal/vim/parser"
	"github.com/kiahjh/raven/internal/vim/textobj"
)

func at(line, col int) buffer.Position { return buffer.Position{Line: line, Column: col} }

func motionCmd(name motion.Name, count int, inclusive, linewise bool) *parser.Command {
	return &parser.Command{
		Count:     count,
		HasCount:  count != 1,
		HasMotion: true,
		Motion:    motion.Spec{Name: name, Inclusive: inclusive, Linewise: linewise},
	}
}

func TestBareMotionMovesCursorOnly(t *testing.T) {
	s := New(buffer.FromString("hello world"))
	Apply(s, motionCmd(motion.WordForward, 1, false, false))
	if s.Cur.Pos != at(0, 6) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
	if s.History.CanUndo() {
		t.Fatalf("bare motion must not push history")
	}
}

func TestDeleteWordPushesHistoryAndFillsRegister(t *testing.T) {
	s := New(buffer.FromString("hello world"))
	cmd := motionCmd(motion.WordForward, 1, false, false)
	cmd.Operator = 'd'
	cmd.HasMotion = true
	res := Apply(s, cmd)
	if !res.Modified || !res.BufferChanged {
		t.Fatalf("res = %+v", res)
	}
	if got := s.Buf.Line(0); got != "world" {
		t.Fatalf("line = %q", got)
	}
	if s.Cur.Pos != at(0, 0) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
	if content := s.Registers.Get('"'); content.Text != "hello " {
		t.Fatalf("register = %+v", content)
	}
	if !s.History.CanUndo() {
		t.Fatalf("expected a pushed history entry")
	}
}

func TestDoubleDOperatorIsLinewiseAcrossCount(t *testing.T) {
	s := New(buffer.FromString("one\ntwo\nthree"))
	cmd := &parser.Command{Count: 2, Operator: 'd', Linewise: true}
	Apply(s, cmd)
	if s.Buf.LineCount() != 1 || s.Buf.Line(0) != "three" {
		t.Fatalf("buf = %q (count %d)", s.Buf.FullText(), s.Buf.LineCount())
	}
}

func TestChangeOperatorEntersInsertModeAndLeavesEmptyLine(t *testing.T) {
	s := New(buffer.FromString("one\ntwo\nthree"))
	cmd := &parser.Command{Count: 1, Operator: 'c', Linewise: true}
	res := Apply(s, cmd)
	if !res.ModeChanged || s.Mode != cursor.ModeInsert {
		t.Fatalf("mode = %v res = %+v", s.Mode, res)
	}
	if s.Buf.LineCount() != 3 || s.Buf.Line(0) != "" {
		t.Fatalf("buf = %q", s.Buf.FullText())
	}
}

func TestTextObjectOperatorDeletesInnerWord(t *testing.T) {
	s := New(buffer.FromString("foo bar baz"))
	s.Cur = cursor.New(at(0, 5))
	cmd := &parser.Command{
		Count: 1, Operator: 'd',
		HasTextObject: true, TextObject: textobj.Word,
	}
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "foo  baz" {
		t.Fatalf("line = %q", got)
	}
}

func TestOperatorOnEmptyRangeIsNoOpAndSkipsHistory(t *testing.T) {
	s := New(buffer.FromString("x"))
	s.Cur = cursor.New(at(0, 0))
	cmd := motionCmd(motion.Left, 1, false, false)
	cmd.Operator = 'd'
	res := Apply(s, cmd)
	if res.Modified || res.BufferChanged {
		t.Fatalf("expected no-op, got %+v", res)
	}
	if s.History.CanUndo() {
		t.Fatalf("empty range must not push history")
	}
}

func TestVisualCharYankSnapsCursorToSelectionStart(t *testing.T) {
	s := New(buffer.FromString("hello world"))
	s.Cur = cursor.New(at(0, 6))
	s.Visual = cursor.NewVisual(at(0, 6), cursor.VisualChar)
	s.Cur = cursor.New(at(0, 10))
	cmd := &parser.Command{Operator: 'y'}
	Apply(s, cmd)
	if s.Visual != nil {
		t.Fatalf("visual selection must clear on completion")
	}
	if s.Cur.Pos != at(0, 6) {
		t.Fatalf("cursor = %+v, want selection start", s.Cur.Pos)
	}
	if content := s.Registers.Get('"'); content.Text != "world" {
		t.Fatalf("register = %+v", content)
	}
}

func TestVisualLineDeleteClearsSelectionEvenWhenEmpty(t *testing.T) {
	s := New(buffer.FromString(""))
	s.Visual = cursor.NewVisual(at(0, 0), cursor.VisualLine)
	cmd := &parser.Command{Operator: 'd'}
	Apply(s, cmd)
	if s.Visual != nil {
		t.Fatalf("visual selection must clear even on a no-op outcome")
	}
}

func TestOpenBelowEntersInsertOnNewBlankLine(t *testing.T) {
	s := New(buffer.FromString("one\ntwo"))
	Apply(s, &parser.Command{Action: "open-below"})
	if s.Mode != cursor.ModeInsert {
		t.Fatalf("mode = %v", s.Mode)
	}
	if s.Buf.LineCount() != 3 || s.Buf.Line(1) != "" || s.Buf.Line(2) != "two" {
		t.Fatalf("buf = %q", s.Buf.FullText())
	}
	if s.Cur.Pos != at(1, 0) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestOpenAboveInsertsBlankLineBeforeCursorLine(t *testing.T) {
	s := New(buffer.FromString("one\ntwo"))
	s.Cur = cursor.New(at(1, 0))
	Apply(s, &parser.Command{Action: "open-above"})
	if s.Buf.LineCount() != 3 || s.Buf.Line(1) != "" || s.Buf.Line(2) != "two" {
		t.Fatalf("buf = %q", s.Buf.FullText())
	}
	if s.Cur.Pos != at(1, 0) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestDeleteCharActionXWritesUnnamedRegister(t *testing.T) {
	s := New(buffer.FromString("hello"))
	Apply(s, &parser.Command{Action: "delete-char", Count: 1})
	if got := s.Buf.Line(0); got != "ello" {
		t.Fatalf("line = %q", got)
	}
	if content := s.Registers.Get('"'); content.Text != "h" {
		t.Fatalf("register = %+v", content)
	}
}

func TestJoinLinesInsertsSingleSpaceBetweenNonEmptySides(t *testing.T) {
	s := New(buffer.FromString("foo\n  bar"))
	Apply(s, &parser.Command{Action: "join-lines", Count: 1})
	if got := s.Buf.Line(0); got != "foo bar" {
		t.Fatalf("line = %q", got)
	}
	if s.Buf.LineCount() != 1 {
		t.Fatalf("line count = %d", s.Buf.LineCount())
	}
}

func TestJoinLinesAtLastLineIsNoOp(t *testing.T) {
	s := New(buffer.FromString("only"))
	res := Apply(s, &parser.Command{Action: "join-lines", Count: 1})
	if res.Modified {
		t.Fatalf("expected no-op at buffer end")
	}
}

func TestToggleCaseAtCursorAdvancesByCount(t *testing.T) {
	s := New(buffer.FromString("abcdef"))
	Apply(s, &parser.Command{Action: "toggle-case", Count: 3})
	if got := s.Buf.Line(0); got != "ABCdef" {
		t.Fatalf("line = %q", got)
	}
	if s.Cur.Pos != at(0, 3) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestReplaceCharOverwritesNCharsAndLandsOnLast(t *testing.T) {
	s := New(buffer.FromString("hello"))
	Apply(s, &parser.Command{Action: "replace", Count: 3, CharArg: 'x'})
	if got := s.Buf.Line(0); got != "xxxlo" {
		t.Fatalf("line = %q", got)
	}
	if s.Cur.Pos != at(0, 2) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestReplaceCharFailsWithoutEnoughRemainingChars(t *testing.T) {
	s := New(buffer.FromString("ab"))
	res := Apply(s, &parser.Command{Action: "replace", Count: 5, CharArg: 'x'})
	if res.Modified {
		t.Fatalf("expected no-op, got %+v", res)
	}
	if got := s.Buf.Line(0); got != "ab" {
		t.Fatalf("line = %q, buffer must be untouched", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := New(buffer.FromString("hello"))
	Apply(s, &parser.Command{Action: "delete-char", Count: 1})
	if got := s.Buf.Line(0); got != "ello" {
		t.Fatalf("line after delete = %q", got)
	}
	Apply(s, &parser.Command{Action: "undo"})
	if got := s.Buf.Line(0); got != "hello" {
		t.Fatalf("line after undo = %q", got)
	}
	Apply(s, &parser.Command{Action: "redo"})
	if got := s.Buf.Line(0); got != "ello" {
		t.Fatalf("line after redo = %q", got)
	}
}

func TestPasteAfterCharacterwiseLandsAfterInsertedText(t *testing.T) {
	s := New(buffer.FromString("ac"))
	Apply(s, &parser.Command{Action: "delete-char", Count: 1}) // yanks "a" into "
	s.Cur = cursor.New(at(0, 0))
	Apply(s, &parser.Command{Action: "paste-after"})
	if got := s.Buf.Line(0); got != "ca" {
		t.Fatalf("line = %q", got)
	}
}

func TestPasteNoOpOnEmptyRegister(t *testing.T) {
	s := New(buffer.FromString("abc"))
	res := Apply(s, &parser.Command{Action: "paste-after"})
	if res.Modified {
		t.Fatalf("expected no-op with empty register, got %+v", res)
	}
}

func TestIndentAddsUnitToEachNonBlankLine(t *testing.T) {
	s := New(buffer.FromString("a\n\nb"))
	cmd := &parser.Command{Count: 3, Operator: '>', Linewise: true}
	Apply(s, cmd)
	if s.Buf.Line(0) != "    a" || s.Buf.Line(1) != "" || s.Buf.Line(2) != "    b" {
		t.Fatalf("buf = %q", s.Buf.FullText())
	}
}

func TestOutdentRemovesOnlyPresentLeadingSpaces(t *testing.T) {
	s := New(buffer.FromString("  a"))
	cmd := &parser.Command{Count: 1, Operator: '<', Linewise: true}
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "a" {
		t.Fatalf("line = %q", got)
	}
}

func TestInsertRuneAndNewlineBuildUpText(t *testing.T) {
	s := New(buffer.FromString(""))
	s.Mode = cursor.ModeInsert
	InsertRune(s, 'h')
	InsertRune(s, 'i')
	InsertNewline(s)
	InsertRune(s, '!')
	if got := s.Buf.FullText(); got != "hi\n!" {
		t.Fatalf("text = %q", got)
	}
	if s.Cur.Pos != at(1, 1) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestBackspaceJoinsPreviousLineAtColumnZero(t *testing.T) {
	s := New(buffer.FromString("one\ntwo"))
	s.Cur = cursor.New(at(1, 0))
	Backspace(s)
	if got := s.Buf.FullText(); got != "onetwo" {
		t.Fatalf("text = %q", got)
	}
	if s.Cur.Pos != at(0, 3) {
		t.Fatalf("cursor = %+v", s.Cur.Pos)
	}
}

func TestEscapeFromInsertReturnsToNormalAndClamps(t *testing.T) {
	s := New(buffer.FromString("ab"))
	s.Mode = cursor.ModeInsert
	s.Cur = cursor.New(at(0, 2))
	Escape(s)
	if s.Mode != cursor.ModeNormal {
		t.Fatalf("mode = %v", s.Mode)
	}
	if s.Cur.Pos != at(0, 1) {
		t.Fatalf("cursor = %+v, expected clamp off end-of-line", s.Cur.Pos)
	}
}

func TestEscapeInNormalModeClearsVisualSelection(t *testing.T) {
	s := New(buffer.FromString("abc"))
	s.Visual = cursor.NewVisual(at(0, 0), cursor.VisualChar)
	Escape(s)
	if s.Visual != nil {
		t.Fatalf("expected visual selection cleared")
	}
}

func TestGULowercasesOverMotion(t *testing.T) {
	s := New(buffer.FromString("HELLO world"))
	cmd := motionCmd(motion.WordForward, 1, false, false)
	cmd.Operator = 'u'
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "hello world" {
		t.Fatalf("text = %q", got)
	}
	if s.Cur.Pos != at(0, 0) {
		t.Fatalf("cursor = %+v, want landing at range start", s.Cur.Pos)
	}
}

func TestGUUppercasesWholeLineWhenDoubled(t *testing.T) {
	s := New(buffer.FromString("hello"))
	cmd := &parser.Command{Operator: 'U', Linewise: true, Count: 1}
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "HELLO" {
		t.Fatalf("text = %q", got)
	}
}

func TestGTildeTogglesCaseOverTextObject(t *testing.T) {
	s := New(buffer.FromString("(AbC)"))
	s.Cur = cursor.New(at(0, 1))
	cmd := &parser.Command{
		Operator:         '~',
		HasTextObject:    true,
		TextObject:       textobj.Paren,
		TextObjectAround: false,
	}
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "(aBc)" {
		t.Fatalf("text = %q", got)
	}
}

func TestGUVisualUppercasesSelection(t *testing.T) {
	s := New(buffer.FromString("hello"))
	s.Visual = cursor.NewVisual(at(0, 0), cursor.VisualChar)
	s.Cur = cursor.New(at(0, 2))
	cmd := &parser.Command{Operator: 'U'}
	Apply(s, cmd)
	if got := s.Buf.Line(0); got != "HELlo" {
		t.Fatalf("text = %q", got)
	}
	if s.Visual != nil {
		t.Fatalf("expected visual selection cleared")
	}
}
