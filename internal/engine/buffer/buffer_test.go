package buffer

import "testing"

func TestNewIsOneEmptyLine(t *testing.T) {
	b := New()
	if b.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", b.LineCount())
	}
	if b.Line(0) != "" {
		t.Fatalf("expected empty line, got %q", b.Line(0))
	}
}

func TestFromStringSplitsLines(t *testing.T) {
	b := FromString("hello\nworld")
	if b.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", b.LineCount())
	}
	if b.Line(0) != "hello" || b.Line(1) != "world" {
		t.Fatalf("unexpected lines: %q %q", b.Line(0), b.Line(1))
	}
}

func TestFromStringNormalisesLineEndings(t *testing.T) {
	b := FromString("a\r\nb\rc")
	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestLineOutOfBoundsReturnsEmpty(t *testing.T) {
	b := FromString("hello")
	if b.Line(5) != "" {
		t.Errorf("expected empty string for out-of-range line")
	}
	if b.LineLength(-1) != 0 {
		t.Errorf("expected 0 length for negative line")
	}
}

func TestFullTextRoundTrip(t *testing.T) {
	text := "line one\nline two\nline three"
	b := FromString(text)
	if got := b.FullText(); got != text {
		t.Errorf("round trip failed: got %q want %q", got, text)
	}
}

func TestClampClampsLineAndColumn(t *testing.T) {
	b := FromString("abc\nde")
	p := b.Clamp(Position{Line: 10, Column: 10})
	if p != (Position{Line: 1, Column: 2}) {
		t.Errorf("expected (1:2), got %v", p)
	}
	p = b.Clamp(Position{Line: -5, Column: -5})
	if p != (Position{}) {
		t.Errorf("expected (0:0), got %v", p)
	}
}

func TestClampAllowsColumnEqualToLineLength(t *testing.T) {
	b := FromString("abc")
	p := b.Clamp(Position{Line: 0, Column: 3})
	if p.Column != 3 {
		t.Errorf("expected column 3 (end of line), got %d", p.Column)
	}
}

func TestInsertSingleLine(t *testing.T) {
	b := FromString("hello world")
	b2 := b.Insert(Position{Line: 0, Column: 5}, ",")
	if b2.Line(0) != "hello, world" {
		t.Errorf("got %q", b2.Line(0))
	}
	if b.Line(0) != "hello world" {
		t.Errorf("original buffer mutated: %q", b.Line(0))
	}
}

func TestInsertSplitsLines(t *testing.T) {
	b := FromString("helloworld")
	b2 := b.Insert(Position{Line: 0, Column: 5}, "\n")
	if b2.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", b2.LineCount())
	}
	if b2.Line(0) != "hello" || b2.Line(1) != "world" {
		t.Errorf("unexpected split: %q / %q", b2.Line(0), b2.Line(1))
	}
}

func TestInsertMultilineText(t *testing.T) {
	b := FromString("ac")
	b2 := b.Insert(Position{Line: 0, Column: 1}, "X\nY\nZ")
	if b2.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b2.LineCount())
	}
	if b2.Line(0) != "aX" || b2.Line(1) != "Y" || b2.Line(2) != "Zc" {
		t.Errorf("unexpected lines: %q %q %q", b2.Line(0), b2.Line(1), b2.Line(2))
	}
}

func TestInsertClampsOutOfRangeColumn(t *testing.T) {
	b := FromString("ab")
	b2 := b.Insert(Position{Line: 0, Column: 99}, "c")
	if b2.Line(0) != "abc" {
		t.Errorf("got %q", b2.Line(0))
	}
}

func TestDeleteRangeSameLine(t *testing.T) {
	b := FromString("hello world")
	b2 := b.DeleteRange(Position{Line: 0, Column: 0}, Position{Line: 0, Column: 6})
	if b2.Line(0) != "world" {
		t.Errorf("got %q", b2.Line(0))
	}
}

func TestDeleteRangeAcrossLines(t *testing.T) {
	b := FromString("hello\nworld\nfoo")
	b2 := b.DeleteRange(Position{Line: 0, Column: 3}, Position{Line: 2, Column: 1})
	if b2.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", b2.LineCount())
	}
	if b2.Line(0) != "heloo" {
		t.Errorf("got %q", b2.Line(0))
	}
}

func TestDeleteRangeNormalisesOrder(t *testing.T) {
	b := FromString("hello world")
	b2 := b.DeleteRange(Position{Line: 0, Column: 6}, Position{Line: 0, Column: 0})
	if b2.Line(0) != "world" {
		t.Errorf("got %q", b2.Line(0))
	}
}

func TestDeleteRangeEmptyIsNoOp(t *testing.T) {
	b := FromString("hello")
	b2 := b.DeleteRange(Position{Line: 0, Column: 2}, Position{Line: 0, Column: 2})
	if b2 != b {
		t.Errorf("expected same buffer for empty range")
	}
}

func TestDeleteCharBeforeMidLine(t *testing.T) {
	b := FromString("hello")
	b2, pos := b.DeleteCharBefore(Position{Line: 0, Column: 5})
	if b2.Line(0) != "hell" {
		t.Errorf("got %q", b2.Line(0))
	}
	if pos != (Position{Line: 0, Column: 4}) {
		t.Errorf("got pos %v", pos)
	}
}

func TestDeleteCharBeforeJoinsLines(t *testing.T) {
	b := FromString("hello\nworld")
	b2, pos := b.DeleteCharBefore(Position{Line: 1, Column: 0})
	if b2.LineCount() != 1 || b2.Line(0) != "helloworld" {
		t.Errorf("got %d lines, line0=%q", b2.LineCount(), b2.Line(0))
	}
	if pos != (Position{Line: 0, Column: 5}) {
		t.Errorf("got pos %v", pos)
	}
}

func TestDeleteCharBeforeAtOriginIsNoOp(t *testing.T) {
	b := FromString("hello")
	b2, pos := b.DeleteCharBefore(Position{Line: 0, Column: 0})
	if b2 != b || pos != (Position{}) {
		t.Errorf("expected no-op at origin")
	}
}

func TestDeleteCharAtMidLine(t *testing.T) {
	b := FromString("hello")
	b2 := b.DeleteCharAt(Position{Line: 0, Column: 0})
	if b2.Line(0) != "ello" {
		t.Errorf("got %q", b2.Line(0))
	}
}

func TestDeleteCharAtJoinsNextLine(t *testing.T) {
	b := FromString("hello\nworld")
	b2 := b.DeleteCharAt(Position{Line: 0, Column: 5})
	if b2.LineCount() != 1 || b2.Line(0) != "helloworld" {
		t.Errorf("got %d lines, line0=%q", b2.LineCount(), b2.Line(0))
	}
}

func TestDeleteCharAtEndOfBufferIsNoOp(t *testing.T) {
	b := FromString("hello")
	b2 := b.DeleteCharAt(Position{Line: 0, Column: 5})
	if b2 != b {
		t.Errorf("expected no-op at end of buffer")
	}
}

func TestDeleteCharOnEmptyLineIsNoOp(t *testing.T) {
	b := New()
	b2 := b.DeleteCharAt(Position{})
	if b2 != b {
		t.Errorf("expected no-op deleting from empty line")
	}
}

func TestComputeSmartIndentBase(t *testing.T) {
	got := ComputeSmartIndent("    foo", 7, "    ")
	if got != "    " {
		t.Errorf("got %q", got)
	}
}

func TestComputeSmartIndentAfterOpenBrace(t *testing.T) {
	got := ComputeSmartIndent("func f() {", 10, "    ")
	if got != "    " {
		t.Errorf("got %q", got)
	}
}

func TestComputeSmartIndentBeforeCloseBrace(t *testing.T) {
	got := ComputeSmartIndent("    {}", 5, "    ")
	if got != "    " {
		t.Errorf("got %q", got)
	}
}

func TestDetectLineEndingCRLF(t *testing.T) {
	if got := DetectLineEnding("a\r\nb\r\nc"); got != LineEndingCRLF {
		t.Errorf("got %v", got)
	}
}

func TestDetectLineEndingLFDefault(t *testing.T) {
	if got := DetectLineEnding("no newlines here"); got != LineEndingLF {
		t.Errorf("got %v", got)
	}
}
