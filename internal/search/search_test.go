package search

import (
	"testing"

	"github.com/kiahjh/raven/internal/engine/buffer"
)

func TestFindAllLocatesCaseInsensitiveMatches(t *testing.T) {
	buf := buffer.FromString("Foo bar foo")
	matches := FindAll(buf, "foo")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Start.Column != 0 || matches[0].End.Column != 3 {
		t.Errorf("first match = %v", matches[0])
	}
	if matches[1].Start.Column != 8 || matches[1].End.Column != 11 {
		t.Errorf("second match = %v", matches[1])
	}
}

func TestFindAllSpansLinesInOrder(t *testing.T) {
	buf := buffer.FromString("cat\ndog\ncat")
	matches := FindAll(buf, "cat")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Start.Line != 0 || matches[1].Start.Line != 2 {
		t.Errorf("got lines %d, %d", matches[0].Start.Line, matches[1].Start.Line)
	}
}

func TestFindAllMatchesAreNonOverlapping(t *testing.T) {
	buf := buffer.FromString("aaaa")
	matches := FindAll(buf, "aa")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].End.Column != matches[1].Start.Column {
		t.Errorf("expected adjacent non-overlapping matches, got %v then %v", matches[0], matches[1])
	}
}

func TestFindAllEmptyPatternYieldsNoMatches(t *testing.T) {
	buf := buffer.FromString("anything")
	if matches := FindAll(buf, ""); matches != nil {
		t.Errorf("expected nil, got %v", matches)
	}
}

func TestFindAllNoOccurrenceYieldsEmpty(t *testing.T) {
	buf := buffer.FromString("hello world")
	if matches := FindAll(buf, "xyz"); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func TestNextMatchForwardWrapsToStart(t *testing.T) {
	buf := buffer.FromString("foo bar foo")
	matches := FindAll(buf, "foo")
	m, ok := NextMatch(matches, buffer.Position{Line: 0, Column: 9}, true)
	if !ok || m.Start.Column != 0 {
		t.Errorf("got %v ok=%v", m, ok)
	}
}

func TestNextMatchForwardFindsStrictlyAfterCursor(t *testing.T) {
	buf := buffer.FromString("foo bar foo")
	matches := FindAll(buf, "foo")
	m, ok := NextMatch(matches, buffer.Position{Line: 0, Column: 0}, true)
	if !ok || m.Start.Column != 8 {
		t.Errorf("got %v ok=%v", m, ok)
	}
}

func TestNextMatchBackwardWrapsToEnd(t *testing.T) {
	buf := buffer.FromString("foo bar foo")
	matches := FindAll(buf, "foo")
	m, ok := NextMatch(matches, buffer.Position{Line: 0, Column: 0}, false)
	if !ok || m.Start.Column != 8 {
		t.Errorf("got %v ok=%v", m, ok)
	}
}

func TestNextMatchOnEmptySetFails(t *testing.T) {
	_, ok := NextMatch(nil, buffer.Position{}, true)
	if ok {
		t.Errorf("expected no match")
	}
}

func TestWordUnderCursorExpandsBothDirections(t *testing.T) {
	buf := buffer.FromString("let foo_bar = 1")
	word, start, end, ok := WordUnderCursor(buf, buffer.Position{Line: 0, Column: 6})
	if !ok || word != "foo_bar" || start != 4 || end != 11 {
		t.Errorf("got %q [%d,%d) ok=%v", word, start, end, ok)
	}
}

func TestWordUnderCursorOnNonWordCharFails(t *testing.T) {
	buf := buffer.FromString("a = b")
	_, _, _, ok := WordUnderCursor(buf, buffer.Position{Line: 0, Column: 2})
	if ok {
		t.Errorf("expected no word under cursor on '='")
	}
}
