package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange  = errors.New("line out of range")
	ErrRangeInvalid    = errors.New("invalid range")
	ErrPositionInvalid = errors.New("position outside buffer")
)

// LineEnding specifies the line ending style used when joining FullText.
// The buffer always stores lines split on any of \n, \r\n, or \r; the
// ending only governs how FullText reassembles them.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// Sequence returns the literal line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// String returns a human-readable representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Buffer is an ordered sequence of lines. It is immutable by convention:
// every mutating method returns a new *Buffer and leaves the receiver
// untouched, so History can hold old values without copying them
// defensively at the call site. A Buffer always has at least one line, and
// no line ever contains a newline character.
type Buffer struct {
	lines      []string
	tabWidth   int
	lineEnding LineEnding
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width (used by smart-indent only).
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithLineEnding sets the line ending FullText uses to join lines.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) { b.lineEnding = le }
}

// New returns an empty buffer: a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{lines: []string{""}, tabWidth: 4, lineEnding: LineEndingLF}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString returns a buffer containing the given text, split on any
// combination of \n, \r\n, and \r. An empty string produces one empty line.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	normalised := strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
	b.lines = strings.Split(normalised, "\n")
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	return b
}

// clone returns a shallow copy of b with its own backing line slice, so
// mutating the copy's slice never affects b.
func (b *Buffer) clone() *Buffer {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return &Buffer{lines: lines, tabWidth: b.tabWidth, lineEnding: b.lineEnding}
}

// LineCount returns the number of lines in the buffer. Always >= 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of line i, or "" if i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineLength returns the byte length of line i, or 0 if i is out of range.
func (b *Buffer) LineLength(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// FullText returns the buffer content as a single string, joined with the
// buffer's configured line ending.
func (b *Buffer) FullText() string {
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// TabWidth returns the buffer's configured tab width.
func (b *Buffer) TabWidth() int { return b.tabWidth }

// Clamp returns a Position guaranteed to lie inside the buffer:
// 0 <= Line < LineCount(), and 0 <= Column <= LineLength(Line). This is
// the "insert-safe" clamp: Column may equal the line length so end-of-line
// insertions are representable. Mode-specific clamping (normal mode
// forbids Column == LineLength on a non-empty line) lives in the cursor
// package, one layer up.
func (b *Buffer) Clamp(pos Position) Position {
	line := pos.Line
	if line < 0 {
		line = 0
	}
	if last := len(b.lines) - 1; line > last {
		line = last
	}
	col := pos.Column
	if col < 0 {
		col = 0
	}
	if max := len(b.lines[line]); col > max {
		col = max
	}
	return Position{Line: line, Column: col}
}
