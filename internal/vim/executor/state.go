package executor

import (
	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/engine/history"
	"github.com/kiahjh/raven/internal/search"
	"github.com/kiahjh/raven/internal/vim/register"
)

const defaultIndentUnit = "    "

// SearchState is the editor's memory of the most recent search: the
// pattern, its direction, and the matches it produced, so n/N/*/# can jump
// without recomputing find_all on every keystroke.
type SearchState struct {
	Pattern string
	Forward bool
	Matches []search.Match
}

// Index returns the index of the nearest match starting at or before
// cursor, or -1 if there is none (including when there are no matches),
// for SearchInfo-style reporting.
func (s SearchState) Index(cursor buffer.Position) int {
	idx := -1
	for i, m := range s.Matches {
		if m.Start.After(cursor) {
			break
		}
		idx = i
	}
	return idx
}

// State is the full mutable state a command executes against. Buf and Cur
// are replaced wholesale on every mutation (Buffer and Cursor are immutable
// value/reference types); History, Registers hold their own internal
// mutable state since they are explicitly exempted from the immutable-copy
// discipline (spec's concurrency model: single-threaded, no locks needed).
type State struct {
	Buf    *buffer.Buffer
	Cur    cursor.Cursor
	Mode   cursor.Mode
	Visual *cursor.Visual

	History    *history.History
	Registers  *register.Store
	Search     SearchState
	IndentUnit string
}

// Option configures a State at construction time.
type Option func(*State)

// WithIndentUnit sets the string inserted/removed by the >/< operators.
// The default is four spaces.
func WithIndentUnit(unit string) Option {
	return func(s *State) {
		if unit != "" {
			s.IndentUnit = unit
		}
	}
}

// WithHistoryLimit bounds the undo stack depth. <= 0 uses history's default
// of 1000.
func WithHistoryLimit(limit int) Option {
	return func(s *State) {
		s.History = history.New(limit)
	}
}

// New returns a State positioned at the start of buf, in normal mode, with
// empty history and registers.
func New(buf *buffer.Buffer, opts ...Option) *State {
	s := &State{
		Buf:        buf,
		Cur:        cursor.New(buffer.Position{}),
		Mode:       cursor.ModeNormal,
		History:    history.New(0),
		Registers:  register.New(),
		IndentUnit: defaultIndentUnit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the buffer content, resets the cursor, mode, and visual
// selection, and clears undo history, per the core's "load clears history"
// contract.
func (s *State) Load(buf *buffer.Buffer) {
	s.Buf = buf
	s.Cur = cursor.New(buffer.Position{})
	s.Mode = cursor.ModeNormal
	s.Visual = nil
	s.History.Clear()
}

func (s *State) clampCursor() {
	s.Cur = s.Cur.ClampForMode(s.Buf, s.Mode)
}

func (s *State) pushHistory() {
	s.History.Push(s.Buf, s.Cur)
}
