// Package editor is the core's single external-facing type: it owns a
// vim-style keystroke grammar parser and a command executor, and exposes
// them as one FeedKey entry point plus a set of read-only queries. Nothing
// outside this package ever touches internal/vim/parser or
// internal/vim/executor directly.
package editor

import (
	"github.com/kiahjh/raven/internal/adapter/highlight"
	"github.com/kiahjh/raven/internal/adapter/lsp"
	"github.com/kiahjh/raven/internal/engine/buffer"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/vim/executor"
	"github.com/kiahjh/raven/internal/vim/parser"
)

// Control bytes FeedKey recognises that the vim grammar itself does not
// model, since the parser only ever runs against normal-mode keystrokes.
const (
	KeyEscape    = rune(27)
	KeyEnter     = rune(13)
	KeyBackspace = rune(127)
)

// DiagnosticsProvider supplies diagnostics for a buffer position. An
// *lsp.Provider satisfies this; it is an interface here so a collaborator
// can plug in any source without the editor importing a concrete client.
type DiagnosticsProvider interface {
	DiagnosticsAt(line, col int) []lsp.Diagnostic
}

// Editor is the full state machine: buffer, cursor, mode, and the
// in-progress parse/search-prompt state that sits above them.
type Editor struct {
	state   *executor.State
	session parser.Session

	pendingKeys []rune
	search      *searchPromptState

	highlighter highlight.Provider
	diagnostics DiagnosticsProvider

	execOpts []executor.Option
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithIndentUnit sets the string the >/< operators and insert-mode
// newline indentation use. The default is four spaces.
func WithIndentUnit(unit string) Option {
	return func(e *Editor) {
		e.execOpts = append(e.execOpts, executor.WithIndentUnit(unit))
	}
}

// WithHistoryLimit bounds the undo stack depth.
func WithHistoryLimit(limit int) Option {
	return func(e *Editor) {
		e.execOpts = append(e.execOpts, executor.WithHistoryLimit(limit))
	}
}

// WithHighlightProvider injects a syntax-highlighting collaborator.
// Without one, HighlightTokensForLine always returns nil.
func WithHighlightProvider(p highlight.Provider) Option {
	return func(e *Editor) { e.highlighter = p }
}

// WithDiagnosticsProvider injects a diagnostics collaborator. Without
// one, DiagnosticsAt always returns nil.
func WithDiagnosticsProvider(p DiagnosticsProvider) Option {
	return func(e *Editor) { e.diagnostics = p }
}

// New returns an Editor loaded with text, in normal mode, with empty
// undo history.
func New(text string, opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	e.state = executor.New(buffer.FromString(text), e.execOpts...)
	return e
}

// Load replaces the buffer content, resets cursor/mode/selection, clears
// undo history, and cancels any in-progress parse or search prompt.
func (e *Editor) Load(text string) {
	e.state.Load(buffer.FromString(text))
	e.session = parser.Session{}
	e.pendingKeys = nil
	e.search = nil
}

// SnapshotText returns the full buffer content as one string.
func (e *Editor) SnapshotText() string {
	return e.state.Buf.FullText()
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() buffer.Position {
	return e.state.Cur.Pos
}

// Mode returns the current editing mode.
func (e *Editor) Mode() cursor.Mode {
	return e.state.Mode
}

// VisualRange returns the active visual selection's resolved buffer
// range, or ok=false if no selection is active.
func (e *Editor) VisualRange() (buffer.Range, bool) {
	return executor.VisualRange(e.state)
}

// Line returns the text of line i, or "" if out of range.
func (e *Editor) Line(i int) string {
	return e.state.Buf.Line(i)
}

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() int {
	return e.state.Buf.LineCount()
}

// PendingInput returns the keys accumulated so far in an incomplete
// sequence (a count prefix, an operator awaiting its motion, an open
// search prompt), for a status line to echo back to the user.
func (e *Editor) PendingInput() string {
	if e.search != nil {
		prefix := '/'
		if !e.search.forward {
			prefix = '?'
		}
		return string(prefix) + string(e.search.pattern)
	}
	return string(e.pendingKeys)
}

// DiagnosticsAt returns the diagnostics covering (line, col), or nil if no
// DiagnosticsProvider was injected.
func (e *Editor) DiagnosticsAt(line, col int) []lsp.Diagnostic {
	if e.diagnostics == nil {
		return nil
	}
	return e.diagnostics.DiagnosticsAt(line, col)
}

// HighlightTokensForLine returns the highlight tokens for line i, or nil
// if no highlight.Provider was injected.
func (e *Editor) HighlightTokensForLine(i int) []highlight.Token {
	if e.highlighter == nil {
		return nil
	}
	return e.highlighter.TokensForLine(e.state.Buf.Line(i), i)
}

// FeedKey is the single entry point for driving the editor: r is either a
// printable rune or one of the editor's control-byte constants. It
// returns the CoreEvent describing what, if anything, happened.
func (e *Editor) FeedKey(r rune) CoreEvent {
	if e.search != nil {
		return e.feedSearchPromptKey(r)
	}
	if e.state.Mode == cursor.ModeInsert {
		return e.feedInsertKey(r)
	}
	if r == KeyEscape {
		res := executor.Escape(e.state)
		e.session = parser.Session{}
		e.pendingKeys = nil
		return eventFromResult(res)
	}
	if r == '/' || r == '?' {
		e.search = &searchPromptState{forward: r == '/'}
		return SearchPrompt{Forward: r == '/'}
	}

	result := parser.Parse(string(r), e.session, parser.Options{InVisualMode: e.state.Visual != nil})
	switch {
	case result.Err != nil:
		e.session = result.NewSession
		e.pendingKeys = nil
		return Error{Kind: "invalid-sequence"}
	case !result.Complete:
		e.session = result.NewSession
		e.pendingKeys = append(e.pendingKeys, r)
		return Pending{}
	default:
		e.session = result.NewSession
		e.pendingKeys = nil
		return eventFromResult(executor.Apply(e.state, result.Command))
	}
}

func (e *Editor) feedInsertKey(r rune) CoreEvent {
	switch r {
	case KeyEscape:
		return eventFromResult(executor.Escape(e.state))
	case KeyEnter:
		return eventFromResult(executor.InsertNewline(e.state))
	case KeyBackspace:
		return eventFromResult(executor.Backspace(e.state))
	default:
		return eventFromResult(executor.InsertRune(e.state, r))
	}
}

func eventFromResult(res executor.Result) CoreEvent {
	if res.Viewport != executor.ViewportNone {
		return ViewportHint{Kind: viewportKind(res.Viewport)}
	}
	return Executed{
		Modified:      res.Modified,
		ModeChanged:   res.ModeChanged,
		BufferChanged: res.BufferChanged,
	}
}

func viewportKind(v executor.Viewport) ViewportKind {
	switch v {
	case executor.ViewportTop:
		return ViewportTop
	case executor.ViewportBottom:
		return ViewportBottom
	default:
		return ViewportCenter
	}
}
