package editor

import (
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/search"
	"github.com/kiahjh/raven/internal/vim/executor"
)

// searchPromptState accumulates a / or ? pattern a keystroke at a time.
// The vim grammar parser has no notion of this sub-mode at all; it is
// owned entirely by the editor layer and bypasses parser.Parse and
// executor.Apply while active.
type searchPromptState struct {
	forward bool
	pattern []rune
}

// SearchInfo reports the editor's current search memory for a status
// line: the last committed pattern, its direction, the 0-based index of
// the nearest match starting at or before the cursor (-1 when there is
// none), and the total number of matches found.
type SearchInfo struct {
	Pattern string
	Forward bool
	Index   int
	Total   int
}

func (e *Editor) feedSearchPromptKey(r rune) CoreEvent {
	switch r {
	case KeyEscape:
		e.search = nil
		return Executed{}
	case KeyEnter:
		return e.commitSearchPrompt()
	case KeyBackspace:
		if len(e.search.pattern) == 0 {
			e.search = nil
			return Executed{}
		}
		e.search.pattern = e.search.pattern[:len(e.search.pattern)-1]
		return Pending{}
	default:
		e.search.pattern = append(e.search.pattern, r)
		return Pending{}
	}
}

func (e *Editor) commitSearchPrompt() CoreEvent {
	forward := e.search.forward
	pattern := string(e.search.pattern)
	e.search = nil
	if pattern == "" {
		return Error{Kind: "empty-pattern"}
	}

	matches := search.FindAll(e.state.Buf, pattern)
	e.state.Search = executor.SearchState{Pattern: pattern, Forward: forward, Matches: matches}
	if len(matches) == 0 {
		return Error{Kind: "no-match"}
	}

	match, ok := search.NextMatch(matches, e.state.Cur.Pos, forward)
	if !ok {
		return Error{Kind: "no-match"}
	}
	e.state.Cur = cursor.New(match.Start)
	return Executed{}
}

// SearchInfo reports the editor's current search memory.
func (e *Editor) SearchInfo() SearchInfo {
	s := e.state.Search
	return SearchInfo{
		Pattern: s.Pattern,
		Forward: s.Forward,
		Index:   s.Index(e.state.Cur.Pos),
		Total:   len(s.Matches),
	}
}
