package editor

// CoreEvent is the outcome of a single FeedKey call. It is a closed sum
// type: callers switch on the concrete type to decide how to react.
type CoreEvent interface {
	isCoreEvent()
}

// Pending reports that the key extended an in-progress sequence (a count
// prefix, an operator awaiting its motion, an unterminated f/F/t/T) with
// no observable effect yet.
type Pending struct{}

func (Pending) isCoreEvent() {}

// Executed reports that a command ran to completion.
type Executed struct {
	Modified      bool
	ModeChanged   bool
	BufferChanged bool
}

func (Executed) isCoreEvent() {}

// ViewportKind names the three re-centring signals zz/zt/zb emit.
type ViewportKind uint8

const (
	ViewportCenter ViewportKind = iota
	ViewportTop
	ViewportBottom
)

// ViewportHint reports that a command requested a scroll re-centring; the
// core has no viewport geometry of its own to act on this.
type ViewportHint struct {
	Kind ViewportKind
}

func (ViewportHint) isCoreEvent() {}

// SearchPrompt reports that / or ? was pressed and the editor is now
// accumulating a search pattern; Forward distinguishes the two directions.
type SearchPrompt struct {
	Forward bool
}

func (SearchPrompt) isCoreEvent() {}

// Error reports that a key could not extend any recognised sequence, or
// that a search prompt was committed with an empty pattern or with no
// matches. Kind is a short, stable machine-readable label
// ("invalid-sequence", "empty-pattern", "no-match"), not a user-facing
// message.
type Error struct {
	Kind string
}

func (Error) isCoreEvent() {}
