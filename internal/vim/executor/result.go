package executor

// Viewport names the three viewport-positioning signals zz/zt/zb emit.
// The executor never computes scroll geometry itself; it only reports
// which kind of re-centring the display layer should perform.
type Viewport uint8

const (
	ViewportNone Viewport = iota
	ViewportCenter
	ViewportTop
	ViewportBottom
)

// Result reports what a command changed, for the editor layer to translate
// into a CoreEvent.
type Result struct {
	Modified      bool // buffer content changed
	ModeChanged   bool
	BufferChanged bool // true whenever Modified is true; kept distinct so
	// future non-text buffer metadata changes (e.g. line ending) could set
	// it without implying Modified.
	Viewport Viewport
	Err      error
}
