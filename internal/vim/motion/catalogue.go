// Package motion implements the vim-style motion catalogue: pure functions
// from (buffer, cursor, count) to a target Position, each tagged with
// whether it is linewise and whether it is inclusive of its target.
package motion

// Name identifies a motion for lookup and for parser/executor dispatch.
type Name uint8

const (
	Left Name = iota
	Right
	Up
	Down
	WordForward
	WordBackward
	WordEnd
	BigWordForward
	BigWordBackward
	BigWordEnd
	LineStart
	FirstNonBlank
	LineEnd
	GotoLine
	GotoFirstLine
	ParagraphForward
	ParagraphBackward
	MatchingBracket
	GotoPercent
	FindCharForward
	FindCharBackward
	TillCharForward
	TillCharBackward
	RepeatFind
	RepeatFindReverse
)

// Spec describes a motion's static properties: whether operators applied
// through it extend to whole lines, and whether the target position
// itself is included in any resulting operator range.
type Spec struct {
	Name      Name
	Key       rune
	Linewise  bool
	Inclusive bool
}

var catalogue = map[rune]Spec{
	'h': {Name: Left, Key: 'h'},
	'l': {Name: Right, Key: 'l', Inclusive: true},
	'j': {Name: Down, Key: 'j', Linewise: true},
	'k': {Name: Up, Key: 'k', Linewise: true},
	'w': {Name: WordForward, Key: 'w'},
	'W': {Name: BigWordForward, Key: 'W'},
	'b': {Name: WordBackward, Key: 'b'},
	'B': {Name: BigWordBackward, Key: 'B'},
	'e': {Name: WordEnd, Key: 'e', Inclusive: true},
	'E': {Name: BigWordEnd, Key: 'E', Inclusive: true},
	'0': {Name: LineStart, Key: '0'},
	'^': {Name: FirstNonBlank, Key: '^'},
	'$': {Name: LineEnd, Key: '$', Inclusive: true},
	'G': {Name: GotoLine, Key: 'G', Linewise: true},
	'{': {Name: ParagraphBackward, Key: '{', Linewise: true},
	'}': {Name: ParagraphForward, Key: '}', Linewise: true},
	'%': {Name: MatchingBracket, Key: '%', Inclusive: true},
	'f': {Name: FindCharForward, Key: 'f', Inclusive: true},
	'F': {Name: FindCharBackward, Key: 'F', Inclusive: true},
	't': {Name: TillCharForward, Key: 't', Inclusive: true},
	'T': {Name: TillCharBackward, Key: 'T', Inclusive: true},
	';': {Name: RepeatFind, Key: ';', Inclusive: true},
	',': {Name: RepeatFindReverse, Key: ',', Inclusive: true},
}

// gCatalogue holds the g-prefixed motions; currently only gg.
var gCatalogue = map[rune]Spec{
	'g': {Name: GotoFirstLine, Key: 'g', Linewise: true},
}

// Lookup returns the Spec for a bare motion key and whether it exists.
func Lookup(key rune) (Spec, bool) {
	s, ok := catalogue[key]
	return s, ok
}

// LookupG returns the Spec for a g-prefixed motion key and whether it exists.
func LookupG(key rune) (Spec, bool) {
	s, ok := gCatalogue[key]
	return s, ok
}

// IsCharSearch reports whether key starts an f/F/t/T find-character motion,
// which requires one more keystroke (the target character).
func IsCharSearch(key rune) bool {
	switch key {
	case 'f', 'F', 't', 'T':
		return true
	}
	return false
}
