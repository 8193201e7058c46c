package parser

// operators is the set of operator keys; membership is the check that
// matters, the value is unused beyond presence.
var operators = map[rune]bool{
	'd': true, 'c': true, 'y': true, '>': true, '<': true,
}

func isOperator(r rune) bool {
	return operators[r]
}

// gOperators is the set of second keys of the g-prefixed case-changing
// operators (gu/gU/g~); membership is the check that matters. These share
// the operator dispatch machinery in stepOperator (a motion, text object,
// or doubled key completes them) even though they are reached through
// stateGPrefix rather than directly from stateInitial.
var gOperators = map[rune]bool{
	'u': true, 'U': true, '~': true,
}

func isGOperator(r rune) bool {
	return gOperators[r]
}

// simpleActions is the fixed, motion-less action set from the grammar:
// every one of these is a complete command by itself (r and z need a
// further key, handled as their own pending states).
var simpleActions = map[rune]string{
	'i': "insert",
	'I': "insert-bol",
	'a': "append",
	'A': "append-eol",
	'o': "open-below",
	'O': "open-above",
	'x': "delete-char",
	'X': "delete-char-before",
	's': "substitute-char",
	'S': "substitute-line",
	'D': "delete-to-eol",
	'C': "change-to-eol",
	'J': "join-lines",
	'~': "toggle-case",
	'u': "undo",
	'p': "paste-after",
	'P': "paste-before",
	'v': "visual-char",
	'V': "visual-line",
	'n': "search-next",
	'N': "search-previous",
	'*': "search-word-forward",
	'#': "search-word-backward",
}

func isSimpleAction(r rune) (string, bool) {
	name, ok := simpleActions[r]
	return name, ok
}

// zActions maps the second key of a z-prefixed viewport command to its
// action name.
var zActions = map[rune]string{
	'z': "scroll-center",
	't': "scroll-top",
	'b': "scroll-bottom",
}
