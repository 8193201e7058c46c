package register

// Content is the text an operator places into a register, plus whether it
// should be pasted linewise (p opens a new line) or characterwise (p
// inserts after the cursor).
type Content struct {
	Text     string
	Linewise bool
}

// Store is the session's register store. Every name resolves to the one
// unnamed slot; IsValidName exists only so the parser can tell a plausible
// register-name character from garbage input.
type Store struct {
	unnamed Content
}

// New returns an empty register store.
func New() *Store {
	return &Store{}
}

// Set stores content under name. name is accepted but ignored: it always
// resolves to the unnamed register.
func (s *Store) Set(name rune, content Content) {
	s.unnamed = content
}

// Get returns the content stored under name, which always resolves to the
// unnamed register.
func (s *Store) Get(name rune) Content {
	return s.unnamed
}

// IsValidName reports whether name is a character the grammar recognises
// as a register selector ("a, "0, ""), independent of whether that
// register is actually backed by distinct storage.
func IsValidName(name rune) bool {
	switch {
	case name == '"':
		return true
	case name >= 'a' && name <= 'z':
		return true
	case name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	default:
		return false
	}
}
