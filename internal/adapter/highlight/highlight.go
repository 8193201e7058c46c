// Package highlight declares the read-only interface a syntax-highlighting
// collaborator implements to annotate buffer lines with token spans. No
// tree-sitter-style parser lives in this module; a real implementation is
// supplied by a collaborator outside the core and injected into the editor.
package highlight

// Token is one highlighted span within a single line, in byte columns
// matching buffer.Position.Column.
type Token struct {
	StartCol int
	EndCol   int
	Kind     string
}

// Provider produces highlight tokens for a single line of text. Kind is an
// open vocabulary (e.g. "keyword", "string", "comment"); the core never
// interprets it, only forwards it to callers of HighlightTokensForLine.
type Provider interface {
	TokensForLine(line string, lineIndex int) []Token
}
