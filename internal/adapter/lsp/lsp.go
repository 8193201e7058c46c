// Package lsp adapts LSP-shaped JSON into the core's diagnostics query and
// encodes outbound edit intents. There is no LSP client or transport here
// (no sockets, no JSON-RPC framing): a collaborator outside the core is
// responsible for talking to a language server and handing this package
// the resulting payloads.
package lsp

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Severity mirrors the LSP DiagnosticSeverity enum's ordering (1-indexed
// in the wire format; Unknown fills the zero value).
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// Diagnostic is one decoded LSP diagnostic, positions translated to the
// core's zero-based line/column convention.
type Diagnostic struct {
	Line     int
	Col      int
	EndLine  int
	EndCol   int
	Severity Severity
	Message  string
}

// Provider holds the most recently ingested diagnostics payload and
// answers point queries against it.
type Provider struct {
	raw string
}

// NewProvider returns a Provider with no diagnostics ingested yet.
func NewProvider() *Provider {
	return &Provider{}
}

// Ingest stores payload, a JSON document shaped like
// {"diagnostics":[{"range":{"start":{...},"end":{...}},"message":...,"severity":...}]},
// replacing whatever was previously ingested.
func (p *Provider) Ingest(payload string) {
	p.raw = payload
}

// DiagnosticsAt returns every ingested diagnostic whose range covers
// (line, col).
func (p *Provider) DiagnosticsAt(line, col int) []Diagnostic {
	if p.raw == "" {
		return nil
	}
	var out []Diagnostic
	gjson.Get(p.raw, "diagnostics").ForEach(func(_, d gjson.Result) bool {
		diag := Diagnostic{
			Line:     int(d.Get("range.start.line").Int()),
			Col:      int(d.Get("range.start.character").Int()),
			EndLine:  int(d.Get("range.end.line").Int()),
			EndCol:   int(d.Get("range.end.character").Int()),
			Severity: Severity(d.Get("severity").Int()),
			Message:  d.Get("message").String(),
		}
		if covers(diag, line, col) {
			out = append(out, diag)
		}
		return true
	})
	return out
}

func covers(d Diagnostic, line, col int) bool {
	if line < d.Line || line > d.EndLine {
		return false
	}
	if line == d.Line && col < d.Col {
		return false
	}
	if line == d.EndLine && col > d.EndCol {
		return false
	}
	return true
}

// EncodeEditIntent builds the minimal outbound payload describing a
// single-point text insertion, for a collaborator to forward to a
// language server as part of a textDocument/didChange-style request.
func EncodeEditIntent(line, col int, newText string) (string, error) {
	payload := ""
	var err error
	payload, err = sjson.Set(payload, "position.line", line)
	if err != nil {
		return "", fmt.Errorf("lsp: encode edit intent: %w", err)
	}
	payload, err = sjson.Set(payload, "position.character", col)
	if err != nil {
		return "", fmt.Errorf("lsp: encode edit intent: %w", err)
	}
	payload, err = sjson.Set(payload, "newText", newText)
	if err != nil {
		return "", fmt.Errorf("lsp: encode edit intent: %w", err)
	}
	return payload, nil
}
