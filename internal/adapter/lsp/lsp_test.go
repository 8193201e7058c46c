package lsp

import "testing"

const samplePayload = `{
	"diagnostics": [
		{
			"range": {"start": {"line": 0, "character": 2}, "end": {"line": 0, "character": 5}},
			"message": "unused variable",
			"severity": 2
		}
	]
}`

func TestDiagnosticsAtReturnsCoveringDiagnostic(t *testing.T) {
	p := NewProvider()
	p.Ingest(samplePayload)

	got := p.DiagnosticsAt(0, 3)
	if len(got) != 1 {
		t.Fatalf("DiagnosticsAt(0,3) returned %d diagnostics, want 1", len(got))
	}
	if got[0].Message != "unused variable" || got[0].Severity != SeverityWarning {
		t.Fatalf("DiagnosticsAt(0,3) = %+v, want message=unused variable severity=warning", got[0])
	}
}

func TestDiagnosticsAtOutsideRangeReturnsNothing(t *testing.T) {
	p := NewProvider()
	p.Ingest(samplePayload)

	if got := p.DiagnosticsAt(1, 0); len(got) != 0 {
		t.Fatalf("DiagnosticsAt(1,0) = %v, want none", got)
	}
}

func TestDiagnosticsAtWithNoIngestedPayloadReturnsNil(t *testing.T) {
	p := NewProvider()
	if got := p.DiagnosticsAt(0, 0); got != nil {
		t.Fatalf("DiagnosticsAt() = %v, want nil", got)
	}
}

func TestEncodeEditIntentProducesExpectedFields(t *testing.T) {
	payload, err := EncodeEditIntent(3, 7, "foo")
	if err != nil {
		t.Fatalf("EncodeEditIntent() error = %v", err)
	}
	for _, want := range []string{`"line":3`, `"character":7`, `"newText":"foo"`} {
		if !contains(payload, want) {
			t.Fatalf("EncodeEditIntent() = %s, want substring %q", payload, want)
		}
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
