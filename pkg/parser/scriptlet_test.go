package parser

import (
	"reflect"
	"testing"

	"github.com/yaklabco/aglint/pkg/ast"
)

func TestParseAdgUboScriptletBody_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		callText string
		dialect  ast.ScriptletDialect
	}{
		{"quoted name, quoted args", `('abort-on-property-read', 'foo.bar')`, ast.AdgScriptletDialect},
		{"double quoted args", `("set-constant", "foo", "bar")`, ast.UboScriptletDialect},
		{"regex arg", `(log, /^foo/)`, ast.AdgScriptletDialect},
		{"trailing semicolon", `('no-op');`, ast.AdgScriptletDialect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := ParseAdgUboScriptletBody(tt.callText, tt.dialect)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(body.Calls) != 1 {
				t.Fatalf("Calls = %#v, want exactly one", body.Calls)
			}

			got := GenerateAdgUboScriptletCall(body.Calls[0])
			if body.TrailingSemi {
				got += ";"
			}
			if got != tt.callText {
				t.Errorf("round-trip = %q, want %q", got, tt.callText)
			}
		})
	}
}

func TestParseAdgUboScriptletBody_Malformed(t *testing.T) {
	tests := []string{
		"missing-open-paren)",
		"(missing-close-paren",
		"()",
	}

	for _, callText := range tests {
		if _, err := ParseAdgUboScriptletBody(callText, ast.AdgScriptletDialect); err == nil {
			t.Errorf("ParseAdgUboScriptletBody(%q) = nil error, want error", callText)
		}
	}
}

func TestAbpScriptletBody_RoundTrip(t *testing.T) {
	tests := []string{
		"abort-on-property-read foo.bar",
		"abort-on-property-read foo.bar; abort-on-property-read baz.qux",
		"json-prune 'ads.config' '' 'ads.config.type'",
	}

	for _, body := range tests {
		parsed, err := ParseAbpScriptletBody(body)
		if err != nil {
			t.Fatalf("ParseAbpScriptletBody(%q): %v", body, err)
		}
		if got := GenerateAbpScriptletBody(parsed); got != body {
			t.Errorf("round-trip = %q, want %q", got, body)
		}
	}
}

// Regression test for the ABP scriptlet name-quoting round-trip bug: a
// quoted call name must come back out quoted, not raw.
func TestAbpScriptletBody_QuotedNameRoundTrips(t *testing.T) {
	const body = `'abort-on-property-read' foo.bar`

	parsed, err := ParseAbpScriptletBody(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Calls[0].Name != "abort-on-property-read" {
		t.Errorf("Name = %q, want %q", parsed.Calls[0].Name, "abort-on-property-read")
	}
	if parsed.Calls[0].NameQuote != ast.SingleQuoted {
		t.Errorf("NameQuote = %v, want SingleQuoted", parsed.Calls[0].NameQuote)
	}

	if got := GenerateAbpScriptletBody(parsed); got != body {
		t.Errorf("GenerateAbpScriptletBody() = %q, want %q", got, body)
	}
}

func TestAbpScriptletBody_UnquotedNameStaysUnquoted(t *testing.T) {
	const body = "abort-on-property-read foo.bar"

	parsed, err := ParseAbpScriptletBody(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Calls[0].NameQuote != ast.Unquoted {
		t.Errorf("NameQuote = %v, want Unquoted", parsed.Calls[0].NameQuote)
	}
}

func TestAbpScriptletBody_NoCalls(t *testing.T) {
	if _, err := ParseAbpScriptletBody("   "); err == nil {
		t.Error("expected error for a body with no calls")
	}
}

func TestClassifyScriptletArg(t *testing.T) {
	tests := []struct {
		raw       string
		wantType  ast.QuoteType
		wantValue string
	}{
		{"'foo'", ast.SingleQuoted, "foo"},
		{`"foo"`, ast.DoubleQuoted, "foo"},
		{"/^foo$/", ast.RegExp, "^foo$"},
		{"foo", ast.Unquoted, "foo"},
	}

	for _, tt := range tests {
		got := classifyScriptletArg(tt.raw)
		want := ast.ScriptletParam{Type: tt.wantType, Value: tt.wantValue}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("classifyScriptletArg(%q) = %#v, want %#v", tt.raw, got, want)
		}
	}
}
