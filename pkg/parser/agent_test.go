package parser

import (
	"reflect"
	"testing"

	"github.com/yaklabco/aglint/pkg/ast"
)

// S1 from the core scenario table: two agents, one versioned, one not.
func TestTryParseAgent_S1(t *testing.T) {
	const line = "[Adblock Plus 2.0; AdGuard]"

	a, ok, err := TryParseAgent(line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}

	want := []ast.AgentEntry{
		{Adblock: "Adblock Plus", Version: "2.0", HasVersion: true},
		{Adblock: "AdGuard"},
	}
	if !reflect.DeepEqual(a.Agents, want) {
		t.Errorf("Agents = %#v, want %#v", a.Agents, want)
	}

	if got := GenerateAgent(a); got != line {
		t.Errorf("GenerateAgent() = %q, want %q", got, line)
	}
}

func TestTryParseAgent_NotBracketShaped(t *testing.T) {
	for _, line := range []string{
		"! just a comment",
		"##.banner",
		"",
		"[unterminated",
	} {
		if _, ok, err := TryParseAgent(line, 1); ok || err != nil {
			t.Errorf("TryParseAgent(%q) = ok=%v err=%v, want ok=false err=nil", line, ok, err)
		}
	}
}

func TestTryParseAgent_MarkerVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bang marker", "! [uBlock Origin]"},
		{"hash marker", "# [uBlock Origin]"},
		{"no marker", "[uBlock Origin]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok, err := TryParseAgent(tt.line, 1)
			if err != nil || !ok {
				t.Fatalf("TryParseAgent(%q) = ok=%v err=%v", tt.line, ok, err)
			}
			if len(a.Agents) != 1 || a.Agents[0].Adblock != "uBlock Origin" {
				t.Errorf("Agents = %#v", a.Agents)
			}
		})
	}
}
