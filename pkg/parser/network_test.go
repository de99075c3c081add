package parser

import (
	"reflect"
	"testing"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/syntax"
)

// S3 from the core scenario table: an exception rule whose modifier list
// contains regex-valued modifiers with escaped '$' and '/' inside the
// regex bodies, which must not be mistaken for the modifier separator or
// the comma splitter.
func TestTryParseNetwork_S3(t *testing.T) {
	const line = `@@/example/$m1,m2=v2,m3=/^r3\$/,m4=/r4\/r4$/,m5=/^r5\$/`

	rule, ok, err := TryParseNetwork(line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}

	n, isBasic := rule.(*ast.BasicNetwork)
	if !isBasic {
		t.Fatalf("rule type = %T, want *ast.BasicNetwork", rule)
	}

	if !n.Exception {
		t.Error("Exception = false, want true")
	}
	if n.Pattern != "/example/" {
		t.Errorf("Pattern = %q, want %q", n.Pattern, "/example/")
	}

	want := []ast.NetworkModifier{
		{Name: "m1"},
		{Name: "m2", Value: "v2", HasValue: true},
		{Name: "m3", Value: `/^r3\$/`, HasValue: true},
		{Name: "m4", Value: `/r4\/r4$/`, HasValue: true},
		{Name: "m5", Value: `/^r5\$/`, HasValue: true},
	}
	if !reflect.DeepEqual(n.Modifiers, want) {
		t.Errorf("Modifiers = %#v, want %#v", n.Modifiers, want)
	}

	if got := GenerateBasicNetwork(n); got != line {
		t.Errorf("GenerateBasicNetwork() = %q, want %q", got, line)
	}
}

// S4 from the core scenario table: an ADG removeheader network rule,
// reclassified from BasicNetwork shape into RemoveHeaderNetwork.
func TestTryParseNetwork_S4(t *testing.T) {
	const line = "||example.org^$removeheader=header-name"

	rule, ok, err := TryParseNetwork(line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}

	rh, isRH := rule.(*ast.RemoveHeaderNetwork)
	if !isRH {
		t.Fatalf("rule type = %T, want *ast.RemoveHeaderNetwork", rule)
	}

	if rh.Exception {
		t.Error("Exception = true, want false")
	}
	if rh.Pattern != "||example.org^" {
		t.Errorf("Pattern = %q, want %q", rh.Pattern, "||example.org^")
	}
	if rh.Header != "header-name" {
		t.Errorf("Header = %q, want %q", rh.Header, "header-name")
	}
	if rh.RHSyntax != ast.RemoveHeaderAdg {
		t.Errorf("RHSyntax = %v, want RemoveHeaderAdg", rh.RHSyntax)
	}
	if rh.Syntax() != syntax.Adg {
		t.Errorf("Syntax() = %v, want Adg", rh.Syntax())
	}

	if got := GenerateRemoveHeaderNetwork(rh); got != line {
		t.Errorf("GenerateRemoveHeaderNetwork() = %q, want %q", got, line)
	}
}

func TestTryParseNetwork_RemoveHeaderMissingValue(t *testing.T) {
	_, ok, err := TryParseNetwork("||example.org^$removeheader", 1)
	if !ok {
		t.Fatal("expected ok=true (modifier shape matched)")
	}
	if err == nil {
		t.Error("expected error for removeheader modifier with no value")
	}
}

func TestTryParseNetwork_NoModifiers(t *testing.T) {
	const line = "||example.com^"

	rule, ok, err := TryParseNetwork(line, 1)
	if err != nil || !ok {
		t.Fatalf("TryParseNetwork = ok=%v err=%v", ok, err)
	}

	n := rule.(*ast.BasicNetwork)
	if n.Pattern != line || len(n.Modifiers) != 0 {
		t.Errorf("Pattern=%q Modifiers=%#v", n.Pattern, n.Modifiers)
	}
	if got := GenerateBasicNetwork(n); got != line {
		t.Errorf("GenerateBasicNetwork() = %q, want %q", got, line)
	}
}

func TestTryParseNetwork_ExceptionModifier(t *testing.T) {
	const line = "||example.com^$~third-party,script"

	rule, ok, err := TryParseNetwork(line, 1)
	if err != nil || !ok {
		t.Fatalf("TryParseNetwork = ok=%v err=%v", ok, err)
	}

	n := rule.(*ast.BasicNetwork)
	want := []ast.NetworkModifier{
		{Exception: true, Name: "third-party"},
		{Name: "script"},
	}
	if !reflect.DeepEqual(n.Modifiers, want) {
		t.Errorf("Modifiers = %#v, want %#v", n.Modifiers, want)
	}
	if got := GenerateBasicNetwork(n); got != line {
		t.Errorf("GenerateBasicNetwork() = %q, want %q", got, line)
	}
}
