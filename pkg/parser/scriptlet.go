package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

var scriptletScanOpts = rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true}

// ParseAdgUboScriptletBody parses the `(name, arg0, arg1, …)` call grammar
// shared by ADG's `//scriptlet(...)` and uBO's `+js(...)` forms (spec
// §4.5). callText is everything after the `//scriptlet`/`+js` keyword,
// starting at the opening parenthesis, and may carry a trailing `;`.
func ParseAdgUboScriptletBody(callText string, dialect ast.ScriptletDialect) (*ast.ScriptletBody, error) {
	trimmed := strings.TrimSpace(callText)
	trailingSemi := strings.HasSuffix(trimmed, ";")
	if trailingSemi {
		trimmed = strings.TrimSuffix(trimmed, ";")
	}

	if !strings.HasPrefix(trimmed, "(") {
		return nil, errf("Expected '(' to open scriptlet call")
	}
	if !strings.HasSuffix(trimmed, ")") {
		return nil, errf("Missing closing parenthesis in scriptlet call")
	}

	inner := trimmed[1 : len(trimmed)-1]
	params := parseScriptletArgs(inner)
	if len(params) == 0 {
		return nil, errf("Scriptlet call is missing a name argument")
	}

	call := ast.ScriptletCall{
		Name:      params[0].Value,
		NameQuote: params[0].Type,
		Params:    params[1:],
	}

	return &ast.ScriptletBody{
		Dialect:      dialect,
		Calls:        []ast.ScriptletCall{call},
		TrailingSemi: trailingSemi,
	}, nil
}

// ParseAbpScriptletBody parses the ABP snippet grammar: one or more
// `name arg0 arg1 …` invocations separated by `;` (spec §4.5).
func ParseAbpScriptletBody(body string) (*ast.ScriptletBody, error) {
	trimmed := strings.TrimSpace(body)
	trailingSemi := strings.HasSuffix(trimmed, ";")
	if trailingSemi {
		trimmed = strings.TrimSuffix(trimmed, ";")
	}

	var calls []ast.ScriptletCall
	for _, stmt := range rawtext.SplitUnescaped(trimmed, ';', scriptletScanOpts) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		tokens := splitAbpArgs(stmt)
		if len(tokens) == 0 {
			continue
		}

		calls = append(calls, ast.ScriptletCall{
			Name:      tokens[0].Value,
			NameQuote: tokens[0].Type,
			Params:    tokens[1:],
		})
	}

	if len(calls) == 0 {
		return nil, errf("ABP scriptlet body has no calls")
	}

	return &ast.ScriptletBody{
		Dialect:      ast.AbpScriptletDialect,
		Calls:        calls,
		TrailingSemi: trailingSemi,
	}, nil
}

// parseScriptletArgs splits a comma-separated ADG/uBO argument list and
// classifies each argument's quoting.
func parseScriptletArgs(inner string) []ast.ScriptletParam {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil
	}

	var out []ast.ScriptletParam
	for _, raw := range rawtext.SplitUnescaped(inner, ',', scriptletScanOpts) {
		out = append(out, classifyScriptletArg(strings.TrimSpace(raw)))
	}
	return out
}

// splitAbpArgs splits an ABP statement on unquoted whitespace, since ABP
// snippet calls are space-separated rather than comma-separated.
func splitAbpArgs(stmt string) []ast.ScriptletParam {
	var out []ast.ScriptletParam
	for _, raw := range rawtext.SplitUnescapedAny(stmt, " \t", scriptletScanOpts) {
		if raw == "" {
			continue
		}
		out = append(out, classifyScriptletArg(raw))
	}
	return out
}

func classifyScriptletArg(raw string) ast.ScriptletParam {
	switch {
	case len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'':
		return ast.ScriptletParam{Type: ast.SingleQuoted, Value: raw[1 : len(raw)-1]}
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		return ast.ScriptletParam{Type: ast.DoubleQuoted, Value: raw[1 : len(raw)-1]}
	case rawtext.IsRegexPattern(raw):
		return ast.ScriptletParam{Type: ast.RegExp, Value: raw[1 : len(raw)-1]}
	default:
		return ast.ScriptletParam{Type: ast.Unquoted, Value: raw}
	}
}

func quoteScriptletParam(p ast.ScriptletParam) string {
	switch p.Type {
	case ast.SingleQuoted:
		return "'" + p.Value + "'"
	case ast.DoubleQuoted:
		return `"` + p.Value + `"`
	case ast.RegExp:
		return "/" + p.Value + "/"
	default:
		return p.Value
	}
}

// GenerateAdgUboScriptletCall renders one ADG/uBO scriptlet call back to
// its parenthesized, comma-separated form (including the name argument).
func GenerateAdgUboScriptletCall(call ast.ScriptletCall) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(quoteScriptletParam(ast.ScriptletParam{Type: call.NameQuote, Value: call.Name}))
	for _, p := range call.Params {
		sb.WriteString(", ")
		sb.WriteString(quoteScriptletParam(p))
	}
	sb.WriteByte(')')
	return sb.String()
}

// GenerateAbpScriptletBody renders an ABP snippet body's `;`-joined calls.
func GenerateAbpScriptletBody(b *ast.ScriptletBody) string {
	stmts := make([]string, 0, len(b.Calls))
	for _, call := range b.Calls {
		parts := make([]string, 0, len(call.Params)+1)
		parts = append(parts, quoteScriptletParam(ast.ScriptletParam{Type: call.NameQuote, Value: call.Name}))
		for _, p := range call.Params {
			parts = append(parts, quoteScriptletParam(p))
		}
		stmts = append(stmts, strings.Join(parts, " "))
	}

	out := strings.Join(stmts, "; ")
	if b.TrailingSemi {
		out += ";"
	}
	return out
}
