package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
	"github.com/yaklabco/aglint/pkg/syntax"
)

var networkModifierScanOpts = rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true}

// TryParseNetwork parses a network rule (spec §4.6). It is tried last in
// the dispatcher's precedence order, so ok is effectively always true for
// any non-empty line that reached it; a malformed `removeheader` modifier
// is the only way this fails.
func TryParseNetwork(raw string, lineNo int) (ast.AnyRule, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	body := trimmed
	exception := false
	if strings.HasPrefix(body, "@@") {
		exception = true
		body = body[2:]
	}

	pattern, modifiersStr := splitNetworkPatternAndModifiers(body)

	var modifiers []ast.NetworkModifier
	if modifiersStr != "" {
		for _, entry := range rawtext.SplitUnescaped(modifiersStr, ',', networkModifierScanOpts) {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}

			exc := strings.HasPrefix(entry, "~")
			if exc {
				entry = entry[1:]
			}
			name, value, hasValue := splitNameValue(entry)

			if name == "removeheader" {
				if !hasValue || value == "" {
					return nil, true, errf("No header name specified in rule")
				}
				base := baseAt(lineNo, start, end)
				base.Syn = syntax.Adg
				return &ast.RemoveHeaderNetwork{
					Base:      base,
					Exception: exception,
					Pattern:   pattern,
					Header:    value,
					RHSyntax:  ast.RemoveHeaderAdg,
				}, true, nil
			}

			modifiers = append(modifiers, ast.NetworkModifier{Exception: exc, Name: name, Value: value, HasValue: hasValue})
		}
	}

	return &ast.BasicNetwork{
		Base:      baseAt(lineNo, start, end),
		Exception: exception,
		Pattern:   pattern,
		Modifiers: modifiers,
	}, true, nil
}

// splitNetworkPatternAndModifiers finds the modifier separator: the last
// unescaped `$` that isn't inside a quoted or `/…/` regex region (spec
// §4.6 step 2). If none is found, or that `$` is the body's last byte
// (nothing follows it), the whole body is the pattern.
func splitNetworkPatternAndModifiers(body string) (pattern, modifiers string) {
	idx := rawtext.FindUnescapedFromEnd(body, '$', networkModifierScanOpts)
	if idx == -1 || idx == len(body)-1 {
		return body, ""
	}
	return body[:idx], body[idx+1:]
}

// GenerateBasicNetwork renders a BasicNetwork rule back to text.
func GenerateBasicNetwork(n *ast.BasicNetwork) string {
	var sb strings.Builder
	if n.Exception {
		sb.WriteString("@@")
	}
	sb.WriteString(n.Pattern)

	if len(n.Modifiers) > 0 {
		sb.WriteByte('$')
		for i, m := range n.Modifiers {
			if i > 0 {
				sb.WriteByte(',')
			}
			if m.Exception {
				sb.WriteByte('~')
			}
			sb.WriteString(m.Name)
			if m.HasValue {
				sb.WriteByte('=')
				sb.WriteString(m.Value)
			}
		}
	}

	return sb.String()
}

// GenerateRemoveHeaderNetwork renders a RemoveHeaderNetwork rule back to
// text, choosing the ADG `$removeheader=` form or the uBO
// `##^responseheader(...)` form per n.RHSyntax.
func GenerateRemoveHeaderNetwork(n *ast.RemoveHeaderNetwork) string {
	var sb strings.Builder

	switch n.RHSyntax {
	case ast.RemoveHeaderUbo:
		sb.WriteString(n.Pattern)
		if n.Exception {
			sb.WriteString("#@#")
		} else {
			sb.WriteString("##")
		}
		sb.WriteString("^responseheader(")
		sb.WriteString(n.Header)
		sb.WriteByte(')')
	default:
		if n.Exception {
			sb.WriteString("@@")
		}
		sb.WriteString(n.Pattern)
		sb.WriteString("$removeheader=")
		sb.WriteString(n.Header)
	}

	return sb.String()
}
