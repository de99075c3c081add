package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
	"github.com/yaklabco/aglint/pkg/syntax"
)

// cosmeticSeparators lists every recognized separator token (spec §4.4),
// longest first so that at a given candidate position the longest match
// wins (e.g. "#@$?#" must be tried before "#@$#" before "#$#").
var cosmeticSeparators = []string{
	"#@$?#", "#$?#",
	"#@$#", "#$#",
	"#@?#", "#?#",
	"#@%#", "#%#",
	"#@#", "##",
	"$@$", "$$",
}

func separatorIsException(sep string) bool {
	return strings.Contains(sep, "@")
}

// findCosmeticSeparator returns the byte offset and matched token of the
// first cosmetic separator in line that isn't inside a quoted, regex, or
// `[$...]`-bracketed region, or (-1, "") if none is found.
func findCosmeticSeparator(line string) (int, string) {
	opts := rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true, RespectBrackets: true}

	depth := 0
	inSingle, inDouble, inRegex := false, false, false

	neutral := func() bool { return depth == 0 && !inSingle && !inDouble && !inRegex }

	for i := 0; i < len(line); i++ {
		c := line[i]

		if c == '\\' && i+1 < len(line) {
			i++
			continue
		}

		if neutral() {
			for _, sep := range cosmeticSeparators {
				if strings.HasPrefix(line[i:], sep) {
					return i, sep
				}
			}
		}

		switch {
		case opts.RespectQuotes && c == '\'' && !inDouble && !inRegex:
			inSingle = !inSingle
		case opts.RespectQuotes && c == '"' && !inSingle && !inRegex:
			inDouble = !inDouble
		case opts.RespectRegex && c == '/' && !inSingle && !inDouble:
			inRegex = !inRegex
		case opts.RespectBrackets && c == '[' && neutral():
			depth++
		case opts.RespectBrackets && c == ']' && depth > 0:
			depth--
		}
	}

	return -1, ""
}

// TryParseCosmetic attempts to parse raw as a cosmetic rule (spec §4.4).
// ok is false when no cosmetic separator is found at all.
func TryParseCosmetic(raw string, lineNo int) (ast.AnyRule, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	sepIdx, sep := findCosmeticSeparator(trimmed)
	if sepIdx == -1 {
		return nil, false, nil
	}

	leftPart := trimmed[:sepIdx]
	body := trimmed[sepIdx+len(sep):]
	exception := separatorIsException(sep)

	// uBO response-header removal is syntactically cosmetic-shaped but
	// semantically a network rule (spec §4.4 table, §4.6 step 4). leftPart
	// is the rule's domain list, reused as-is for Pattern.
	if (sep == "##" || sep == "#@#") && strings.HasPrefix(body, "^responseheader(") {
		return parseUboResponseHeader(leftPart, body, exception, lineNo, start, end)
	}

	domains, modifiers, err := parseCosmeticLeftSide(leftPart)
	if err != nil {
		return nil, true, err
	}

	cosType, syn, parsedBody, err := parseCosmeticBody(sep, body)
	if err != nil {
		return nil, true, err
	}

	base := baseAt(lineNo, start, end)
	base.Syn = syn

	node := &ast.Cosmetic{
		Base:      base,
		Type:      cosType,
		Exception: exception,
		Separator: sep,
		Domains:   domains,
		Body:      parsedBody,
	}
	if syn == syntax.Adg {
		node.Modifiers = modifiers
	}

	return node, true, nil
}

// parseCosmeticLeftSide splits an optional ADG `[$name=value,...]`
// modifier block off the front of leftPart and parses the remaining
// comma-separated domain list.
func parseCosmeticLeftSide(leftPart string) ([]ast.CosmeticDomain, []ast.CosmeticModifier, error) {
	var modifiers []ast.CosmeticModifier
	domainsStr := leftPart

	if strings.HasPrefix(leftPart, "[$") {
		opts := rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true}
		closeIdx := -1
		depth := 0
		for i := 0; i < len(leftPart); i++ {
			if leftPart[i] == '[' {
				depth++
			}
			if leftPart[i] == ']' {
				depth--
				if depth == 0 {
					closeIdx = i
					break
				}
			}
		}
		if closeIdx == -1 {
			return nil, nil, errf("Unclosed '[$...]' modifier block")
		}

		modBody := leftPart[2:closeIdx]
		for _, entry := range rawtext.SplitUnescaped(modBody, ',', opts) {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			name, value, hasValue := splitNameValue(entry)
			modifiers = append(modifiers, ast.CosmeticModifier{Name: name, Value: value, HasValue: hasValue})
		}

		domainsStr = leftPart[closeIdx+1:]
	}

	var domains []ast.CosmeticDomain
	if domainsStr != "" {
		for _, d := range strings.Split(domainsStr, ",") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			exc := strings.HasPrefix(d, "~")
			if exc {
				d = d[1:]
			}
			domains = append(domains, ast.CosmeticDomain{Exception: exc, Domain: d})
		}
	}

	return domains, modifiers, nil
}

func splitNameValue(entry string) (name, value string, hasValue bool) {
	idx := strings.IndexByte(entry, '=')
	if idx == -1 {
		return entry, "", false
	}
	return entry[:idx], entry[idx+1:], true
}

// parseCosmeticBody dispatches on the separator token to choose the body
// grammar, returning the resolved CosmeticType, Syntax tag, and parsed
// body (spec §4.4 table, §3 syntax invariants).
func parseCosmeticBody(sep, body string) (ast.CosmeticType, syntax.Syntax, ast.CosmeticBody, error) {
	switch sep {
	case "##", "#@#":
		if strings.HasPrefix(body, "^") {
			return ast.Html, syntax.Ubo, ast.HTMLBody{Raw: body}, nil
		}
		if strings.HasPrefix(body, "+js(") {
			sb, err := ParseAdgUboScriptletBody(strings.TrimPrefix(body, "+js"), ast.UboScriptletDialect)
			if err != nil {
				return 0, 0, nil, err
			}
			return ast.Scriptlet, syntax.Ubo, ast.ScriptletBodyNode{ScriptletBody: *sb}, nil
		}
		return ast.ElementHiding, elementHidingSyntax(body), ast.SelectorListBody{Raw: body}, nil

	case "#?#", "#@?#":
		return ast.ElementHiding, syntax.Common, ast.SelectorListBody{Raw: body}, nil

	case "#$#", "#@$#":
		if looksLikeCSSInjection(body) {
			b, err := parseCSSInjectionBody(body)
			return ast.Css, syntax.Adg, b, err
		}
		sb, err := ParseAbpScriptletBody(body)
		if err != nil {
			return 0, 0, nil, err
		}
		return ast.Scriptlet, syntax.Abp, ast.ScriptletBodyNode{ScriptletBody: *sb}, nil

	case "#$?#", "#@$?#":
		b, err := parseCSSInjectionBody(body)
		return ast.Css, syntax.Adg, b, err

	case "#%#", "#@%#":
		if strings.HasPrefix(body, "//scriptlet(") {
			sb, err := ParseAdgUboScriptletBody(strings.TrimPrefix(body, "//scriptlet"), ast.AdgScriptletDialect)
			if err != nil {
				return 0, 0, nil, err
			}
			return ast.Scriptlet, syntax.Adg, ast.ScriptletBodyNode{ScriptletBody: *sb}, nil
		}
		return ast.Js, syntax.Adg, ast.JSBody{Raw: body}, nil

	case "$$", "$@$":
		return ast.Html, syntax.Adg, ast.HTMLBody{Raw: body}, nil

	default:
		return 0, 0, nil, errf("unrecognized cosmetic separator %q", sep)
	}
}

// uboBodyMarkers trigger Ubo syntax on an ElementHiding body (spec §3
// invariant).
var uboBodyMarkers = []string{":style(", ":remove()", ":matches-path(", ":has-text("}

func elementHidingSyntax(body string) syntax.Syntax {
	for _, m := range uboBodyMarkers {
		if strings.Contains(body, m) {
			return syntax.Ubo
		}
	}
	return syntax.Common
}

// looksLikeCSSInjection reports whether body has the `selector { decls }`
// shape rather than an ABP snippet list.
func looksLikeCSSInjection(body string) bool {
	opts := rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true}
	open := rawtext.FindUnescaped(body, '{', opts)
	return open != -1 && strings.HasSuffix(strings.TrimSpace(body), "}")
}

func parseCSSInjectionBody(body string) (ast.CSSInjectionBody, error) {
	opts := rawtext.ScanOptions{RespectQuotes: true, RespectRegex: true}
	open := rawtext.FindUnescaped(body, '{', opts)
	if open == -1 {
		return ast.CSSInjectionBody{Raw: body, Selector: strings.TrimSpace(body)}, nil
	}

	closeIdx := strings.LastIndex(body, "}")
	if closeIdx == -1 || closeIdx < open {
		return ast.CSSInjectionBody{}, errf("Unclosed CSS injection declaration block")
	}

	return ast.CSSInjectionBody{
		Raw:         body,
		Selector:    strings.TrimSpace(body[:open]),
		Declaration: strings.TrimSpace(body[open+1 : closeIdx]),
		HasBraces:   true,
	}, nil
}

func parseUboResponseHeader(pattern, body string, exception bool, lineNo, start, end int) (ast.AnyRule, bool, error) {
	if !strings.HasSuffix(body, ")") {
		return nil, true, errf("Missing closing parenthesis in ^responseheader(...)")
	}
	header := strings.TrimSpace(body[len("^responseheader(") : len(body)-1])
	if header == "" {
		return nil, true, errf("Empty header name in ^responseheader(...)")
	}

	base := baseAt(lineNo, start, end)
	base.Syn = syntax.Ubo

	return &ast.RemoveHeaderNetwork{
		Base:      base,
		Exception: exception,
		Pattern:   pattern,
		Header:    header,
		RHSyntax:  ast.RemoveHeaderUbo,
	}, true, nil
}

// GenerateCosmetic renders a Cosmetic rule back to text.
func GenerateCosmetic(c *ast.Cosmetic) string {
	var sb strings.Builder

	if len(c.Modifiers) > 0 {
		sb.WriteString("[$")
		for i, m := range c.Modifiers {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(m.Name)
			if m.HasValue {
				sb.WriteByte('=')
				sb.WriteString(m.Value)
			}
		}
		sb.WriteString("]")
	}

	for i, d := range c.Domains {
		if i > 0 {
			sb.WriteByte(',')
		}
		if d.Exception {
			sb.WriteByte('~')
		}
		sb.WriteString(d.Domain)
	}

	sb.WriteString(c.Separator)
	sb.WriteString(generateCosmeticBody(c.Body))

	return sb.String()
}

func generateCosmeticBody(body ast.CosmeticBody) string {
	switch b := body.(type) {
	case ast.SelectorListBody:
		return b.Raw
	case ast.HTMLBody:
		return b.Raw
	case ast.JSBody:
		return b.Raw
	case ast.CSSInjectionBody:
		if !b.HasBraces {
			return b.Selector
		}
		return b.Selector + " { " + b.Declaration + " }"
	case ast.ScriptletBodyNode:
		switch b.Dialect {
		case ast.AbpScriptletDialect:
			return GenerateAbpScriptletBody(&b.ScriptletBody)
		case ast.UboScriptletDialect:
			return "+js" + GenerateAdgUboScriptletCall(b.Calls[0])
		default:
			return "//scriptlet" + GenerateAdgUboScriptletCall(b.Calls[0])
		}
	default:
		return ""
	}
}
