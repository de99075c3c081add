package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/syntax"
)

func isIdentChar(b byte) bool {
	return b == '_' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

// TryParseHint attempts to parse a line as an AdGuard hint comment (spec
// §4.3 "Hint"). ok is false with nil error when the line doesn't start
// with the `!+` marker; a non-nil error means the marker matched but the
// tokenizer rejected the body.
func TryParseHint(raw string, lineNo int) (*ast.Hint, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	if !strings.HasPrefix(trimmed, "!+") {
		return nil, false, nil
	}

	hints, err := tokenizeHints(trimmed[2:])
	if err != nil {
		return nil, true, err
	}

	base := baseAt(lineNo, start, end)
	base.Syn = syntax.Adg

	return &ast.Hint{Base: base, Hints: hints}, true, nil
}

func tokenizeHints(s string) ([]ast.HintEntry, error) {
	var hints []ast.HintEntry
	i := 0

	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}

		nameStart := i
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
		if i == nameStart {
			return nil, errf("Unexpected character %q in hint", string(s[i]))
		}
		name := s[nameStart:i]

		j := i
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}

		var params []string
		if j < len(s) && s[j] == '(' {
			k := j + 1
			closed := false
			for k < len(s) {
				switch s[k] {
				case '(':
					return nil, errf("Nesting hints isn't supported")
				case ')':
					closed = true
				}
				if closed {
					break
				}
				k++
			}
			if !closed {
				return nil, errf("Unclosed opening bracket")
			}

			inner := s[j+1 : k]
			params = []string{}
			if strings.TrimSpace(inner) != "" {
				for _, p := range strings.Split(inner, ",") {
					params = append(params, strings.TrimSpace(p))
				}
			}
			i = k + 1
		} else {
			i = j
		}

		hints = append(hints, ast.HintEntry{Name: name, Params: params})
	}

	return hints, nil
}

// GenerateHint renders a Hint comment back to text, per spec §6: exactly
// one space after the `!+` marker, parameters joined with ", ".
func GenerateHint(h *ast.Hint) string {
	var sb strings.Builder
	sb.WriteString("!+ ")

	for i, entry := range h.Hints {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(entry.Name)
		if entry.Params != nil {
			sb.WriteByte('(')
			sb.WriteString(strings.Join(entry.Params, ", "))
			sb.WriteByte(')')
		}
	}

	return sb.String()
}
