package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
)

// TryParseConfigComment attempts to parse a line as an inline AGLint
// configuration comment: `!`/`#` followed by the literal `aglint` prefix
// as the first word of the comment body (spec §4.3 "ConfigComment").
func TryParseConfigComment(raw string, lineNo int) (*ast.ConfigComment, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	if trimmed == "" {
		return nil, false, nil
	}

	marker := trimmed[0]
	if marker != '!' && marker != '#' {
		return nil, false, nil
	}

	body := strings.TrimSpace(trimmed[1:])
	firstWord, rest := splitFirstWord(body)
	if !strings.EqualFold(firstWord, "aglint") && !strings.HasPrefix(strings.ToLower(firstWord), "aglint-") {
		return nil, false, nil
	}

	command := firstWord
	paramsStr := strings.TrimSpace(rest)

	var comment string
	hasComment := false
	if idx := strings.Index(paramsStr, "--"); idx != -1 {
		comment = strings.TrimSpace(paramsStr[idx+2:])
		hasComment = true
		paramsStr = strings.TrimSpace(paramsStr[:idx])
	}

	node := &ast.ConfigComment{
		Base:       baseAt(lineNo, start, end),
		Marker:     marker,
		Command:    strings.ToLower(command),
		Comment:    comment,
		HasComment: hasComment,
	}

	if node.Command == ast.AglintCommandMain {
		if paramsStr == "" {
			return nil, true, errf("Missing configuration object")
		}
		obj, err := parseJSON5Object(paramsStr)
		if err != nil {
			return nil, true, errf("Invalid aglint configuration object: %v", err)
		}
		node.ParamsObject = obj
		node.HasObject = true
	} else if paramsStr != "" {
		for _, p := range strings.Split(paramsStr, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				node.ParamsList = append(node.ParamsList, p)
			}
		}
	}

	return node, true, nil
}

func splitFirstWord(s string) (word, rest string) {
	i := 0
	for i < len(s) && !isWS(s[i]) {
		i++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

func isWS(b byte) bool { return b == ' ' || b == '\t' }

// GenerateConfigComment renders a ConfigComment back to text.
func GenerateConfigComment(c *ast.ConfigComment) string {
	var sb strings.Builder
	sb.WriteByte(c.Marker)
	sb.WriteByte(' ')
	sb.WriteString(c.Command)

	if c.HasObject {
		sb.WriteByte(' ')
		sb.WriteString(renderJSON5Object(c.ParamsObject))
	} else if len(c.ParamsList) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(c.ParamsList, ", "))
	}

	if c.HasComment {
		sb.WriteString(" -- ")
		sb.WriteString(c.Comment)
	}

	return sb.String()
}
