package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// TryParsePreProcessor attempts to parse a line as a `!#directive ...`
// preprocessor comment (spec §4.3). Lines starting with `!##` are
// excluded, since that prefix belongs to the comment/hint family instead.
func TryParsePreProcessor(raw string, lineNo int) (*ast.PreProcessor, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	if !strings.HasPrefix(trimmed, "!#") || strings.HasPrefix(trimmed, "!##") {
		return nil, false, nil
	}

	tail := trimmed[2:]
	if tail == "" {
		return nil, true, errf("Preprocessor directive name is missing")
	}

	idx := rawtext.FindUnescapedNonParenthesized(tail, rawtext.IsWhitespace)

	node := &ast.PreProcessor{Base: baseAt(lineNo, start, end)}
	if idx == -1 {
		node.Name = tail
		node.HasParams = false
	} else {
		node.Name = tail[:idx]
		params := strings.TrimSpace(tail[idx:])
		node.Params = params
		node.HasParams = true
	}

	return node, true, nil
}

// GeneratePreProcessor renders a PreProcessor comment back to text.
func GeneratePreProcessor(p *ast.PreProcessor) string {
	if p.HasParams {
		return "!#" + p.Name + " " + p.Params
	}
	return "!#" + p.Name
}
