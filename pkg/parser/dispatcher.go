// Package parser implements the hand-written recursive-descent parser
// that turns one filter-list line into a typed AST node (pkg/ast) and
// the generator that inverts it back to text (spec §4.2-§4.6).
package parser

import (
	"github.com/yaklabco/aglint/pkg/ast"
)

// Parse classifies and parses a single line (without its terminator)
// into an AnyRule, following the precedence order in spec §4.2: empty,
// then the comment family, then cosmetic, then network as the fallback.
// A non-nil error means the line is shape-matched but malformed; the
// kernel turns that into a fatal problem rather than aborting.
func Parse(raw string, lineNo int) (ast.AnyRule, error) {
	start, end := trimBounds(raw)
	if start == end {
		return &ast.Empty{Base: baseAt(lineNo, start, end)}, nil
	}

	if c, ok, err := tryParseComment(raw, lineNo); err != nil {
		return nil, err
	} else if ok {
		return c, nil
	}

	if c, ok, err := TryParseCosmetic(raw, lineNo); err != nil {
		return nil, err
	} else if ok {
		return c, nil
	}

	if n, ok, err := TryParseNetwork(raw, lineNo); err != nil {
		return nil, err
	} else if ok {
		return n, nil
	}

	return nil, errf("unable to parse line as any known adblock rule syntax")
}

// Generate renders rule back to filter-list text, inverting Parse modulo
// the normalizations documented in spec §6.
func Generate(rule ast.AnyRule) (string, error) {
	switch v := rule.(type) {
	case *ast.Empty:
		return "", nil
	case *ast.Agent:
		return GenerateAgent(v), nil
	case *ast.Hint:
		return GenerateHint(v), nil
	case *ast.PreProcessor:
		return GeneratePreProcessor(v), nil
	case *ast.Metadata:
		return GenerateMetadata(v), nil
	case *ast.ConfigComment:
		return GenerateConfigComment(v), nil
	case *ast.SimpleComment:
		return GenerateSimpleComment(v), nil
	case *ast.Cosmetic:
		return GenerateCosmetic(v), nil
	case *ast.BasicNetwork:
		return GenerateBasicNetwork(v), nil
	case *ast.RemoveHeaderNetwork:
		return GenerateRemoveHeaderNetwork(v), nil
	default:
		return "", errf("cannot generate unknown AST node type %T", rule)
	}
}
