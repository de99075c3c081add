package parser

import "github.com/yaklabco/aglint/pkg/ast"

// Classification is a cheap, non-authoritative guess at a trimmed line's
// category, based only on its leading marker and (for `#`) whether a
// cosmetic separator sits at offset zero. Parse does not rely on
// it for correctness — it tries each family parser in the precedence
// order from spec §4.2 and trusts their own ok/err results — but rules
// and tooling that only need a coarse category without paying for a full
// parse can use Classify directly.
type Classification uint8

const (
	ClassEmpty Classification = iota
	ClassComment
	ClassCosmetic
	ClassNetwork
)

// Classify guesses the category of an already-trimmed line.
func Classify(trimmed string) Classification {
	if trimmed == "" {
		return ClassEmpty
	}

	switch trimmed[0] {
	case '!', '[':
		return ClassComment
	case '#':
		if idx, _ := findCosmeticSeparator(trimmed); idx == 0 {
			return ClassCosmetic
		}
		return ClassComment
	default:
		if idx, _ := findCosmeticSeparator(trimmed); idx != -1 {
			return ClassCosmetic
		}
		return ClassNetwork
	}
}

func (c Classification) Category() ast.Category {
	switch c {
	case ClassComment:
		return ast.CategoryComment
	case ClassCosmetic:
		return ast.CategoryCosmetic
	case ClassNetwork:
		return ast.CategoryNetwork
	default:
		return ast.CategoryEmpty
	}
}
