package parser

import "github.com/yaklabco/aglint/pkg/ast"

// TryParseSimpleComment parses any remaining marker-led line as a plain
// comment (spec §4.3 "SimpleComment"). Unlike the other comment
// subtypes, the text after the marker is preserved verbatim (not
// re-trimmed) since SimpleComment isn't in the §6 normalization list and
// so must round-trip byte-for-byte.
//
// A `#`-led line whose `#` itself starts a cosmetic separator (`##`,
// `#?#`, `#$#`, ...) is declined here, even without a domain in front of
// the separator: "##.banner" is a generic element-hiding cosmetic rule,
// not a comment, and must reach TryParseCosmetic. This mirrors the real
// AGLint CommentParser's isCommentRule exclusion.
func TryParseSimpleComment(raw string, lineNo int) (*ast.SimpleComment, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	if trimmed == "" {
		return nil, false, nil
	}

	marker := trimmed[0]
	if marker != '!' && marker != '#' {
		return nil, false, nil
	}

	if marker == '#' {
		if sepIdx, _ := findCosmeticSeparator(trimmed); sepIdx == 0 {
			return nil, false, nil
		}
	}

	return &ast.SimpleComment{
		Base:   baseAt(lineNo, start, end),
		Marker: marker,
		Text:   trimmed[1:],
	}, true, nil
}

// GenerateSimpleComment renders a SimpleComment back to text verbatim.
func GenerateSimpleComment(c *ast.SimpleComment) string {
	return string(c.Marker) + c.Text
}
