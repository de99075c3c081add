package parser

import "github.com/yaklabco/aglint/pkg/ast"

// tryParseComment tries every comment subtype in the precedence order
// given by spec §4.2 step 3 (Agent, Hint, PreProcessor, Metadata,
// ConfigComment, SimpleComment) and returns the first match. ok is false
// when the line isn't comment-shaped at all (no leading `!`, `#`, or `[`).
//
// Each Try* helper signals "wrong shape" with (nil, false, nil) and a
// genuine parse failure with (nil, true, err); this function always
// returns a clean nil interface rather than an interface wrapping a typed
// nil pointer.
func tryParseComment(raw string, lineNo int) (ast.AnyRule, bool, error) {
	if a, ok, err := TryParseAgent(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return a, true, nil
	}

	if h, ok, err := TryParseHint(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return h, true, nil
	}

	if p, ok, err := TryParsePreProcessor(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return p, true, nil
	}

	if m, ok, err := TryParseMetadata(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return m, true, nil
	}

	if c, ok, err := TryParseConfigComment(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return c, true, nil
	}

	if s, ok, err := TryParseSimpleComment(raw, lineNo); err != nil {
		return nil, true, err
	} else if ok {
		return s, true, nil
	}

	return nil, false, nil
}
