package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/linter"
)

// SingleSelector flags an element-hiding cosmetic rule whose body bundles
// more than one top-level CSS selector behind a comma, since a single
// selector per rule keeps generated stylesheets and future diffs minimal.
type SingleSelector struct {
	linter.BaseRule
}

func (r *SingleSelector) Name() string { return "single-selector" }

func (r *SingleSelector) Description() string {
	return "disallows comma-separated selector lists in element-hiding rules"
}

func (r *SingleSelector) DefaultEnabled() bool             { return true }
func (r *SingleSelector) DefaultSeverity() config.Severity { return config.Warn }

func (r *SingleSelector) OnRule(ctx *linter.RuleContext) {
	cosmetic, ok := ctx.GetActualAdblockRuleAst().(*ast.Cosmetic)
	if !ok || cosmetic.Type != ast.ElementHiding {
		return
	}
	body, ok := cosmetic.Body.(ast.SelectorListBody)
	if !ok {
		return
	}

	selectors := splitTopLevelSelectors(body.Raw)
	if len(selectors) <= 1 {
		return
	}
	ctx.Report(fmt.Sprintf("cosmetic rule bundles %d selectors; split into separate rules", len(selectors)), nil)
}

// splitTopLevelSelectors splits a CSS selector list on commas that sit
// outside quotes, `[...]` attribute selectors, and `(...)` functional
// pseudo-classes, so `a[data-x="1,2"]` and `:has(a, b)` aren't mistaken
// for multiple top-level selectors.
func splitTopLevelSelectors(raw string) []string {
	var out []string
	depth := 0
	start := 0
	var quote byte

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if quote != 0 {
			if c == quote && (i == 0 || raw[i-1] != '\\') {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(raw[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(raw[start:]))
	return out
}
