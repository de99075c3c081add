// Package rules implements the built-in linter.Rule checks shipped with
// aglint. Each rule lives in its own file, grounded on a specific
// literal scenario or testable property of the specification; register.go
// wires the whole set into a linter.Linter.
package rules

import (
	"fmt"
	"sort"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/linter"
)

const (
	hintPlatform    = "PLATFORM"
	hintNotPlatform = "NOT_PLATFORM"
)

// HintPlatformsConsistency flags an AdGuard hint comment that both
// requires and excludes the same platform via PLATFORM(...) and
// NOT_PLATFORM(...) on the same line.
type HintPlatformsConsistency struct {
	linter.BaseRule
}

func (r *HintPlatformsConsistency) Name() string { return "hint-platforms-consistency" }

func (r *HintPlatformsConsistency) Description() string {
	return "disallows a platform from appearing in both PLATFORM() and NOT_PLATFORM() on one hint line"
}

func (r *HintPlatformsConsistency) DefaultEnabled() bool             { return true }
func (r *HintPlatformsConsistency) DefaultSeverity() config.Severity { return config.Error }

func (r *HintPlatformsConsistency) OnRule(ctx *linter.RuleContext) {
	hint, ok := ctx.GetActualAdblockRuleAst().(*ast.Hint)
	if !ok {
		return
	}

	required := make(map[string]bool)
	excluded := make(map[string]bool)
	for _, h := range hint.Hints {
		switch h.Name {
		case hintPlatform:
			for _, p := range h.Params {
				required[p] = true
			}
		case hintNotPlatform:
			for _, p := range h.Params {
				excluded[p] = true
			}
		}
	}

	var conflicts []string
	for p := range required {
		if excluded[p] {
			conflicts = append(conflicts, p)
		}
	}
	if len(conflicts) == 0 {
		return
	}
	sort.Strings(conflicts)

	for _, platform := range conflicts {
		ctx.Report(fmt.Sprintf("platform %q is both required and excluded by PLATFORM/NOT_PLATFORM on this line", platform), nil)
	}
}
