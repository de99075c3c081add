package linter

import (
	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/fix"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// Rule is one filter-list check. Implementations are stateless; any
// scratch space a rule needs across lines of one Lint call lives in the
// Storage map the kernel hands back through RuleContext (spec §4.7, §9
// "rule context as immutable snapshot").
type Rule interface {
	// Name is the unique identifier the kernel and config key on.
	Name() string

	Description() string

	DefaultEnabled() bool
	DefaultSeverity() config.Severity

	// CanFix reports whether OnRule ever sets Fix on a reported Problem.
	CanFix() bool

	// ValidateConfig optionally validates the parsed rule config values. Returning a
	// non-nil error fails setRuleConfig/setConfig synchronously (spec
	// §7 ConfigError). A rule with no config surface returns nil
	// unconditionally.
	ValidateConfig(values []any) error

	// OnStartFilterList is called once per Lint invocation before any
	// line is processed.
	OnStartFilterList(ctx *RuleContext)

	// OnRule is called once per line that parses and is not skipped by
	// inline config, empty lines included. An inline config comment
	// reaches it only when AllowInlineConfig is off. It is not called
	// while the rule's effective severity is Off.
	OnRule(ctx *RuleContext)

	// OnEndFilterList is called once per Lint invocation after the last
	// line has been processed.
	OnEndFilterList(ctx *RuleContext)
}

// BaseRule supplies no-op defaults for the three lifecycle hooks and a
// nil config validator, so concrete rules only implement the hook(s)
// they actually use — mirroring the teacher's preference for small
// focused rule types over one bloated interface implementation.
type BaseRule struct{}

func (BaseRule) CanFix() bool                        { return false }
func (BaseRule) ValidateConfig(values []any) error   { return nil }
func (BaseRule) OnStartFilterList(ctx *RuleContext) {}
func (BaseRule) OnRule(ctx *RuleContext)            {}
func (BaseRule) OnEndFilterList(ctx *RuleContext)   {}

// RuleContext is the frozen, per-call snapshot a rule reads from and
// reports through (spec §4.7 step 1, §9 "rule context as immutable
// snapshot"). One RuleContext per rule per Lint invocation; the kernel
// refreshes its ast/raw/line fields before every OnRule call and appends
// to Problems via Report.
type RuleContext struct {
	config     *config.LinterConfig
	ruleConfig config.RuleConfig
	content    string
	fixing     bool

	ast     ast.AnyRule
	raw     string
	lineNo  int
	lineLen int

	// Storage is scratch space visible only to the owning rule across
	// the whole Lint call (spec §5 "per-rule storage"). The kernel
	// allocates one map per rule and never inspects it.
	Storage map[string]any

	ruleName string
	severity config.Severity
	problems *[]Problem
}

// GetLinterConfig returns the resolved configuration for the current
// Lint call. Defensive: callers must not mutate the returned value.
func (rc *RuleContext) GetLinterConfig() *config.LinterConfig { return rc.config }

// GetFilterListContent returns the full text being linted.
func (rc *RuleContext) GetFilterListContent() string { return rc.content }

// GetActualAdblockRuleAst returns the parsed AST of the line currently
// being visited. Nil before the first OnRule call (spec §4.7 step 1).
func (rc *RuleContext) GetActualAdblockRuleAst() ast.AnyRule { return rc.ast }

// GetActualAdblockRuleRaw returns the raw (untrimmed) text of the line
// currently being visited. Empty before the first OnRule call.
func (rc *RuleContext) GetActualAdblockRuleRaw() string { return rc.raw }

// GetActualLine returns the 1-based line number currently being visited.
func (rc *RuleContext) GetActualLine() int { return rc.lineNo }

// FixingEnabled reports whether the current Lint call was invoked with
// fix=true.
func (rc *RuleContext) FixingEnabled() bool { return rc.fixing }

// Config returns the rule-specific configuration resolved for this call
// (severity plus any extra values from the tuple form).
func (rc *RuleContext) Config() config.RuleConfig { return rc.ruleConfig }

// Report appends a problem spanning the current line's AST node (the
// whole line when no AST is set), stamped with the rule's effective
// severity (spec §4.7 "effective severity"). f may be nil.
func (rc *RuleContext) Report(message string, f *fix.Fix) {
	pos := rawtext.FullLine(rc.lineNo, rc.lineLen)
	if rc.ast != nil {
		pos = rc.ast.Position()
	}
	rc.ReportAt(message, pos, f)
}

// ReportAt is Report with an explicit position, for rules that can point
// at a sub-span of the line.
func (rc *RuleContext) ReportAt(message string, pos rawtext.Position, f *fix.Fix) {
	*rc.problems = append(*rc.problems, Problem{
		Rule:     rc.ruleName,
		Severity: rc.severity,
		Message:  message,
		Position: pos,
		Fix:      f,
	})
}
