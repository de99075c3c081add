package linter

import (
	"fmt"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/fix"
	"github.com/yaklabco/aglint/pkg/parser"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// ConfigError is returned for an invalid severity or rule config object,
// whether supplied through the API (SetRuleConfig, SetConfig, AddRule) or
// via an inline `! aglint ...` comment (spec §7 ConfigError). API callers
// receive it as a Go error; inline-comment failures are instead surfaced
// as a fatal Problem (spec §4.7 step 3: "Validation may throw, surfaced
// as fatal").
type ConfigError struct {
	Rule    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("linter config: rule %q: %s", e.Rule, e.Message)
	}
	return "linter config: " + e.Message
}

// Linter is the kernel of spec §4.7: an ordered rule registry plus the
// resolved configuration and inline-comment state of one linter
// instance. Not safe for concurrent Lint calls (spec §5); distinct
// instances are fully independent.
type Linter struct {
	registry *Registry
	config   *config.LinterConfig
	state    *inlineState
}

// New creates an empty-registry linter and applies cfg (or defaults, if
// cfg is nil) via SetConfig with reset=true, mirroring spec §4.7's
// `new(defaultRules, config)` minus built-in rule loading — callers that
// want the built-in rule set call pkg/linter/rules.RegisterDefaults(l)
// themselves, keeping pkg/linter from importing its own rule
// implementations (which would otherwise import it back).
func New(cfg *config.LinterConfig) (*Linter, error) {
	l := &Linter{
		registry: NewRegistry(),
		state:    newInlineState(),
	}
	if cfg == nil {
		cfg = config.NewLinterConfig()
	}
	if err := l.SetConfig(cfg, true); err != nil {
		return nil, err
	}
	return l, nil
}

// SetConfig merges cfg into the linter's configuration. If reset, every
// rule's severity/config override is cleared first (spec §4.7
// `setConfig(config, reset)`).
func (l *Linter) SetConfig(cfg *config.LinterConfig, reset bool) error {
	if reset {
		for _, name := range l.registry.order {
			l.registry.entries[name].ruleCfg = nil
		}
	}
	l.config = cfg.Clone()
	return l.applyRulesConfig(l.config.Rules)
}

func (l *Linter) applyRulesConfig(rules map[string]any) error {
	for name, raw := range rules {
		if err := l.SetRuleConfig(name, raw); err != nil {
			return err
		}
	}
	return nil
}

// AddRule registers rule under its own Name(). Returns a *RegistryError
// if already registered.
func (l *Linter) AddRule(rule Rule) error {
	return l.registry.Add(rule)
}

// AddRuleEx registers rule and immediately applies a raw config value to
// it (equivalent to AddRule followed by SetRuleConfig).
func (l *Linter) AddRuleEx(rule Rule, rawConfig any) error {
	if err := l.registry.Add(rule); err != nil {
		return err
	}
	if rawConfig == nil {
		return nil
	}
	return l.SetRuleConfig(rule.Name(), rawConfig)
}

// RemoveRule unregisters a rule by name. Returns a *RegistryError if not
// registered.
func (l *Linter) RemoveRule(name string) error {
	return l.registry.Remove(name)
}

// HasRule reports whether name is registered.
func (l *Linter) HasRule(name string) bool {
	return l.registry.Has(name)
}

// GetRule returns the registered rule by name.
func (l *Linter) GetRule(name string) (Rule, bool) {
	return l.registry.Get(name)
}

// GetRules returns every registered rule in registration order.
func (l *Linter) GetRules() []Rule {
	return l.registry.Entries()
}

// SetRuleConfig parses raw, validates it against name's rule if that
// rule is registered, and installs it as the rule's override (spec §4.7
// `setRuleConfig`). For a name that is not registered, a well-formed raw
// value is accepted and discarded: no override is kept, and a later
// AddRule does not pick it up. A malformed severity/value or a schema
// rejection is a *ConfigError.
func (l *Linter) SetRuleConfig(name string, raw any) error {
	parsed, err := config.ParseRuleConfig(raw)
	if err != nil {
		return &ConfigError{Rule: name, Message: err.Error()}
	}

	if rule, ok := l.registry.Get(name); ok {
		if err := rule.ValidateConfig(parsed.Values); err != nil {
			return &ConfigError{Rule: name, Message: err.Error()}
		}
	}

	e, ok := l.registry.entries[name]
	if !ok {
		// No entry for an unregistered rule, so the value is not kept.
		return nil
	}
	e.ruleCfg = &parsed
	return nil
}

// ResetRuleConfig clears name's override, reverting it to its declared
// default severity.
func (l *Linter) ResetRuleConfig(name string) error {
	e, ok := l.registry.entries[name]
	if !ok {
		return &RegistryError{Op: "resetRuleConfig", Name: name}
	}
	e.ruleCfg = nil
	return nil
}

// GetRuleConfig returns the effective configuration for name: its
// override if set, otherwise its declared default severity with no extra
// values.
func (l *Linter) GetRuleConfig(name string) (config.RuleConfig, bool) {
	rule, ok := l.registry.Get(name)
	if !ok {
		return config.RuleConfig{}, false
	}
	e := l.registry.entries[name]
	if e.ruleCfg != nil {
		return *e.ruleCfg, true
	}
	return config.RuleConfig{Severity: rule.DefaultSeverity()}, true
}

// DisableRule forces name's effective severity to Off.
func (l *Linter) DisableRule(name string) error {
	e, ok := l.registry.entries[name]
	if !ok {
		return &RegistryError{Op: "disableRule", Name: name}
	}
	e.ruleCfg = &config.RuleConfig{Severity: config.Off}
	return nil
}

// EnableRule clears name's override, so IsRuleDisabled again follows its
// declared default severity (spec §8 property 4).
func (l *Linter) EnableRule(name string) error {
	e, ok := l.registry.entries[name]
	if !ok {
		return &RegistryError{Op: "enableRule", Name: name}
	}
	e.ruleCfg = nil
	return nil
}

// IsRuleDisabled reports whether name's effective severity is Off.
func (l *Linter) IsRuleDisabled(name string) bool {
	rc, ok := l.GetRuleConfig(name)
	return ok && rc.Severity == config.Off
}

func (l *Linter) effectiveSeverity(name string, rule Rule) config.Severity {
	if e, ok := l.registry.entries[name]; ok && e.ruleCfg != nil {
		return e.ruleCfg.Severity
	}
	return rule.DefaultSeverity()
}

// Lint runs one pass over content (spec §4.7 `lint(content, fix)`).
func (l *Linter) Lint(content string, applyFix bool) (*Result, error) {
	result := newResult()
	lines := rawtext.SplitLines(content)

	type active struct {
		name string
		rule Rule
		ctx  *RuleContext
	}

	var enabled []active
	for _, name := range l.registry.order {
		rule := l.registry.entries[name].rule
		sev := l.effectiveSeverity(name, rule)
		if sev == config.Off {
			continue
		}
		rc, _ := l.GetRuleConfig(name)
		ctx := &RuleContext{
			config:     l.config,
			ruleConfig: rc,
			content:    content,
			fixing:     applyFix,
			Storage:    l.registry.entries[name].storage,
			ruleName:   name,
			severity:   sev,
			problems:   &result.Problems,
		}
		enabled = append(enabled, active{name: name, rule: rule, ctx: ctx})
	}

	for _, a := range enabled {
		a.rule.OnStartFilterList(a.ctx)
	}

	// Next-line inline state cannot meaningfully span separate Lint
	// calls (there is no "next line" across two different contents);
	// the whole-linter persisting disable/enable switch, by contrast,
	// is part of instance state and is intentionally left untouched
	// here (spec §4.7 describes Disable/Enable as "global, persisting").
	l.state.isDisabledForNextLine = false
	l.state.isEnabledForNextLine = false
	l.state.clearNextLine()

	for i, line := range lines {
		lineNo := i + 1
		raw := line.Content

		parsed, err := parser.Parse(raw, lineNo)
		if err != nil {
			if !l.state.isDisabled || l.state.isEnabledForNextLine {
				result.record(parseErrorProblem(lineNo, len(raw), err.Error()))
			}
			l.state.clearNextLine()
			continue
		}

		if cc, ok := parsed.(*ast.ConfigComment); ok && l.config.AllowInlineConfig {
			if err := l.applyConfigComment(cc); err != nil {
				result.record(Problem{
					Severity: config.Fatal,
					Message:  "AGLint config error: " + err.Error(),
					Position: parsed.Position(),
				})
			}
			continue
		}

		if !l.state.skipsLine() {
			for _, a := range enabled {
				if l.state.ruleSkipped(a.name) {
					continue
				}
				a.ctx.ast = parsed
				a.ctx.raw = raw
				a.ctx.lineNo = lineNo
				a.ctx.lineLen = len(raw)
				if l.state.ruleUsesBaseSeverity(a.name) {
					a.ctx.severity = a.rule.DefaultSeverity()
				} else {
					a.ctx.severity = l.effectiveSeverity(a.name, a.rule)
				}
				if a.ctx.severity == config.Off {
					continue
				}
				l.runRule(a.name, a.rule, a.ctx, lineNo, len(raw), result)
			}
		}

		l.state.clearNextLine()
	}

	for _, a := range enabled {
		a.rule.OnEndFilterList(a.ctx)
	}

	// Rules report through RuleContext straight into result.Problems, so
	// the severity counters are tallied here once every problem is in.
	reported := result.Problems
	result.Problems = nil
	result.WarningCount, result.ErrorCount, result.FatalErrorCount = 0, 0, 0
	for _, p := range reported {
		result.record(p)
	}

	if applyFix {
		var candidates []fix.LineFixCandidate
		for _, p := range result.Problems {
			if p.Fix != nil {
				candidates = append(candidates, fix.LineFixCandidate{Line: p.LineNumber(), Fix: p.Fix})
			}
		}
		resolved := fix.Resolve(candidates)
		fixed, err := fix.Apply(content, lines, resolved, parser.Generate)
		if err != nil {
			return nil, err
		}
		result.Fixed = fixed
		result.FixApplied = fixed != content
	}

	return result, nil
}

// runRule invokes rule.OnRule, converting a panic into an InternalError
// problem so one misbehaving rule cannot abort the whole Lint call (spec
// §7 InternalError: "recommended behavior is to record a fatal problem
// naming the rule and continue").
func (l *Linter) runRule(name string, rule Rule, ctx *RuleContext, lineNo, lineLen int, result *Result) {
	defer func() {
		if r := recover(); r != nil {
			result.record(internalErrorProblem(name, lineNo, lineLen, fmt.Sprint(r)))
		}
	}()
	rule.OnRule(ctx)
}

// applyConfigComment implements the body of spec §4.7 step 3's
// ConfigComment branch.
func (l *Linter) applyConfigComment(cc *ast.ConfigComment) error {
	switch cc.Command {
	case ast.AglintCommandMain:
		if !cc.HasObject {
			return nil
		}
		l.config.Merge(cc.ParamsObject)
		return l.applyRulesConfig(cc.ParamsObject)

	case ast.AglintCommandDisable:
		if len(cc.ParamsList) > 0 {
			for _, name := range cc.ParamsList {
				if err := l.DisableRule(name); err != nil {
					return err
				}
			}
			return nil
		}
		l.state.disableGlobal()

	case ast.AglintCommandEnable:
		if len(cc.ParamsList) > 0 {
			for _, name := range cc.ParamsList {
				if err := l.EnableRule(name); err != nil {
					return err
				}
			}
			return nil
		}
		l.state.enableGlobal()

	case ast.AglintCommandDisableNextLine:
		if len(cc.ParamsList) > 0 {
			l.state.disableNextLineNames(cc.ParamsList)
			return nil
		}
		l.state.disableNextLine()

	case ast.AglintCommandEnableNextLine:
		if len(cc.ParamsList) > 0 {
			l.state.enableNextLineNames(cc.ParamsList)
			return nil
		}
		l.state.enableNextLine()
	}
	return nil
}
