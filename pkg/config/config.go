package config

// OutputFormat specifies the output format for a lint report.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName RuleFormat = "name"
	RuleFormatID   RuleFormat = "id"
)

// LinterConfig is the root configuration accepted by linter.New and
// linter.Linter.SetConfig (spec §4.7, §6). Rules holds each rule's raw
// configuration value exactly as loaded from YAML/JSON5 — a bare severity
// or a `[severity, ...values]` tuple — parsed lazily via ParseRuleConfig
// so that a rule's schema can validate it against its own expectations.
type LinterConfig struct {
	// AllowInlineConfig enables `! aglint ...` comments to alter the
	// linter's behavior while a filter list is being linted.
	AllowInlineConfig bool `yaml:"allowInlineConfig"`

	// Rules maps rule name to its raw configuration value.
	Rules map[string]any `yaml:"rules"`

	// CLI-only fields; never round-tripped through YAML (spec §1 keeps
	// the CLI itself out of core scope, but the shape of its options is
	// still part of the ambient configuration surface).
	Fix        bool         `yaml:"-"`
	Format     OutputFormat `yaml:"-"`
	RuleFormat RuleFormat   `yaml:"-"`
}

// NewLinterConfig returns a LinterConfig with sensible defaults.
func NewLinterConfig() *LinterConfig {
	return &LinterConfig{
		AllowInlineConfig: true,
		Rules:             make(map[string]any),
		Format:            FormatText,
		RuleFormat:        RuleFormatName,
	}
}

// Clone deep-copies c, including the Rules map, so callers (notably the
// kernel's setConfig(reset=false) merge path) never mutate a config a
// caller still holds a reference to.
func (c *LinterConfig) Clone() *LinterConfig {
	if c == nil {
		return nil
	}

	clone := &LinterConfig{
		AllowInlineConfig: c.AllowInlineConfig,
		Fix:               c.Fix,
		Format:            c.Format,
		RuleFormat:        c.RuleFormat,
		Rules:             make(map[string]any, len(c.Rules)),
	}
	for name, raw := range c.Rules {
		clone.Rules[name] = cloneRuleValue(raw)
	}
	return clone
}

// cloneRuleValue deep-copies the value shapes ParseRuleConfig accepts:
// scalars, []any, and map[string]any (the latter from a JSON5 config
// comment's options object).
func cloneRuleValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneRuleValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = cloneRuleValue(e)
		}
		return out
	default:
		return val
	}
}

// Merge overlays patch's rule entries onto c's (used by the `aglint`
// inline main command, spec §4.7 step 3: "merge params into
// this.config.rules").
func (c *LinterConfig) Merge(patch map[string]any) {
	if c.Rules == nil {
		c.Rules = make(map[string]any)
	}
	for name, raw := range patch {
		c.Rules[name] = raw
	}
}
