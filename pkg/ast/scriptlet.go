package ast

// QuoteType tags how a scriptlet parameter was delimited in source, so the
// generator can reproduce the original quoting (spec §4.5).
type QuoteType uint8

const (
	Unquoted QuoteType = iota
	SingleQuoted
	DoubleQuoted
	RegExp
)

// ScriptletParam is one argument to a scriptlet call, with its quoting
// preserved for round-tripping.
type ScriptletParam struct {
	Type  QuoteType
	Value string
}

// ScriptletDialect identifies which of the three scriptlet body grammars
// (spec §4.5) produced a ScriptletCall.
type ScriptletDialect uint8

const (
	AdgScriptletDialect ScriptletDialect = iota
	UboScriptletDialect
	AbpScriptletDialect
)

// ScriptletCall is one `name(arg, ...)` (ADG/uBO) or `name arg...` (ABP)
// invocation. ABP bodies may contain several calls separated by `;`; ADG
// and uBO bodies always contain exactly one.
type ScriptletCall struct {
	Name      string
	NameQuote QuoteType // quoting the name argument had in source
	Params    []ScriptletParam
}

// ScriptletBody is the parsed right-hand side of a Scriptlet cosmetic
// rule.
type ScriptletBody struct {
	Dialect       ScriptletDialect
	Calls         []ScriptletCall
	TrailingSemi  bool // ABP only: whether the source had a trailing ';'
}
