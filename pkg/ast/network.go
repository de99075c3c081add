package ast

// NetworkModifier is one `[~]name[=value]` entry of a network rule's
// modifier list (spec §4.6 step 3).
type NetworkModifier struct {
	Exception bool
	Name      string
	Value     string
	HasValue  bool
}

// BasicNetwork is a pattern-plus-modifiers network rule.
type BasicNetwork struct {
	Base
	Exception bool
	Pattern   string
	Modifiers []NetworkModifier
}

func (BasicNetwork) Category() Category { return CategoryNetwork }

// RemoveHeaderSyntax distinguishes the two surface forms that produce a
// RemoveHeaderNetwork rule (spec §3, §4.6 step 4).
type RemoveHeaderSyntax uint8

const (
	RemoveHeaderAdg RemoveHeaderSyntax = iota
	RemoveHeaderUbo
)

// RemoveHeaderNetwork is a header-removal network rule, reclassified from
// a BasicNetwork with a `removeheader` modifier (ADG) or parsed directly
// from a `##^responseheader(...)` cosmetic-looking line (uBO).
type RemoveHeaderNetwork struct {
	Base
	Exception bool
	Pattern   string
	Header    string
	RHSyntax  RemoveHeaderSyntax
}

func (RemoveHeaderNetwork) Category() Category { return CategoryNetwork }
