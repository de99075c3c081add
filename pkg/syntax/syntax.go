// Package syntax defines the adblock dialect tag used throughout the AST
// and generator to pick dialect-specific rendering and to let diagnostic
// rules gate checks by dialect (spec §3).
package syntax

// Syntax identifies which adblocker dialect a rule is written in, or
// Common when the syntax is shared/undetermined.
type Syntax uint8

const (
	// Common is used when the syntax isn't specific to any single dialect.
	Common Syntax = iota

	// Abp is Adblock Plus syntax.
	Abp

	// Ubo is uBlock Origin syntax.
	Ubo

	// Adg is AdGuard syntax.
	Adg
)

// String returns the display name of the syntax: AdblockPlus, uBlockOrigin,
// AdGuard, or Common for any other value.
func (s Syntax) String() string {
	switch s {
	case Abp:
		return "AdblockPlus"
	case Ubo:
		return "uBlockOrigin"
	case Adg:
		return "AdGuard"
	default:
		return "Common"
	}
}
