package ast

import "github.com/yaklabco/aglint/pkg/subparser"

// CosmeticType discriminates the five cosmetic rule subtypes of spec §3.
type CosmeticType uint8

const (
	ElementHiding CosmeticType = iota
	Css
	Scriptlet
	Html
	Js
)

func (t CosmeticType) String() string {
	switch t {
	case ElementHiding:
		return "ElementHiding"
	case Css:
		return "Css"
	case Scriptlet:
		return "Scriptlet"
	case Html:
		return "Html"
	case Js:
		return "Js"
	default:
		return "Unknown"
	}
}

// CosmeticDomain is one entry of a cosmetic rule's left-hand domain list.
type CosmeticDomain struct {
	Exception bool
	Domain    string
}

// CosmeticModifier is one `name[=value]` entry of an ADG `[$...]`
// modifier block preceding the domain list.
type CosmeticModifier struct {
	Name     string
	Value    string
	HasValue bool
}

// CosmeticBody is the sum type of the five possible cosmetic rule bodies.
// Exactly one concrete type below is stored per Cosmetic.Type.
type CosmeticBody interface {
	isCosmeticBody()
}

// SelectorListBody is the body of an ElementHiding rule: a plain or
// extended CSS selector list. Tree is nil unless a selector-list
// sub-parser was registered and sub-parsing was requested; the raw text
// is always retained so generation never depends on sub-parsing having
// run.
type SelectorListBody struct {
	Raw  string
	Tree subparser.Tree
}

func (SelectorListBody) isCosmeticBody() {}

// CSSInjectionBody is the body of a Css rule: `selector { declarations }`
// (ADG `#$#`/`#$?#`) form, or a bare selector with no declaration block.
type CSSInjectionBody struct {
	Raw         string
	Selector    string
	Declaration string
	HasBraces   bool
}

func (CSSInjectionBody) isCosmeticBody() {}

// ScriptletBodyNode wraps a parsed ScriptletBody so it satisfies
// CosmeticBody.
type ScriptletBodyNode struct {
	ScriptletBody
}

func (ScriptletBodyNode) isCosmeticBody() {}

// HTMLBody is the body of an Html rule (uBO `##^`/`#@#^` or ADG `$$`).
// The HTML filter grammar itself (tag/attribute selectors) is out of the
// core's scope (spec §1); the body is retained as opaque text.
type HTMLBody struct {
	Raw string
}

func (HTMLBody) isCosmeticBody() {}

// JSBody is the body of a Js rule (ADG `#%#`/`#@%#` without a
// `//scriptlet(...)` call): opaque injected JavaScript source.
type JSBody struct {
	Raw string
}

func (JSBody) isCosmeticBody() {}

// Cosmetic is a parsed cosmetic rule of any of the five subtypes.
type Cosmetic struct {
	Base
	Type      CosmeticType
	Exception bool
	Separator string
	Domains   []CosmeticDomain
	Modifiers []CosmeticModifier
	Body      CosmeticBody
}

func (Cosmetic) Category() Category { return CategoryCosmetic }
