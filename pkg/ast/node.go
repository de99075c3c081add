// Package ast defines the typed syntax tree produced by pkg/parser. Every
// rule category and subtype is an explicit Go struct; downstream code
// (the generator, the linter kernel, diagnostic rules) type-switches on
// these rather than relying on a shared base class (spec §9).
package ast

import (
	"github.com/yaklabco/aglint/pkg/rawtext"
	"github.com/yaklabco/aglint/pkg/syntax"
)

// Category is the top-level discriminant of a parsed line.
type Category uint8

const (
	CategoryEmpty Category = iota
	CategoryComment
	CategoryCosmetic
	CategoryNetwork
)

func (c Category) String() string {
	switch c {
	case CategoryEmpty:
		return "Empty"
	case CategoryComment:
		return "Comment"
	case CategoryCosmetic:
		return "Cosmetic"
	case CategoryNetwork:
		return "Network"
	default:
		return "Unknown"
	}
}

// AnyRule is the sum type every parsed line is classified into. Every
// variant embeds Base and so satisfies this interface; callers type-switch
// on the concrete type (or on Category()) to dispatch.
type AnyRule interface {
	Category() Category
	Syntax() syntax.Syntax
	Position() rawtext.Position
}

// Base carries the fields every AST node has regardless of category:
// the dialect tag and the source span. It is embedded, never used bare.
type Base struct {
	Syn syntax.Syntax
	Pos rawtext.Position
}

// Syntax returns the dialect tag of the node.
func (b Base) Syntax() syntax.Syntax { return b.Syn }

// Position returns the source span of the node.
func (b Base) Position() rawtext.Position { return b.Pos }

// Empty represents a whitespace-only line.
type Empty struct {
	Base
}

// Category implements AnyRule.
func (Empty) Category() Category { return CategoryEmpty }
