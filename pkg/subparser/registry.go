// Package subparser defines the narrow capability set for pluggable
// CSS/regex sub-grammars (spec §1, §4, §9) and a selector-keyed registry
// for them. A sub-parser's tree is opaque: the interface exposes only
// offsets and the keys a generic walker needs. No sub-parser
// implementation ships in this module, and neither pkg/parser nor the
// linter kernel looks one up or calls it.
package subparser

// Point is a line/column pair used by Error, matching the
// `{line, column}` shape spec §6 requires sub-parser errors to carry.
type Point struct {
	Line   int
	Column int
}

// Error is the shape a sub-parser must raise on malformed input (spec §6,
// §7 "SubparserError"). Nothing in this module converts it into a linter
// Problem.
type Error struct {
	Message string
	Start   Point
	End     Point
}

func (e *Error) Error() string { return e.Message }

// Tree is an opaque sub-parser result. The kernel and generator never
// inspect it beyond the SubParser capability methods below.
type Tree = any

// SubParser is the capability set described in spec §6 "Sub-parser
// interface". A concrete implementation wraps a CSS selector-list parser,
// a declaration-list parser, a media-query parser, or similar.
type SubParser interface {
	// Name identifies the sub-parser (e.g. "css-selector-list").
	Name() string

	// Parse parses source starting at byteOffset on the given 1-based
	// line, where lineStartOffset is the byte offset the line itself
	// begins at (needed to translate sub-parser-internal positions back
	// to file-level line/column).
	Parse(source string, byteOffset, line, lineStartOffset int) (Tree, error)

	// NodeTypeKey and ChildNodeKeys let a generic walker navigate the
	// opaque tree without knowing its concrete shape, mirroring the
	// `nodeTypeKey`/`childNodeKeys` capability from spec §6.
	NodeTypeKey() string
	ChildNodeKeys() []string

	// GetStartOffset and GetEndOffset return the byte span of node within
	// the original source passed to Parse.
	GetStartOffset(node Tree) int
	GetEndOffset(node Tree) int
}

// Selector identifies which AST position a sub-parser is registered for,
// e.g. "cosmetic.elementHiding.body" or "network.modifier.domain".
type Selector string

// Registry maps AST-path selectors to the sub-parser responsible for
// that position (spec §2.4).
type Registry struct {
	parsers map[Selector]SubParser
}

// NewRegistry returns an empty sub-parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[Selector]SubParser)}
}

// Register installs sp as the sub-parser for selector, replacing any
// previous registration.
func (r *Registry) Register(selector Selector, sp SubParser) {
	r.parsers[selector] = sp
}

// Get returns the sub-parser registered for selector, if any.
func (r *Registry) Get(selector Selector) (SubParser, bool) {
	sp, ok := r.parsers[selector]
	return sp, ok
}

// Selector names for the AST positions a sub-parser can be registered
// for. Kept here (rather than in pkg/parser) so any caller wiring a
// custom Registry shares the same vocabulary; pkg/parser itself does not
// look them up.
const (
	SelectorElementHidingBody Selector = "cosmetic.elementHiding.body"
	SelectorCSSSelector       Selector = "cosmetic.css.selector"
	SelectorCSSDeclaration    Selector = "cosmetic.css.declaration"
	SelectorNetworkDomainList Selector = "network.modifier.domain"
)
