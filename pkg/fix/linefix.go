// Package fix implements the byte-offset text edit primitives (TextEdit,
// EditBuilder, ApplyEdits) and the line-level fix collation the linter
// kernel uses to rewrite filter-list lines that carry a fix (spec §4.7
// step 5, §8 property 6).
package fix

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// Fix is the replacement for one InputLine: zero or more AST nodes whose
// generated text becomes the line's new content (more than one node
// turns one line into several). A Fix is always referenced by pointer;
// the kernel and rules compare fixes by that pointer, not by structural
// equality, per the "distinct-reference" fix-conflict rule (spec §9
// open question 3).
type Fix struct {
	Rules []ast.AnyRule
}

// NewFix wraps one or more replacement AST nodes as a Fix.
func NewFix(rules ...ast.AnyRule) *Fix {
	return &Fix{Rules: rules}
}

// LineFixCandidate pairs a Fix proposed by some rule's report() call with
// the line number it applies to.
type LineFixCandidate struct {
	Line int
	Fix  *Fix
}

// Resolve groups candidates by line and decides, per line, which single
// Fix (if any) wins. A line resolves to a Fix only when every candidate
// for that line is the *same* Fix pointer; any two distinct Fix pointers
// on one line conflict and neither is applied, even if their Rules are
// structurally identical (spec §8 property 6, §9 open question 3).
func Resolve(candidates []LineFixCandidate) map[int]*Fix {
	byLine := make(map[int][]*Fix)
	for _, c := range candidates {
		if c.Fix == nil {
			continue
		}
		byLine[c.Line] = append(byLine[c.Line], c.Fix)
	}

	resolved := make(map[int]*Fix, len(byLine))
	for line, fixes := range byLine {
		first := fixes[0]
		conflict := false
		for _, f := range fixes[1:] {
			if f != first {
				conflict = true
				break
			}
		}
		if !conflict {
			resolved[line] = first
		}
	}
	return resolved
}

// Generator renders an AnyRule back to text; satisfied by
// pkg/parser.Generate. Declared as an interface here so pkg/fix doesn't
// need to import pkg/parser, keeping the dependency direction the same
// way the rest of the module layers rawtext -> ast -> parser -> fix.
type Generator func(ast.AnyRule) (string, error)

// RenderLine renders a Fix's replacement rules into the lines that
// should take the original line's place, each carrying terminator
// (spec §4.7 step 5: "reusing the original terminator").
func RenderLine(f *Fix, terminator string, generate Generator) ([]string, error) {
	if f == nil || len(f.Rules) == 0 {
		return []string{"" + terminator}, nil
	}

	out := make([]string, 0, len(f.Rules))
	for _, rule := range f.Rules {
		text, err := generate(rule)
		if err != nil {
			return nil, err
		}
		out = append(out, text+terminator)
	}
	return out, nil
}

// Apply rewrites content, replacing every line present in resolved with
// its fix's rendered output, and returns the final reconstructed text.
// resolved uses the same 1-based line numbering the kernel reports
// positions with. Unaffected lines are copied through byte-for-byte via
// the same TextEdit/ApplyEdits machinery used for any other edit, so an
// empty resolved map (spec §8 property 2: empty fix preserves content)
// returns content unchanged.
func Apply(content string, lines []rawtext.Line, resolved map[int]*Fix, generate Generator) (string, error) {
	if len(resolved) == 0 {
		return content, nil
	}

	var edits []TextEdit
	offset := 0
	for i, l := range lines {
		lineNo := i + 1
		lineLen := len(l.Content) + len(l.Terminator)

		if f, ok := resolved[lineNo]; ok {
			rendered, err := RenderLine(f, l.Terminator, generate)
			if err != nil {
				return "", err
			}
			edits = append(edits, TextEdit{
				StartOffset: offset,
				EndOffset:   offset + lineLen,
				NewText:     strings.Join(rendered, ""),
			})
		}

		offset += lineLen
	}

	prepared, err := PrepareEdits(edits, len(content))
	if err != nil {
		return "", err
	}

	return string(ApplyEdits([]byte(content), prepared)), nil
}
