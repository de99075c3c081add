// Package linter implements the adblock filter list linting kernel: a
// synchronous, single-threaded rule driver that walks a filter list's
// lines, dispatches parsed rules to registered checks, and collates their
// reported problems and fixes (spec §4.7, §5).
package linter

import (
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/fix"
	"github.com/yaklabco/aglint/pkg/rawtext"
)

// Problem is one diagnostic emitted during a Lint call (spec §6).
type Problem struct {
	// Rule is the reporting rule's name, or "" for a pre-rule parse
	// failure.
	Rule string

	Severity config.Severity
	Message  string
	Position rawtext.Position

	// Fix is the replacement proposed by the reporting rule, if any.
	// Collated by line in pkg/fix.Resolve during the fix pass.
	Fix *fix.Fix
}

// LineNumber returns the 1-based line the problem was reported against.
func (p Problem) LineNumber() int { return p.Position.StartLine }

// Result is the outcome of one Lint call (spec §6 LinterResult).
type Result struct {
	Problems []Problem

	WarningCount     int
	ErrorCount       int
	FatalErrorCount int

	// Fixed holds the content after the fix pass when fix was requested
	// (the input itself when no fix applied) and is empty otherwise.
	// FixApplied reports whether Fixed differs from the input.
	Fixed      string
	FixApplied bool
}

func newResult() *Result {
	return &Result{}
}

func (r *Result) record(p Problem) {
	r.Problems = append(r.Problems, p)
	switch p.Severity {
	case config.Warn:
		r.WarningCount++
	case config.Error:
		r.ErrorCount++
	case config.Fatal:
		r.FatalErrorCount++
	}
}

// parseErrorProblem builds the fatal problem the kernel reports when a
// line fails to parse (spec §4.7 step 3, §7 ParseError).
func parseErrorProblem(lineNo int, lineLen int, message string) Problem {
	return Problem{
		Severity: config.Fatal,
		Message:  "AGLint parsing error: " + message,
		Position: rawtext.FullLine(lineNo, lineLen),
	}
}

// internalErrorProblem is recorded when a rule's OnRule handler panics
// (spec §7 InternalError).
func internalErrorProblem(ruleName string, lineNo int, lineLen int, message string) Problem {
	return Problem{
		Rule:     ruleName,
		Severity: config.Fatal,
		Message:  "AGLint internal error in rule \"" + ruleName + "\": " + message,
		Position: rawtext.FullLine(lineNo, lineLen),
	}
}
