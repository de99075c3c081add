package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/linter"
)

// FormatProblem formats a single linter.Problem for terminal output.
func (s *Styles) FormatProblem(p *linter.Problem, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%d:%d", p.Position.StartLine, p.Position.StartColumn)

	severity := s.FormatSeverity(p.Severity)

	ruleDisplay := ""
	if p.Rule != "" {
		ruleDisplay = "  " + s.RuleID.Render("("+p.Rule+")")
	}

	fixable := ""
	if p.Fix != nil {
		fixable = "  " + s.Fixable.Render("[fixable]")
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s%s%s\n",
		s.Location.Render(location),
		severity,
		s.Message.Render(p.Message),
		ruleDisplay,
		fixable,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, p.Position.StartColumn))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.Fatal:
		return s.Fatal.Render("fatal")
	case config.Error:
		return s.Error.Render("error")
	case config.Warn:
		return s.Warning.Render("warning")
	default:
		return sev.String()
	}
}

// FormatSourceContext formats the source line with a caret marker under
// the diagnostic's starting column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column >= 0 {
		padding := indent + strings.Repeat(" ", column)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d problems)", issueCount))
	}
	return header
}
