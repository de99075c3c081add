package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/aglint/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "12 problems (8 errors, 4 warnings), in 3 files, fixed 1 file".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ProblemsTotal == 0 {
		msg := s.Success.Render("No problems found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.FilesFixed > 0 {
			msg += ", " + s.Success.Render(fmt.Sprintf("fixed %d %s", stats.FilesFixed, fileWord(stats.FilesFixed)))
		}
		return msg + "\n"
	}

	var parts []string

	problemWord := "problems"
	if stats.ProblemsTotal == 1 {
		problemWord = "problem"
	}

	var severityParts []string
	if stats.FatalErrors > 0 {
		severityParts = append(severityParts, s.Fatal.Render(fmt.Sprintf("%d fatal", stats.FatalErrors)))
	}
	if stats.Errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", stats.Errors)))
	}
	if stats.Warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", stats.Warnings)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.ProblemsTotal, problemWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.ProblemsTotal, problemWord))
	}

	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord(stats.FilesWithIssues)))

	if stats.FilesFixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("fixed %d %s", stats.FilesFixed, fileWord(stats.FilesFixed))))
	}

	return strings.Join(parts, ", ") + "\n"
}

func fileWord(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
