package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter. table, present in the teacher,
// is dropped: SummaryReporter already renders a file-count table, and a
// dedicated table format would duplicate it with no new information (see
// DESIGN.md). diff is kept: fix.GenerateDiff operates on whole-file content,
// so a unified diff of proposed fixes needs no byte-offset edit model.
const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatSummary Format = "summary"
	FormatDiff    Format = "diff"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	case "summary":
		return FormatSummary, nil
	case "diff":
		return FormatDiff, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif, summary, diff", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatSummary, FormatDiff:
		return true
	default:
		return false
	}
}
