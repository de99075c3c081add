package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/aglint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Problems []JSONProblem `json:"problems"`
	Fixed    bool          `json:"fixed,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONProblem represents a single reported problem.
type JSONProblem struct {
	Rule        string `json:"rule,omitempty"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
	Fixable     bool   `json:"fixable"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesFixed      int            `json:"filesFixed"`
	FilesErrored    int            `json:"filesErrored"`
	TotalProblems   int            `json:"totalProblems"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts, bw: bufio.NewWriterSize(opts.Writer, bufWriterSize)}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalProblems, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{BySeverity: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{Path: file.Path, Problems: make([]JSONProblem, 0)}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			fileResult.Fixed = file.Result.FixApplied
			for _, p := range file.Result.Problems {
				fileResult.Problems = append(fileResult.Problems, JSONProblem{
					Rule:        p.Rule,
					Severity:    p.Severity.String(),
					Message:     p.Message,
					StartLine:   p.Position.StartLine,
					StartColumn: p.Position.StartColumn,
					EndLine:     p.Position.EndLine,
					EndColumn:   p.Position.EndColumn,
					Fixable:     p.Fix != nil,
				})
				output.Summary.TotalProblems++
				output.Summary.BySeverity[p.Severity.String()]++
			}
		}

		if len(fileResult.Problems) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Fixed {
			output.Summary.FilesFixed++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
