package runner

import "github.com/yaklabco/aglint/pkg/linter"

// FileOutcome wraps a linter.Result with the path it came from.
type FileOutcome struct {
	// Path is the file that was linted.
	Path string

	// Original is the file content as read from disk, before any fix was
	// written back. Captured so reporters (DiffReporter) can show what
	// changed even after a --fix run has already overwritten the file.
	Original []byte

	// Result holds the linter's findings. Nil if Error is set.
	Result *linter.Result

	// Error is set if the file could not be read or linted.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesProcessed  int
	FilesErrored    int
	FilesWithIssues int
	FilesFixed      int

	ProblemsTotal int
	Warnings      int
	Errors        int
	FatalErrors   int
}

// Result is the overall outcome of linting a set of files.
type Result struct {
	// Files contains the outcome for each processed file, in Options.Paths order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any problem reached error or fatal severity.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errors > 0 || r.Stats.FatalErrors > 0
}

// HasIssues reports whether any problem was reported at all.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ProblemsTotal > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if len(outcome.Result.Problems) > 0 {
		r.Stats.FilesWithIssues++
	}
	if outcome.Result.FixApplied {
		r.Stats.FilesFixed++
	}

	r.Stats.ProblemsTotal += len(outcome.Result.Problems)
	r.Stats.Warnings += outcome.Result.WarningCount
	r.Stats.Errors += outcome.Result.ErrorCount
	r.Stats.FatalErrors += outcome.Result.FatalErrorCount
}
