package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/aglint/internal/ui/pretty"
	"github.com/yaklabco/aglint/pkg/fix"
	"github.com/yaklabco/aglint/pkg/runner"
)

// DiffReporter renders a unified diff between each file's original content
// (captured by the runner before any --fix write-back) and its fixed
// content, one hunk set per modified file.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{opts: opts, styles: pretty.NewStyles(colorEnabled)}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var diffed int
	for _, file := range result.Files {
		if file.Error != nil || file.Result == nil || !file.Result.FixApplied {
			continue
		}

		d := fix.GenerateDiff(file.Path, file.Original, []byte(file.Result.Fixed))
		if !d.HasChanges() {
			continue
		}

		fmt.Fprint(r.opts.Writer, d.FullString())
		diffed++
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.opts.Writer, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return diffed, nil
}
