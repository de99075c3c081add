package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/aglint/internal/ui/pretty"
	"github.com/yaklabco/aglint/pkg/rawtext"
	"github.com/yaklabco/aglint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	total := r.reportFiles(result)

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) reportFiles(result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || len(file.Result.Problems) == 0 {
			continue
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(file.Result.Problems)))
		}

		var lines []rawtext.Line
		if r.opts.ShowContext {
			lines = r.sourceLines(file.Path)
		}

		for _, p := range file.Result.Problems {
			sourceLine := lineContent(lines, p.Position.StartLine)
			fmt.Fprint(r.bw, r.styles.FormatProblem(&p, r.opts.ShowContext, sourceLine))
			total++
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw)
		}
	}

	return total
}

func (r *TextReporter) sourceLines(path string) []rawtext.Line {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return rawtext.SplitLines(string(content))
}

func lineContent(lines []rawtext.Line, lineNo int) string {
	if lineNo < 1 || lineNo > len(lines) {
		return ""
	}
	return lines[lineNo-1].Content
}
