package reporter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/aglint/internal/ui/pretty"
	"github.com/yaklabco/aglint/pkg/runner"
)

const (
	tableWidth   = 70
	ruleColWidth = 30
	fileColWidth = 40
	numColWidth  = 8
)

type ruleCount struct {
	rule     string
	problems int
	errors   int
	warnings int
}

type fileCount struct {
	path     string
	problems int
	errors   int
	warnings int
}

// SummaryReporter formats results as aggregated rule/file tables, in the
// spirit of the teacher's pkg/analysis-backed SummaryRenderer, folded
// directly over runner.Result since aglint has no separate analysis layer
// to aggregate (see DESIGN.md).
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{opts: opts, styles: pretty.NewStyles(colorEnabled)}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil || result.Stats.ProblemsTotal == 0 {
		fmt.Fprintln(r.opts.Writer, r.styles.Success.Render("No problems found"))
		return 0, nil
	}

	byRule, byFile := r.aggregate(result)

	r.renderRuleTable(byRule)
	fmt.Fprintln(r.opts.Writer)
	r.renderFileTable(byFile)
	fmt.Fprintln(r.opts.Writer)
	fmt.Fprint(r.opts.Writer, r.styles.FormatSummaryOneLine(result.Stats))

	return result.Stats.ProblemsTotal, nil
}

func (r *SummaryReporter) aggregate(result *runner.Result) ([]ruleCount, []fileCount) {
	rules := make(map[string]*ruleCount)
	var files []fileCount

	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		fc := fileCount{path: file.Path}
		for _, p := range file.Result.Problems {
			name := p.Rule
			if name == "" {
				name = "(parse error)"
			}
			rc, ok := rules[name]
			if !ok {
				rc = &ruleCount{rule: name}
				rules[name] = rc
			}
			rc.problems++
			fc.problems++
			switch {
			case p.Severity.String() == "warn":
				rc.warnings++
				fc.warnings++
			default:
				rc.errors++
				fc.errors++
			}
		}
		if fc.problems > 0 {
			files = append(files, fc)
		}
	}

	byRule := make([]ruleCount, 0, len(rules))
	for _, rc := range rules {
		byRule = append(byRule, *rc)
	}
	sort.Slice(byRule, func(i, j int) bool { return byRule[i].problems > byRule[j].problems })
	sort.Slice(files, func(i, j int) bool { return files[i].problems > files[j].problems })

	return byRule, files
}

func (r *SummaryReporter) renderRuleTable(rules []ruleCount) {
	if len(rules) == 0 {
		return
	}
	fmt.Fprintln(r.opts.Writer, r.styles.Bold.Render("Rules Summary"))
	fmt.Fprintln(r.opts.Writer, r.styles.TableSeparator.Render(strings.Repeat("-", tableWidth)))
	fmt.Fprintf(r.opts.Writer, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Total", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", numColWidth)),
	)
	for _, rc := range rules {
		name := padRight(rc.rule, ruleColWidth)
		styled := name
		switch {
		case rc.errors > 0:
			styled = r.styles.TableErrorRow.Render(name)
		case rc.warnings > 0:
			styled = r.styles.TableWarnRow.Render(name)
		}
		fmt.Fprintf(r.opts.Writer, "%s %s %s %s\n",
			styled,
			padLeft(strconv.Itoa(rc.problems), numColWidth),
			padLeft(strconv.Itoa(rc.errors), numColWidth),
			padLeft(strconv.Itoa(rc.warnings), numColWidth),
		)
	}
}

func (r *SummaryReporter) renderFileTable(files []fileCount) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintln(r.opts.Writer, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.opts.Writer, r.styles.TableSeparator.Render(strings.Repeat("-", tableWidth)))
	fmt.Fprintf(r.opts.Writer, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Total", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", numColWidth)),
	)
	for _, fc := range files {
		path := fc.path
		if len(path) > fileColWidth {
			path = "…" + path[len(path)-(fileColWidth-1):]
		}
		name := padRight(path, fileColWidth)
		styled := name
		switch {
		case fc.errors > 0:
			styled = r.styles.TableErrorRow.Render(name)
		case fc.warnings > 0:
			styled = r.styles.TableWarnRow.Render(name)
		}
		fmt.Fprintf(r.opts.Writer, "%s %s %s %s\n",
			styled,
			padLeft(strconv.Itoa(fc.problems), numColWidth),
			padLeft(strconv.Itoa(fc.errors), numColWidth),
			padLeft(strconv.Itoa(fc.warnings), numColWidth),
		)
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
