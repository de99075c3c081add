package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/linter"
	"github.com/yaklabco/aglint/pkg/rawtext"
	"github.com/yaklabco/aglint/pkg/reporter"
	"github.com/yaklabco/aglint/pkg/runner"
)

func sampleResult() *runner.Result {
	lintResult := &linter.Result{
		Problems: []linter.Problem{
			{
				Rule:     "single-selector",
				Severity: config.Warn,
				Message:  "multiple selectors",
				Position: rawtext.Position{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 20},
			},
		},
		WarningCount: 1,
	}
	result := &runner.Result{}
	result.Files = append(result.Files, runner.FileOutcome{Path: "list.txt", Result: lintResult})
	result.Stats = runner.Stats{
		FilesProcessed:  1,
		FilesWithIssues: 1,
		ProblemsTotal:   1,
		Warnings:        1,
	}
	return result
}

func TestParseFormat(t *testing.T) {
	for _, f := range []string{"text", "", "json", "sarif", "summary", "diff"} {
		_, err := reporter.ParseFormat(f)
		assert.NoError(t, err)
	}
	_, err := reporter.ParseFormat("table")
	assert.Error(t, err)
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "bogus"})
	assert.Error(t, err)
}

func TestTextReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true, GroupByFile: true})

	n, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "single-selector")
	assert.Contains(t, buf.String(), "list.txt")
}

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	n, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "list.txt", out.Files[0].Path)
	require.Len(t, out.Files[0].Problems, 1)
	assert.Equal(t, "single-selector", out.Files[0].Problems[0].Rule)
	assert.Equal(t, 1, out.Summary.TotalProblems)
}

func TestSARIFReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewSARIFReporter(reporter.Options{Writer: &buf})

	n, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Runs, 1)
	require.Len(t, out.Runs[0].Results, 1)
	assert.Equal(t, "single-selector", out.Runs[0].Results[0].RuleID)
	assert.Equal(t, "warning", out.Runs[0].Results[0].Level)
}

func TestSummaryReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	n, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "Rules Summary")
	assert.Contains(t, buf.String(), "single-selector")
	assert.Contains(t, buf.String(), "Files Summary")
}

func TestDiffReporter_Report_RendersUnifiedDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("##.ad, .ad2\n"), 0o644))

	result := &runner.Result{}
	result.Files = append(result.Files, runner.FileOutcome{
		Path: path,
		Result: &linter.Result{
			FixApplied: true,
			Fixed:      "##.ad\n##.ad2\n",
		},
		Original: []byte("##.ad, .ad2\n"),
	})

	var buf bytes.Buffer
	r := reporter.NewDiffReporter(reporter.Options{Writer: &buf, Color: "never"})

	n, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "--- a/")
	assert.Contains(t, buf.String(), "+++ b/")
	assert.Contains(t, buf.String(), "-##.ad, .ad2")
	assert.Contains(t, buf.String(), "+##.ad")
}

func TestDiffReporter_Report_SkipsFilesWithoutFix(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewDiffReporter(reporter.Options{Writer: &buf, Color: "never"})

	n, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSummaryReporter_Report_NoProblems(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	n, err := r.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "No problems found")
}
