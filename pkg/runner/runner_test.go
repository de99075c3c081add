package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/aglint/pkg/linter"
	"github.com/yaklabco/aglint/pkg/linter/rules"
	"github.com/yaklabco/aglint/pkg/runner"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLinterWithRules(t *testing.T) *linter.Linter {
	t.Helper()
	l, err := linter.New(nil)
	require.NoError(t, err)
	require.NoError(t, rules.RegisterDefaults(l))
	return l
}

func TestRunner_Run_AggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	clean := writeTemp(t, dir, "clean.txt", "example.com##.ad\n")
	dirty := writeTemp(t, dir, "dirty.txt", "example.com##.a, .b\n")

	r := runner.New(newLinterWithRules(t))
	result, err := r.Run(context.Background(), runner.Options{Paths: []string{clean, dirty}})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, clean, result.Files[0].Path)
	assert.Equal(t, dirty, result.Files[1].Path)
	assert.Empty(t, result.Files[0].Result.Problems)
	assert.Len(t, result.Files[1].Result.Problems, 1)

	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.ProblemsTotal)
	assert.True(t, result.HasIssues())
	assert.Equal(t, "example.com##.a, .b\n", string(result.Files[1].Original))
}

func TestRunner_Run_FixWritesBackAndPreservesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "dirty.txt", "example.com##.a, .b\n")

	r := runner.New(newLinterWithRules(t))
	result, err := r.Run(context.Background(), runner.Options{Paths: []string{path}, Fix: true})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	require.NoError(t, outcome.Error)
	assert.Equal(t, "example.com##.a, .b\n", string(outcome.Original))

	if outcome.Result.FixApplied {
		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, outcome.Result.Fixed, string(onDisk))
		assert.NotEqual(t, string(outcome.Original), outcome.Result.Fixed)
	}
}

func TestRunner_Run_MissingFileIsReportedAsError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.txt")

	r := runner.New(newLinterWithRules(t))
	result, err := r.Run(context.Background(), runner.Options{Paths: []string{missing}})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	require.Error(t, result.Files[0].Error)
	assert.Equal(t, 1, result.Stats.FilesErrored)
}

func TestRunner_Run_EmptyPathsReturnsEmptyResult(t *testing.T) {
	r := runner.New(newLinterWithRules(t))
	result, err := r.Run(context.Background(), runner.Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
}
