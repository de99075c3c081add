package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/aglint/internal/logging"
	"github.com/yaklabco/aglint/pkg/config"
	"github.com/yaklabco/aglint/pkg/linter"
	"github.com/yaklabco/aglint/pkg/linter/rules"
	"github.com/yaklabco/aglint/pkg/reporter"
	"github.com/yaklabco/aglint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found, purely as an
// RunE signal for the exit code; it is never logged as a real failure.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format  string
	disable []string
	strict  bool
	compact bool
	jobs    int
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint adblock filter lists",
		Long:  lintLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint adblock filter lists for syntax and style problems.

Paths name filter-list files directly; aglint does not walk directories or
expand globs (use your shell for that).

Examples:
  aglint lint list.txt                  # lint one file
  aglint lint list.txt extra.txt        # lint several files
  aglint lint --fix list.txt            # lint and auto-fix issues
  aglint lint --format json list.txt    # output as JSON for CI
  aglint lint --format sarif list.txt   # output as SARIF for CI annotations
  aglint lint --format diff --fix list.txt  # show a unified diff of applied fixes
  aglint lint --strict list.txt         # treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fix, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return fmt.Errorf("get fix flag: %w", err)
	}

	l, err := linter.New(config.NewLinterConfig())
	if err != nil {
		return fmt.Errorf("create linter: %w", err)
	}
	if err := rules.RegisterDefaults(l); err != nil {
		return fmt.Errorf("register rules: %w", err)
	}
	for _, name := range flags.disable {
		if err := l.DisableRule(name); err != nil {
			return fmt.Errorf("disable rule %q: %w", name, err)
		}
	}

	lintRunner := runner.New(l)
	runOpts := runner.Options{Paths: args, Jobs: flags.jobs, Fix: fix}

	logger.Debug("starting lint run", logging.FieldPaths, runOpts.Paths, logging.FieldFix, fix)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if exitCode := ExitCodeFromResult(result, flags.strict); exitCode != ExitSuccess {
		return ErrLintIssuesFound
	}
	return nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().Bool("fix", false, "automatically fix issues")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary, diff")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format (json/sarif)")
}
