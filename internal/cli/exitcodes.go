package cli

import "github.com/yaklabco/aglint/pkg/runner"

// Exit codes for aglint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found error- or
	// fatal-severity problems.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found only warnings
	// (reported when --strict is set).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a rule-config or severity error.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.Errors > 0 || result.Stats.FatalErrors > 0 {
		return ExitLintErrors
	}
	if strict && result.Stats.Warnings > 0 {
		return ExitLintWarnings
	}
	return ExitSuccess
}
