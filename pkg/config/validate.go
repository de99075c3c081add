package config

import "fmt"

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// ValidationResult collects every error found validating a LinterConfig
// or a single rule's configuration value.
type ValidationResult struct {
	Errors []ValidationError
}

// Valid reports whether validation found no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

var knownFormats = map[OutputFormat]bool{
	FormatText: true, FormatTable: true, FormatJSON: true,
	FormatSARIF: true, FormatDiff: true, FormatSummary: true,
}

// Validate checks the shape of a LinterConfig: that every rule's value
// parses as a LinterRuleConfig and that Format (if set) is recognized.
// It intentionally does not check whether rule names exist — that
// requires the registry, which lives one layer up in pkg/linter to avoid
// an import cycle back into pkg/config.
func Validate(cfg *LinterConfig) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q", cfg.Format),
		})
	}

	for name, raw := range cfg.Rules {
		if _, err := ParseRuleConfig(raw); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + name,
				Value:   raw,
				Message: err.Error(),
			})
		}
	}

	return result
}
