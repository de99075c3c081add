package rules

import "github.com/yaklabco/aglint/pkg/linter"

// Defaults returns one fresh instance of every built-in rule, in the
// order they should be registered.
func Defaults() []linter.Rule {
	return []linter.Rule{
		&HintPlatformsConsistency{},
		&SingleSelector{},
	}
}

// RegisterDefaults adds every built-in rule to l.
func RegisterDefaults(l *linter.Linter) error {
	for _, rule := range Defaults() {
		if err := l.AddRule(rule); err != nil {
			return err
		}
	}
	return nil
}
