package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/aglint/pkg/linter/rules"
)

func newRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long:  `List the built-in rules aglint ships with, their default severity, and whether they can auto-fix.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, rule := range rules.Defaults() {
				fixable := ""
				if rule.CanFix() {
					fixable = " [fixable]"
				}
				fmt.Fprintf(out, "%-28s %-6s %s%s\n", rule.Name(), rule.DefaultSeverity(), rule.Description(), fixable)
			}
			return nil
		},
	}
	return cmd
}
