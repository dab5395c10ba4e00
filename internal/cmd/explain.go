package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cronverse/cronverse"
)

func init() {
	rootCmd.AddCommand(newExplainCommand())
}

// newExplainCommand creates a fresh explain command instance
func newExplainCommand() *cobra.Command {
	var (
		dialect string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "explain <cron-expression>",
		Short: "Explain a cron expression as scheduling text",
		Long: `Convert a cron expression back into canonical scheduling text.

Only the expression shapes cronverse itself produces are recognized;
anything richer (arbitrary lists, step-over-range, Quartz L/W/#) is
reported as not round-trippable.

Examples:
  cronverse explain "0 14 * * *"
  cronverse explain "0 */30 * * * *" --dialect ncrontab
  cronverse explain "0 0 14 ? * 2-6 *" --dialect quartz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := args[0]

			text, err := cronverse.ToNatural(expression, dialect)
			if err != nil {
				return fmt.Errorf("failed to explain expression: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, map[string]string{
					"expression": expression,
					"dialect":    dialect,
					"text":       text,
				})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialect, "dialect", "d", cronverse.DialectUnix, "Source dialect (unix, ncrontab, quartz)")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}
