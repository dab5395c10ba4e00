package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cronverse/cronverse/internal/check"
	"github.com/cronverse/cronverse/internal/schedfile"
	"github.com/cronverse/cronverse/pkg/emit"
)

func init() {
	rootCmd.AddCommand(newCheckCommand())
}

// newCheckCommand creates a fresh check command instance
func newCheckCommand() *cobra.Command {
	var (
		filePath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "check [schedule-text]",
		Short: "Validate schedules against every cron dialect",
		Long: `Validate a schedule (or a whole manifest) and report anything that
will not translate cleanly: unparseable text, dialect limits, day-of-month
values that skip short months, weekday/day-of-month conflicts.

Examples:
  cronverse check "every weekday at 2pm"
  cronverse check "every 30 seconds"
  cronverse check --file schedules.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := check.NewValidator(emit.DefaultEnv())

			var result check.ValidationResult
			switch {
			case filePath != "":
				result = validator.ValidateManifest(schedfile.NewReader(), filePath)
			case len(args) == 1:
				result = validator.ValidateText(args[0])
			default:
				return fmt.Errorf("provide schedule text or --file")
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			writeIssues(cmd, result)

			if !result.Valid {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Schedule manifest to validate")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}

func writeIssues(cmd *cobra.Command, result check.ValidationResult) {
	out := cmd.OutOrStdout()

	for _, issue := range result.Issues {
		label := issue.Severity.String()
		switch {
		case issue.Severity.IsError():
			label = applyStyle(errorStyle, label)
		case issue.Severity.IsWarning():
			label = applyStyle(warnStyle, label)
		default:
			label = applyStyle(infoStyle, label)
		}

		location := ""
		if issue.LineNumber > 0 {
			location = fmt.Sprintf("line %d: ", issue.LineNumber)
		}
		_, _ = fmt.Fprintf(out, "%s[%s] %s: %s\n", location, label, issue.Code, issue.Message)
		if issue.Hint != "" {
			_, _ = fmt.Fprintf(out, "  hint: %s\n", issue.Hint)
		}
	}

	if result.Valid && len(result.Issues) == 0 {
		_, _ = fmt.Fprintln(out, applyStyle(successStyle, "OK"))
	}
}
