package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cronverse/cronverse"
	"github.com/cronverse/cronverse/pkg/emit"
)

func init() {
	rootCmd.AddCommand(newTranslateCommand())
}

// newTranslateCommand creates a fresh translate command instance. Commands
// are built per instance so tests get isolated flag state.
func newTranslateCommand() *cobra.Command {
	var (
		dialect    string
		userZone   string
		serverZone string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "translate <schedule-text>",
		Short: "Translate scheduling text into a cron expression",
		Long: `Convert natural scheduling text into the target dialect.

Supports:
  - Unix 5-field cron (minute hour dom month dow)
  - NCrontab 6-field cron with a leading seconds column
  - Quartz cron, or a calendar-interval description where cron cannot
    express the schedule

Examples:
  cronverse translate "every weekday at 2pm"
  cronverse translate "30m" --dialect ncrontab
  cronverse translate "every 3 months" --dialect quartz
  cronverse translate "1d at 2am" --zone Europe/Paris --server-zone UTC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			codec := cronverse.NewCodec()

			switch dialect {
			case cronverse.DialectUnix:
				expr, err := codec.ToCron(text, serverZone, userZone)
				if err != nil {
					return fmt.Errorf("failed to translate: %w", err)
				}
				return writeTranslation(cmd, asJSON, text, dialect, expr)

			case cronverse.DialectNCrontab:
				expr, err := codec.ToNCrontab(text)
				if err != nil {
					return fmt.Errorf("failed to translate: %w", err)
				}
				return writeTranslation(cmd, asJSON, text, dialect, expr)

			case cronverse.DialectQuartz:
				out, err := codec.ToQuartz(text, userZone)
				if err != nil {
					return fmt.Errorf("failed to translate: %w", err)
				}
				return writeQuartz(cmd, asJSON, text, out)

			default:
				return fmt.Errorf("unknown dialect %q (use unix, ncrontab or quartz)", dialect)
			}
		},
	}

	cmd.Flags().StringVarP(&dialect, "dialect", "d", cronverse.DialectUnix, "Target dialect (unix, ncrontab, quartz)")
	cmd.Flags().StringVar(&userZone, "zone", "", "IANA zone the schedule's time is written in (default: host zone)")
	cmd.Flags().StringVar(&serverZone, "server-zone", "", "IANA zone the cron daemon runs in (default: no conversion)")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}

func writeTranslation(cmd *cobra.Command, asJSON bool, text, dialect, expr string) error {
	if asJSON {
		return writeJSON(cmd, map[string]string{
			"text":       text,
			"dialect":    dialect,
			"expression": expr,
		})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), expr)
	return nil
}

func writeQuartz(cmd *cobra.Command, asJSON bool, text string, out emit.QuartzOutput) error {
	switch v := out.(type) {
	case emit.QuartzCron:
		if asJSON {
			return writeJSON(cmd, map[string]string{
				"text":       text,
				"dialect":    cronverse.DialectQuartz,
				"kind":       "cron",
				"expression": v.Expression,
				"zone":       v.TimeZone,
			})
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.Expression)
		return nil

	case emit.QuartzCalendarInterval:
		if asJSON {
			return writeJSON(cmd, map[string]any{
				"text":     text,
				"dialect":  cronverse.DialectQuartz,
				"kind":     "calendar-interval",
				"interval": v.Interval,
				"unit":     v.Unit.Plural(),
				"start":    v.StartTime,
				"zone":     v.TimeZone,
				"misfire":  v.MisfireHint,
			})
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "calendar-interval: every %d %s starting %s (%s)\n",
			v.Interval, v.Unit.Plural(), v.StartTime.Format("2006-01-02 15:04"), v.TimeZone)
		return nil

	default:
		return fmt.Errorf("unexpected quartz output type %T", out)
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
