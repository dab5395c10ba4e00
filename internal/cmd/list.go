package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cronverse/cronverse"
	"github.com/cronverse/cronverse/internal/schedfile"
	"github.com/cronverse/cronverse/pkg/emit"
)

// translationRow is one manifest entry with its translations
type translationRow struct {
	Name      string `json:"name" yaml:"name"`
	Text      string `json:"text" yaml:"text"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Unix      string `json:"unix" yaml:"unix"`
	NCrontab  string `json:"ncrontab" yaml:"ncrontab"`
	Quartz    string `json:"quartz" yaml:"quartz"`
}

func init() {
	rootCmd.AddCommand(newListCommand())
}

// newListCommand creates a fresh list command instance
func newListCommand() *cobra.Command {
	var (
		filePath string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a manifest's schedules with their translations",
		Long: `Read a schedule manifest and print every entry together with its
canonical form and its translation into each dialect.

Examples:
  cronverse list --file schedules.txt
  cronverse list --file schedules.txt --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := schedfile.NewReader().ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read manifest: %w", err)
			}

			rows := buildRows(entries)

			switch format {
			case "table":
				writeTable(cmd, rows)
				return nil
			case "json":
				return writeJSON(cmd, rows)
			case "yaml":
				data, err := yaml.Marshal(rows)
				if err != nil {
					return fmt.Errorf("failed to encode YAML: %w", err)
				}
				_, _ = cmd.OutOrStdout().Write(data)
				return nil
			default:
				return fmt.Errorf("unknown format %q (use table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Schedule manifest to read")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// buildRows translates every entry, recording dialect limits inline rather
// than failing the whole listing
func buildRows(entries []*schedfile.Entry) []translationRow {
	codec := cronverse.NewCodec()
	rows := make([]translationRow, 0, len(entries))

	for _, entry := range entries {
		row := translationRow{Name: entry.Name, Text: entry.Text}

		spec, err := codec.Parse(entry.Text)
		if err != nil {
			row.Canonical = fmt.Sprintf("(invalid: %s)", err.Error())
			rows = append(rows, row)
			continue
		}
		row.Canonical = codec.Format(spec)

		if expr, err := codec.ToCron(entry.Text, "", ""); err == nil {
			row.Unix = expr
		} else {
			row.Unix = "(unsupported)"
		}
		if expr, err := codec.ToNCrontab(entry.Text); err == nil {
			row.NCrontab = expr
		} else {
			row.NCrontab = "(unsupported)"
		}
		if out, err := codec.ToQuartz(entry.Text, ""); err == nil {
			row.Quartz = quartzCell(out)
		} else {
			row.Quartz = "(unsupported)"
		}

		rows = append(rows, row)
	}

	return rows
}

// quartzCell renders a quartz output for a single listing cell
func quartzCell(out emit.QuartzOutput) string {
	switch v := out.(type) {
	case emit.QuartzCron:
		return v.Expression
	case emit.QuartzCalendarInterval:
		return fmt.Sprintf("calendar-interval every %d %s", v.Interval, v.Unit.Plural())
	default:
		return ""
	}
}

func writeTable(cmd *cobra.Command, rows []translationRow) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", applyStyle(headingStyle,
		fmt.Sprintf("%-16s %-28s %-20s %-24s %s", "NAME", "CANONICAL", "UNIX", "NCRONTAB", "QUARTZ")))
	for _, row := range rows {
		_, _ = fmt.Fprintf(out, "%-16s %-28s %-20s %-24s %s\n",
			row.Name, row.Canonical, row.Unix, row.NCrontab, row.Quartz)
	}
}
