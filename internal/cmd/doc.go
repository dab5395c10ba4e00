package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cronverse/cronverse/internal/schedfile"
)

func init() {
	rootCmd.AddCommand(newDocCommand())
}

// newDocCommand creates a fresh doc command instance
func newDocCommand() *cobra.Command {
	var (
		filePath string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Generate a markdown reference for a schedule manifest",
		Long: `Render a schedule manifest as a markdown document listing every
schedule with its canonical form and dialect translations.

Examples:
  cronverse doc --file schedules.txt
  cronverse doc --file schedules.txt --output SCHEDULES.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := schedfile.NewReader().ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read manifest: %w", err)
			}

			doc := renderMarkdown(filePath, buildRows(entries))

			if output == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Schedule manifest to document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// renderMarkdown builds the reference document
func renderMarkdown(path string, rows []translationRow) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Schedules: %s\n\n", path))
	b.WriteString("| Name | Schedule | Unix | NCrontab | Quartz |\n")
	b.WriteString("|------|----------|------|----------|--------|\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("| %s | %s | `%s` | `%s` | `%s` |\n",
			row.Name, row.Canonical, row.Unix, row.NCrontab, row.Quartz))
	}
	b.WriteString("\n")

	return b.String()
}
