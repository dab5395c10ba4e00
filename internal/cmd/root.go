package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cronverse",
	Short: "cronverse - translate between scheduling language and cron dialects",
	Long: `cronverse converts compact scheduling text ("every weekday at 2pm",
"30m", "1w on sunday at 3am") into Unix, NCrontab or Quartz cron
expressions, and converts those expressions back into plain English.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommand is specified
		_ = cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetOutput sets the output and error writers for the root command
func SetOutput(out, errOut io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
}
