package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Rollcall CLI - Bulk group membership for your directory service",
	Long: `Rollcall is a command line tool for bulk-adding users as members
or owners of a group in your hosted directory service.

Point it at a group, feed it a list of users (from a file or typed in
one by one), pick a role, and it grants the links one user at a time,
reporting anyone it could not add.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		setLogLevel(debug)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ~/.rollcallrc)")
	rootCmd.PersistentFlags().StringP("server", "s", "", "directory service URL (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func setLogLevel(setToDebug bool) {
	logLevel := slog.LevelInfo
	if setToDebug {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}
