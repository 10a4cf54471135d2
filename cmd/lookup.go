package cmd

import (
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Resolve identifiers against the directory",
	Long: `Commands for resolving free-form identifiers (names or emails)
against the directory without changing anything.

Useful for checking an identifier before feeding it to 'rollcall add'.

Examples:
  rollcall lookup group sales@example.com
  rollcall lookup user "Alice Adams"`,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
