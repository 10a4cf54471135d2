package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollcall/cli/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored directory session",
	Long: `Remove the locally stored session token.

This only clears local state; it does not revoke the token with the
directory service.

Examples:
  rollcall logout`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if !auth.HasCredentials() {
		fmt.Println("No stored session to clear.")
		return nil
	}

	if err := auth.ClearCredentials(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}
