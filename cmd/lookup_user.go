package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lookupUserCmd = &cobra.Command{
	Use:   "user <identifier>",
	Short: "Resolve a user mailbox by name or email",
	Long: `Resolve a free-form identifier to a single user mailbox.

Mailbox lookups are unique by the directory's contract, so this either
finds exactly one user or nothing.

Examples:
  rollcall lookup user alice@example.com
  rollcall lookup user "Alice Adams"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupUser,
}

func init() {
	lookupCmd.AddCommand(lookupUserCmd)
}

func runLookupUser(cmd *cobra.Command, args []string) error {
	client, err := newDirectoryClient(cmd)
	if err != nil {
		return err
	}

	user, err := client.ResolveUser(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("ID:           %s\n", user.ID)
	if user.DisplayName != "" {
		fmt.Printf("Display Name: %s\n", user.DisplayName)
	}
	if user.Mail != "" {
		fmt.Printf("Mail:         %s\n", user.Mail)
	}

	return nil
}
