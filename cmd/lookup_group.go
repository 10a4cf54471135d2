package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lookupGroupCmd = &cobra.Command{
	Use:   "group <identifier>",
	Short: "Resolve a group by name or email",
	Long: `Resolve a free-form identifier to a single directory group.

Fails when nothing matches or when more than one group matches.

Examples:
  rollcall lookup group sales@example.com
  rollcall lookup group "Sales Team"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupGroup,
}

func init() {
	lookupCmd.AddCommand(lookupGroupCmd)
}

func runLookupGroup(cmd *cobra.Command, args []string) error {
	client, err := newDirectoryClient(cmd)
	if err != nil {
		return err
	}

	group, err := client.ResolveGroup(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("ID:           %s\n", group.ID)
	if group.DisplayName != "" {
		fmt.Printf("Display Name: %s\n", group.DisplayName)
	}
	if group.Mail != "" {
		fmt.Printf("Mail:         %s\n", group.Mail)
	}

	return nil
}
