package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollcall/cli/internal/auth"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status",
	Long: `Display information about the current directory session.

This command checks for:
  1. A stored session token (from 'rollcall login')
  2. An API key (fallback, if configured in .rollcallrc)

Examples:
  rollcall status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Server: %s\n\n", cfg.Host)

	// Check for a stored session first (higher priority)
	if creds, err := auth.LoadCredentials(); err == nil {
		fmt.Println("Status: Authenticated (session token)")
		if creds.Name != "" {
			fmt.Printf("Operator:   %s (%s)\n", creds.Name, creds.Subject)
		} else if creds.Subject != "" {
			fmt.Printf("Operator:   %s\n", creds.Subject)
		}
		fmt.Printf("Expires in: %s\n", creds.TimeRemaining().Round(time.Second))
		return nil
	}

	// Fall back to API key (if configured)
	if cfg.IsAuthenticated() {
		fmt.Println("Status: Authenticated (API key from config)")
		return nil
	}

	// Not authenticated
	fmt.Println("Status: Not authenticated")
	fmt.Println()
	fmt.Println("To authenticate, run:")
	fmt.Println("  rollcall login --token <token>")
	fmt.Println()
	fmt.Println("Or configure an API key in .rollcallrc.")

	return nil
}
