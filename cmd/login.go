package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollcall/cli/internal/auth"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a directory session token for later runs",
	Long: `Store an admin session token for the directory service.

Rollcall does not handle your directory credentials itself. Obtain a
session token from your directory's admin portal (or whatever issuer
your organization uses) and hand it to this command. The token's expiry
is read from its claims; expired tokens are rejected.

An API key configured in .rollcallrc is used as a fallback when no
session token is stored.

Examples:
  rollcall login --token "$(my-idp-tool mint-admin-token)"`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "Session token issued for directory administration (required)")
	loginCmd.MarkFlagRequired("token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	claims, err := auth.ParseTokenClaims(loginToken)
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}

	if claims.IsExpired() {
		return fmt.Errorf("session token is already expired (expired %s)", claims.ExpiryTime().Format("2006-01-02 15:04:05"))
	}

	if err := auth.StoreCredentials(claims.ToStoredCredentials(loginToken)); err != nil {
		return err
	}

	fmt.Println("Logged in successfully!")
	fmt.Println()
	if claims.Name != "" {
		fmt.Printf("Operator:   %s (%s)\n", claims.Name, claims.Subject)
	} else {
		fmt.Printf("Operator:   %s\n", claims.Subject)
	}
	fmt.Printf("Expires in: %s\n", claims.ExpiresIn().Round(time.Second))

	return nil
}
