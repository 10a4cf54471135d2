package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollcall/cli/internal/auth"
	"github.com/rollcall/cli/internal/config"
	"github.com/rollcall/cli/internal/directory"
)

// loadConfig loads the CLI configuration, honoring the --config and --server
// persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override with server flag if provided
	if serverFlag, _ := cmd.Flags().GetString("server"); serverFlag != "" {
		cfg.Host = serverFlag
	}

	return cfg, nil
}

// newDirectoryClient builds an authenticated directory client, or fails with
// a login hint when no session is available.
func newDirectoryClient(cmd *cobra.Command) (*directory.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	token, err := auth.GetAuthToken(cfg.ApiKey)
	if err != nil {
		return nil, err
	}

	return directory.NewClient(cfg.Host, token), nil
}
