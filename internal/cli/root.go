package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	defaults := DefaultConfig()
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "freeplay",
		Short: "CLI tool for the freePlay storefront API",
		Long: `freeplay is a CLI tool for browsing the freePlay storefront JSON API.

It lists and searches the catalog, shows the library, store and friends views,
and validates or publishes seed documents.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			if loaded.Output != "text" && loaded.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", loaded.Output)
			}
			cfg = loaded

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			if cfg.Verbose {
				client.SetTrace(cmd.ErrOrStderr())
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("server", defaults.ServerURL, "Server URL (env: FREEPLAY_SERVER)")
	rootCmd.PersistentFlags().StringP("output", "o", defaults.Output, "Output format: text, json (env: FREEPLAY_OUTPUT)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", defaults.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newLibraryCmd())
	rootCmd.AddCommand(newStoreCmd())
	rootCmd.AddCommand(newFriendsCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newSeedCmd(defaults))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
