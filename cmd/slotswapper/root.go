package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/slotswapper-backend/internal/app"
	"github.com/heartmarshall/slotswapper-backend/internal/config"
)

// rootOptions holds global flags and the state prepared for every subcommand.
type rootOptions struct {
	configPath string

	cfg *config.Config
	log *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "slotswapper",
		Short:         "SlotSwapper calendar slot exchange service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				if err := os.Setenv("CONFIG_PATH", opts.configPath); err != nil {
					return err
				}
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = app.NewLogger(cfg.Log, os.Stderr)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (overrides CONFIG_PATH)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newCleanupTokensCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context(), opts.cfg, opts.log)
		},
	}
}

func newCleanupTokensCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.CleanupTokens(cmd.Context(), opts.cfg, opts.log)
			if err != nil {
				return err
			}
			cmd.Printf("Deleted %d expired/revoked refresh tokens.\n", n)
			return nil
		},
	}
}
