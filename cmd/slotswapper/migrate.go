package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.Migrate(cmd.Context(), opts.cfg.Database.DSN, opts.log)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.MigrateDown(cmd.Context(), opts.cfg.Database.DSN, opts.log)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := postgres.MigrationStatus(cmd.Context(), opts.cfg.Database.DSN)
			if err != nil {
				return err
			}
			cmd.Printf("schema version: %d\n", v)
			return nil
		},
	})

	return cmd
}
