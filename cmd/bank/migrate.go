package main

import (
	"fmt"

	"github.com/benx421/personal-bank/internal/db"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
)

func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(migrateDirectionCommand(a, "up", "Apply all pending migrations", migrate.Up))
	cmd.AddCommand(migrateDirectionCommand(a, "down", "Roll back all migrations", migrate.Down))

	return cmd
}

func migrateDirectionCommand(a *app, use, short string, direction migrate.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := db.Connect(cmd.Context(), &a.cfg.Database, a.logger)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			n, err := database.Migrate(direction)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s) %s\n", n, use)
			return nil
		},
	}
}
