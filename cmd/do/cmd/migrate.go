package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/thrivelog/thrivelog/internal/config"
	"github.com/thrivelog/thrivelog/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect database migrations",
	}

	cmd.AddCommand(
		migrateAction("up", "Apply all pending migrations", func(conn *sqlx.DB, driver string) error {
			return db.RunMigrations(conn.DB, driver)
		}),
		migrateAction("down", "Roll back the most recent migration", func(conn *sqlx.DB, driver string) error {
			return db.MigrateDown(conn.DB, driver)
		}),
		migrateAction("status", "Print the current schema version", func(conn *sqlx.DB, driver string) error {
			version, err := db.MigrationVersion(conn.DB, driver)
			if err != nil {
				return err
			}
			fmt.Printf("schema version: %d\n", version)
			return nil
		}),
	)
	return cmd
}

func migrateAction(use, short string, fn func(conn *sqlx.DB, driver string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(conn) }()

			return fn(conn, cfg.DBDriver)
		},
	}
}
