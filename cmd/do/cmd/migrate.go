package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back SQL migrations (STORE_BACKEND=sql)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(cfg *config.Config, database *sqlx.DB) error {
				return db.RunMigrations(database.DB, cfg.DBDriver)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(cfg *config.Config, database *sqlx.DB) error {
				return db.MigrateDown(database.DB, cfg.DBDriver)
			})
		},
	})
	return cmd
}

func withDatabase(fn func(cfg *config.Config, database *sqlx.DB) error) error {
	cfg := config.Load()
	if cfg.StoreBackend != config.BackendSQL {
		return fmt.Errorf("STORE_BACKEND is %q, migrations only apply to %q", cfg.StoreBackend, config.BackendSQL)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer database.Close()

	err = fn(cfg, database)
	if err != nil {
		return err
	}
	fmt.Println(color.New(color.FgGreen).Sprint("OK"), cfg.DBDriver)
	return nil
}
