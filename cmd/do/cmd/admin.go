package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/db"
	"github.com/templui/folio/internal/store/sqlstore"
	"github.com/templui/folio/internal/validation"
)

func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts (STORE_BACKEND=sql)",
	}
	cmd.AddCommand(adminCreateCmd())
	return cmd
}

func adminCreateCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin who can sign in at /admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validation.Email(email)
			if err != nil {
				return err
			}
			err = validation.Password(password)
			if err != nil {
				return err
			}

			return withDatabase(func(cfg *config.Config, database *sqlx.DB) error {
				err := db.RunMigrations(database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}

				admins := sqlstore.NewAdminRepository(database, cfg.JWTExpiry)
				user, err := admins.Create(context.Background(), email, password)
				if err != nil {
					return fmt.Errorf("failed to create admin: %w", err)
				}
				fmt.Println(color.New(color.FgGreen).Sprint("CREATED"), user.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
