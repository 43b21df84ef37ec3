package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/templui/folio/assets"
	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/export"
	"github.com/templui/folio/internal/logger"
	"github.com/templui/folio/internal/routes"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
)

func ImportCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Insert entries from CONTENT_PATH/portfolio/*.md into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				ctx := context.Background()

				session, err := a.AdminService.SignIn(ctx, email, password)
				var refreshErr *service.RefreshError
				if err != nil && !errors.As(err, &refreshErr) {
					return fmt.Errorf("sign in failed: %w", err)
				}

				n, err := a.ImportService.Import(ctx, session)
				if err != nil {
					return fmt.Errorf("imported %d entries before failing: %w", n, err)
				}
				fmt.Println(color.New(color.FgGreen).Sprint("IMPORTED"), n, "entries from", a.Cfg.ContentPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", os.Getenv("ADMIN_EMAIL"), "admin email (default $ADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password (default $ADMIN_PASSWORD)")
	return cmd
}

func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write a static snapshot of the site to EXPORT_DIR or S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				ctx := context.Background()

				store, err := storage.New(ctx, a.Cfg)
				if err != nil {
					return fmt.Errorf("failed to initialize storage: %w", err)
				}

				exporter := export.New(routes.SetupRoutes(a), assets.AssetsFS, a.PortfolioService, store)
				n, err := exporter.Run(ctx)
				if err != nil {
					return err
				}
				fmt.Println(color.New(color.FgGreen).Sprint("EXPORTED"), n, "files to", store.URL(""))
				return nil
			})
		},
	}
}

func withApp(fn func(a *app.App) error) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN, cfg.AppName)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}
