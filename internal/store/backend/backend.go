// Package backend selects and opens the configured remote store once at startup.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/db"
	"github.com/templui/folio/internal/store"
	"github.com/templui/folio/internal/store/sqlstore"
	"github.com/templui/folio/internal/store/supabase"
)

// Open returns the configured backend, or (nil, nil) when the Supabase backend
// is selected but its URL or key is missing. Callers treat nil as "inert".
func Open(cfg *config.Config) (*store.Backend, error) {
	switch cfg.StoreBackend {
	case config.BackendSQL:
		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return SQL(database, cfg), nil
	default:
		if !cfg.HasSupabase() {
			slog.Warn("supabase not configured, portfolio and admin are disabled",
				"hint", "set SUPABASE_URL and SUPABASE_ANON_KEY")
			return nil, nil
		}

		client := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseTable, cfg.SupabaseTimeout)
		slog.Info("using supabase backend", "url", cfg.SupabaseURL, "table", cfg.SupabaseTable)
		return store.NewBackend(config.BackendSupabase, client, client, nil), nil
	}
}

// SQL wraps an open database as a backend. The backend owns the database.
func SQL(database *sqlx.DB, cfg *config.Config) *store.Backend {
	items := sqlstore.NewItemRepository(database)
	admins := sqlstore.NewAdminRepository(database, cfg.JWTExpiry)
	return store.NewBackend(config.BackendSQL, items, admins, database.Close)
}
