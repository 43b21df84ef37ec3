package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/templui/folio/internal/admincache"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/store"
	"github.com/templui/folio/internal/store/backend"
	"github.com/templui/folio/internal/service"
)

type App struct {
	Cfg              *config.Config
	Backend          *store.Backend
	Redis            *redis.Client
	SessionService   *service.SessionService
	PortfolioService *service.PortfolioService
	AdminService     *service.AdminService
	ImportService    *service.ImportService
}

func New(cfg *config.Config) (*App, error) {
	// Store (nil when Supabase is selected but not configured)
	b, err := backend.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %v", err)
	}

	// Admin cache
	var cache admincache.Cache = admincache.NewMemory(cfg.JWTExpiry)
	var client *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err = admincache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to initialize admin cache: %v", err)
		}
		cache = admincache.NewRedis(client, cfg.JWTExpiry)
		slog.Info("admin cache using redis")
	}

	// Services
	sessionService := service.NewSessionService(cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
	portfolioService := service.NewPortfolioService(b)
	adminService := service.NewAdminService(b, cache)
	importService := service.NewImportService(b, cfg.ContentPath)

	return &App{
		Cfg:              cfg,
		Backend:          b,
		Redis:            client,
		SessionService:   sessionService,
		PortfolioService: portfolioService,
		AdminService:     adminService,
		ImportService:    importService,
	}, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	errs = append(errs, a.Backend.Close())
	return errors.Join(errs...)
}
