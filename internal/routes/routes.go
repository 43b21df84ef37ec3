package routes

import (
	"net/http"

	"github.com/templui/folio/assets"
	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/handler"
	"github.com/templui/folio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.PortfolioService)
	seo := handler.NewSEOHandler(app.PortfolioService, app.Cfg.AppURL)
	theme := handler.NewThemeHandler(app.Cfg.IsProduction())
	particles := handler.NewParticlesHandler()
	admin := handler.NewAdminHandler(app.AdminService, app.SessionService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.AssetsFS))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /particles.svg", particles.SVG)
	mux.HandleFunc("POST /theme", theme.Toggle)

	// ============================================================================
	// ADMIN ROUTES (/admin/*)
	// ============================================================================

	rateLimiter := middleware.RateLimitLogin()

	mux.HandleFunc("GET /admin", admin.AdminPage)
	mux.HandleFunc("POST /admin/login", rateLimiter(admin.Login))
	mux.HandleFunc("POST /admin/logout", admin.Logout)

	mux.HandleFunc("POST /admin/refresh", middleware.RequireAdmin(admin.Refresh))
	mux.HandleFunc("POST /admin/items", middleware.RequireAdmin(admin.Submit))
	mux.HandleFunc("GET /admin/items/{id}/edit", middleware.RequireAdmin(admin.Edit))
	mux.HandleFunc("POST /admin/items/{id}/delete", middleware.RequireAdmin(admin.Delete))
	mux.HandleFunc("DELETE /admin/items/{id}", middleware.RequireAdmin(admin.DeleteAPI))
	mux.HandleFunc("POST /admin/forms/{type}/cancel", middleware.RequireAdmin(admin.Cancel))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestContext(app.Cfg), // Config first (SecurityHeaders reads the Supabase URL)
		middleware.NonceMiddleware,         // Nonce before SecurityHeaders builds the CSP
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Session(app.SessionService),
	)

	return handler
}
