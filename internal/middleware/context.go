package middleware

import (
	"net/http"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/web/theme"
)

// RequestContext stores what every page needs to render: the sanitized
// config (no secrets), the request path and the visitor's theme cookie.
func RequestContext(cfg *config.Config) func(http.Handler) http.Handler {
	public := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), public)
			ctx = ctxkeys.WithURLPath(ctx, r.URL.Path)
			if c, err := r.Cookie(theme.StorageKey); err == nil {
				ctx = ctxkeys.WithTheme(ctx, c.Value)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
