package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/folio/internal/ctxkeys"
)

// SecurityHeaders sets the CSP and the usual hardening headers. Scripts need
// the request nonce; WebAssembly compilation is allowed for the client.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy(r))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(r *http.Request) string {
	script := "script-src 'self' 'wasm-unsafe-eval'"
	if nonce := GetNonce(r.Context()); nonce != "" {
		script += " 'nonce-" + nonce + "'"
	}

	connect := "connect-src 'self'"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.SupabaseURL != "" {
		connect += " " + cfg.SupabaseURL
	}

	return strings.Join([]string{
		"default-src 'self'",
		script,
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		connect,
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}, "; ")
}
