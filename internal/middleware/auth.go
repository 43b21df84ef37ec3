package middleware

import (
	"log/slog"
	"net/http"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/service"
)

// Session puts the signed-in admin into the context when the request carries
// a valid session cookie. A cookie that no longer verifies is cleared.
func Session(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.FromRequest(r)
			if err != nil {
				if _, cerr := r.Cookie(service.SessionCookie); cerr == nil {
					slog.Debug("dropping invalid admin session", "error", err)
					sessions.ClearCookie(w)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin sends visitors without a session back to the login form.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Session(r.Context()) == nil {
			if r.Method == http.MethodDelete {
				http.Error(w, "not signed in", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
