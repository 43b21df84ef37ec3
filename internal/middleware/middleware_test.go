package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimiterWindow(t *testing.T) {
	rl := &RateLimiter{requests: map[string][]time.Time{}, limit: 2, window: time.Minute}
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	allowed, _ := rl.Allow("1.2.3.4")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)

	allowed, wait := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, wait)

	allowed, _ = rl.Allow("5.6.7.8")
	assert.True(t, allowed, "limits are per ip")

	now = now.Add(time.Minute + time.Second)
	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)

	rl.cleanup()
	assert.Len(t, rl.requests, 1)
	assert.Len(t, rl.requests["1.2.3.4"], 1)
}

func TestRateLimitRespondsTooManyRequests(t *testing.T) {
	limited := RateLimit(&RateLimiter{requests: map[string][]time.Time{}, limit: 1, window: time.Minute, now: time.Now})(ok)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"

	rec := httptest.NewRecorder()
	limited(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	limited(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestCSRFProtection(t *testing.T) {
	var seen string
	h := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.CSRFToken(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	token := cookies[0].Value
	assert.Equal(t, token, seen)

	// missing token
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// form field
	form := url.Values{CSRFFormField: {token}}
	req = httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// header
	req = httptest.NewRequest(http.MethodDelete, "/admin/items/1", nil)
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeadersAllowWasmAndNonce(t *testing.T) {
	cfg := &config.Config{AppEnv: "production", SupabaseURL: "https://abc.supabase.co"}
	h := Chain(http.HandlerFunc(ok), RequestContext(cfg), NonceMiddleware, SecurityHeaders)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'wasm-unsafe-eval'")
	assert.Contains(t, csp, "'nonce-")
	assert.Contains(t, csp, "connect-src 'self' https://abc.supabase.co")
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRequestContext(t *testing.T) {
	cfg := &config.Config{AppName: "Folio", JWTSecret: "secret"}
	var got *config.Config
	var path, th string
	h := RequestContext(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Config(r.Context())
		path = ctxkeys.URLPath(r.Context())
		th = ctxkeys.Theme(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "Folio", got.AppName)
	assert.Empty(t, got.JWTSecret)
	assert.Equal(t, "/admin", path)
	assert.Equal(t, "dark", th)
}

func TestSessionMiddleware(t *testing.T) {
	sessions := service.NewSessionService("secret", false, time.Hour)
	token, err := sessions.GenerateJWT(&model.Session{ID: "sid", Email: "me@example.com"})
	require.NoError(t, err)

	var got *model.Session
	h := Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Session(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, got)
	assert.Equal(t, "sid", got.ID)

	got = nil
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Nil(t, got)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(ok)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/admin/items", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/admin/items/1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin/items", nil)
	req = req.WithContext(ctxkeys.WithSession(req.Context(), &model.Session{ID: "sid"}))
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLoggingSetsID(t *testing.T) {
	var id string
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = ctxkeys.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}
