package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendSQL      = "sql"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	AppTagline  string
	OwnerName   string
	ContentPath string
	Particles   bool

	// Remote store selection: "supabase" (default) or "sql"
	StoreBackend string

	// Supabase (optional: admin and portfolio degrade to an empty state without it)
	SupabaseURL     string
	SupabaseAnonKey string
	SupabaseTable   string
	SupabaseTimeout time.Duration

	// Database (only used when STORE_BACKEND=sql)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Admin cache (optional: in-memory when empty)
	RedisURL string

	// Observability (optional)
	SentryDSN string

	// Export (S3-compatible bucket is optional, local dir is the fallback)
	ExportDir   string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Folio"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		AppTagline:  envString("APP_TAGLINE", "Web apps, projects and Python packages"),
		OwnerName:   envString("OWNER_NAME", "Folio"),
		ContentPath: envString("CONTENT_PATH", "content"),
		Particles:   envBool("PARTICLES", true),

		StoreBackend: strings.ToLower(envString("STORE_BACKEND", BackendSupabase)),

		// Supabase
		SupabaseURL:     strings.TrimSuffix(envString("SUPABASE_URL", ""), "/"),
		SupabaseAnonKey: envString("SUPABASE_ANON_KEY", ""),
		SupabaseTable:   envString("SUPABASE_TABLE", "portfolio_items"),
		SupabaseTimeout: envDuration("SUPABASE_TIMEOUT", 10*time.Second),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/folio.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 12*time.Hour),

		RedisURL: envString("REDIS_URL", ""),

		SentryDSN: envString("SENTRY_DSN", ""),

		ExportDir:   envString("EXPORT_DIR", "dist"),
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	if cfg.StoreBackend != BackendSupabase && cfg.StoreBackend != BackendSQL {
		slog.Warn("config unknown store backend, using default", "value", cfg.StoreBackend, "default", BackendSupabase)
		cfg.StoreBackend = BackendSupabase
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasSupabase reports whether both the endpoint and the public key are set.
func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// HasS3 reports whether exports should go to a bucket instead of ExportDir.
func (c *Config) HasS3() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		AppURL:       c.AppURL,
		Port:         c.Port,
		AppTagline:   c.AppTagline,
		OwnerName:    c.OwnerName,
		Particles:    c.Particles,
		StoreBackend: c.StoreBackend,
		SupabaseURL:  c.SupabaseURL, // Needed for CSP connect-src
	}
}
