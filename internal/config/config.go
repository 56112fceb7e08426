package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver       string
	DBConnection   string
	MigrateOnStart bool

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Auth0 (OpenID Connect authorization code flow)
	Auth0Domain       string
	Auth0ClientID     string
	Auth0ClientSecret string
	Auth0Audience     string

	// AI (optional, disabled without an API key)
	GeminiAPIKey     string
	GeminiModel      string
	AITimeout        time.Duration
	AIMaxRetries     int
	AIRateLimit      int           // requests per user per AIRateWindow
	AIRateWindow     time.Duration
	InsightsCacheTTL time.Duration

	// Cache (optional, no caching without an address)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Observability (optional)
	LogLevel  string
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Thrivelog"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envRequired("APP_URL"), // Required: base URL for OAuth redirects
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:       envString("DB_DRIVER", "sqlite"),
		DBConnection:   envString("DB_CONNECTION", "./data/thrivelog.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),
		MigrateOnStart: envBool("DB_MIGRATE_ON_START", true),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Auth0
		Auth0Domain:       envString("AUTH0_DOMAIN", ""),
		Auth0ClientID:     envString("AUTH0_CLIENT_ID", ""),
		Auth0ClientSecret: envString("AUTH0_CLIENT_SECRET", ""),
		Auth0Audience:     envString("AUTH0_AUDIENCE", ""),

		// AI
		GeminiAPIKey:     envString("GEMINI_API_KEY", ""),
		GeminiModel:      envString("GEMINI_MODEL", "gemini-2.0-flash"),
		AITimeout:        envDuration("AI_TIMEOUT", 30*time.Second),
		AIMaxRetries:     envInt("AI_MAX_RETRIES", 3),
		AIRateLimit:      envInt("AI_RATE_LIMIT", 20),
		AIRateWindow:     envDuration("AI_RATE_WINDOW", time.Minute),
		InsightsCacheTTL: envDuration("INSIGHTS_CACHE_TTL", 24*time.Hour),

		// Cache
		RedisAddr:     envString("REDIS_ADDR", ""),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		// Observability
		LogLevel:  envString("LOG_LEVEL", ""),
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures login works in production deployments.
// Development allows running without Auth0 and minting tokens with `do token`.
func validateProduction(cfg *Config) {
	if !cfg.Auth0Enabled() {
		slog.Error("production deployment requires AUTH0_DOMAIN, AUTH0_CLIENT_ID and AUTH0_CLIENT_SECRET",
			"hint", "set APP_ENV=development for local testing with `do token`")
		os.Exit(1)
	}
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

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
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

func (c *Config) Auth0Enabled() bool {
	return c.Auth0Domain != "" && c.Auth0ClientID != "" && c.Auth0ClientSecret != ""
}

func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
// Safe to expose in ctx and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		Auth0Domain:   c.Auth0Domain,
		Auth0ClientID: c.Auth0ClientID,

		GeminiModel: c.GeminiModel,
	}
}
