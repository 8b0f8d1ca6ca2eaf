package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Chart-of-accounts sources.
const (
	CoAModeHTTP   = "http"
	CoAModeSQL    = "sql"
	CoAModeStatic = "static"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	LogLevel         string
	DBMaxConns       int32
	DBConnectTimeout time.Duration
	MigrationsPath   string
	// JWTSecret enables bearer verification when non-empty.
	JWTSecret string

	CoAMode       string
	CoABaseURL    string
	CoATimeout    time.Duration
	CoAStaticFile string
	CoACacheTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RateLimit uses the limiter format, e.g. "100-M". Empty disables rate limiting.
	RateLimit          string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	// PosthogAPIKey enables usage tracking when non-empty.
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("COA_MODE", CoAModeHTTP)
	v.SetDefault("COA_BASE_URL", "")
	v.SetDefault("COA_TIMEOUT", "3s")
	v.SetDefault("COA_STATIC_FILE", "")
	v.SetDefault("COA_CACHE_TTL", "5m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		DBMaxConns:    v.GetInt32("DB_MAX_CONNS"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		CoAMode:       strings.ToLower(v.GetString("COA_MODE")),
		CoABaseURL:    v.GetString("COA_BASE_URL"),
		CoAStaticFile: v.GetString("COA_STATIC_FILE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RateLimit:     v.GetString("RATE_LIMIT"),

		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	if !strings.Contains(cfg.MigrationsPath, "://") {
		cfg.MigrationsPath = "file://" + cfg.MigrationsPath
	}

	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	var err error
	if cfg.DBConnectTimeout, err = durationOf(v, "DB_CONNECT_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.CoATimeout, err = durationOf(v, "COA_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.CoACacheTTL, err = durationOf(v, "COA_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = durationOf(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Identity headers are trusted as injected by the gateway.")
	}

	switch cfg.CoAMode {
	case CoAModeHTTP:
		if cfg.CoABaseURL == "" {
			return nil, fmt.Errorf("COA_BASE_URL is required when COA_MODE is %q", CoAModeHTTP)
		}
	case CoAModeSQL, CoAModeStatic:
	default:
		return nil, fmt.Errorf("unsupported COA_MODE %q", cfg.CoAMode)
	}

	return cfg, nil
}

func durationOf(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
