package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/adapters/coa"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/core/services"
	"github.com/SscSPs/gl_ledger_service/internal/handlers"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
	"github.com/SscSPs/gl_ledger_service/internal/platform/analytics"
	"github.com/SscSPs/gl_ledger_service/internal/platform/config"
	"github.com/SscSPs/gl_ledger_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/gl_ledger_service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title GL Ledger Service API
// @version 1.0
// @description Journal entry engine of the general ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnectTimeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)

	chart, closeChart, err := newChartOfAccounts(ctx, cfg, dbPool, logger)
	if err != nil {
		logger.Error("Failed to initialize chart of accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeChart()

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var rateLimiter *limiter.Limiter
	if cfg.RateLimit != "" {
		rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid RATE_LIMIT", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
			os.Exit(1)
		}
		rateLimiter = limiter.New(memory.NewStore(), rate)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderUserID, middleware.HeaderCompanyID, middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if cfg.PosthogAPIKey != "" {
		tracker, err := analytics.NewPosthogTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
		if err != nil {
			logger.Warn("Continuing without usage tracking", slog.String("error", err.Error()))
		} else {
			defer tracker.Close()
			r.Use(middleware.UsageTracking(tracker))
		}
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool), chart)
	handlers.RegisterRoutes(r, cfg, container, dbPool, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newChartOfAccounts builds the configured directory, wrapped in the Redis cache when REDIS_ADDR is set.
// The returned func releases what it opened.
func newChartOfAccounts(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) (portssvc.ChartOfAccounts, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var chart portssvc.ChartOfAccounts
	switch cfg.CoAMode {
	case config.CoAModeHTTP:
		chart = coa.NewHTTPDirectory(cfg.CoABaseURL, cfg.CoATimeout)
	case config.CoAModeSQL:
		db := stdlib.OpenDBFromPool(dbPool)
		closers = append(closers, func() { closeDB(db, logger) })
		chart = coa.NewSQLDirectory(db)
	case config.CoAModeStatic:
		if cfg.CoAStaticFile == "" {
			logger.Warn("COA_MODE is static without COA_STATIC_FILE; every account will be rejected")
			chart = coa.NewStaticDirectory()
			break
		}
		dir, err := coa.LoadStaticDirectory(cfg.CoAStaticFile)
		if err != nil {
			return nil, closeAll, err
		}
		chart = dir
	}

	cached := false
	if cfg.RedisAddr != "" && cfg.CoACacheTTL <= 0 {
		logger.Info("COA_CACHE_TTL is not positive; chart of accounts cache disabled")
	} else if cfg.RedisAddr != "" {
		rdb, err := database.NewRedisClient(ctx, database.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			// The cache is optional; run uncached.
			logger.Warn("Continuing without chart of accounts cache", slog.String("error", err.Error()))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			chart = coa.NewCachedDirectory(chart, rdb, cfg.CoACacheTTL)
			cached = true
		}
	}

	logger.Info("Chart of accounts configured", slog.String("mode", cfg.CoAMode), slog.Bool("cached", cached))
	return chart, closeAll, nil
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Error closing chart of accounts DB handle", slog.String("error", err.Error()))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
