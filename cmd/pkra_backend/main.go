package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/handlers"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/sidharthsanthos/PKRA/internal/platform/config"
	"github.com/sidharthsanthos/PKRA/internal/repositories/database/pgsql"
	"github.com/sidharthsanthos/PKRA/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
)

// @title PKRA Ledger API
// @version 1.0
// @description Payment ledger and reconciliation backend for association dues.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Custom binding rules must be registered before any request is served.
	dto.RegisterValidations()

	r := gin.New()

	// Global middleware (logging, recovery, cors, operator identity)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Operator-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.OperatorMiddleware())

	if limiterInstance := buildRateLimiter(cfg, logger); limiterInstance != nil {
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Periodic drift sweep over the current cycle's statuses
	sweeper := startDriftSweeper(cfg, serviceContainer, logger)
	if sweeper != nil {
		defer sweeper.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations at boot, using a
// temporary database/sql connection over the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildRateLimiter constructs an in-memory IP rate limiter from the
// configured rate. Returns nil when rate limiting is disabled.
func buildRateLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	if cfg.RateLimit == "" {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format, rate limiting disabled", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		return nil
	}
	return limiter.New(memory.NewStore(), rate)
}

// startDriftSweeper schedules the periodic reconciliation sweep of the
// current cycle. Returns nil when the sweep is disabled.
func startDriftSweeper(cfg *config.Config, container *portssvc.ServiceContainer, logger *slog.Logger) *cron.Cron {
	if cfg.DriftSweepSpec == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.DriftSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cycle, err := container.Cycle.CurrentCycle(ctx, time.Now().UTC())
		if err != nil {
			logger.Warn("Drift sweep skipped: no current cycle", slog.String("error", err.Error()))
			return
		}

		repaired, err := container.Reconciler.SweepCycle(ctx, cycle.CycleID, "drift-sweeper")
		if err != nil {
			logger.Error("Drift sweep failed", slog.String("cycle_id", cycle.CycleID), slog.String("error", err.Error()))
			return
		}
		if repaired > 0 {
			logger.Warn("Drift sweep repaired statuses", slog.String("cycle_id", cycle.CycleID), slog.Int("repaired", repaired))
		}
	})
	if err != nil {
		logger.Error("Invalid DRIFT_SWEEP_SPEC, sweep disabled", slog.String("spec", cfg.DriftSweepSpec), slog.String("error", err.Error()))
		return nil
	}

	c.Start()
	logger.Info("Drift sweeper scheduled", slog.String("spec", cfg.DriftSweepSpec))
	return c
}
