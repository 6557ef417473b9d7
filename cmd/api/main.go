// Package main is the entry point for the Madrasah Accounts API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/madrasah-accounts/backend/config"
	"github.com/madrasah-accounts/backend/internal/application/usecase/auth"
	"github.com/madrasah-accounts/backend/internal/application/usecase/counterparty"
	"github.com/madrasah-accounts/backend/internal/application/usecase/report"
	"github.com/madrasah-accounts/backend/internal/application/usecase/table"
	"github.com/madrasah-accounts/backend/internal/application/usecase/transaction"
	"github.com/madrasah-accounts/backend/internal/infra/db"
	"github.com/madrasah-accounts/backend/internal/infra/server/router"
	"github.com/madrasah-accounts/backend/internal/integration/adapters"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/controller"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/middleware"
	"github.com/madrasah-accounts/backend/internal/integration/persistence"
	"github.com/madrasah-accounts/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Madrasah Accounts API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.TransactionModel{},
			&model.CounterpartyModel{},
			&model.SavedSenderModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	healthController := controller.NewHealthController(dbHealthChecker)

	var authController *controller.AuthController
	var transactionController *controller.TransactionController
	var reportController *controller.ReportController
	var counterpartyController *controller.CounterpartyController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		redisClient, err := newRedisClient(&cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()

		// Repositories
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		counterpartyRepo := persistence.NewCounterpartyRepository(database.DB())
		savedSenderRepo := persistence.NewSavedSenderRepository(database.DB())

		// Adapters/services
		sessionStore := adapters.NewRedisSessionStore(redisClient)
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, sessionStore)

		// Auth use cases
		loginUseCase := auth.NewLoginUseCase(cfg.Auth.AdminPasswordHash, passwordService, tokenService)
		logoutUseCase := auth.NewLogoutUseCase(tokenService)

		// Transaction use cases
		listUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		createUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, savedSenderRepo)
		deleteUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		// Table use cases
		browseUseCase := table.NewBrowseTransactionsUseCase(transactionRepo)
		exportUseCase := table.NewExportCSVUseCase(transactionRepo)

		// Report use cases
		summaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
		breakdownUseCase := report.NewGetBreakdownUseCase(transactionRepo)
		receiverStatsUseCase := report.NewGetReceiverStatsUseCase(transactionRepo)

		// Counterparty use cases
		listCounterpartiesUseCase := counterparty.NewListCounterpartiesUseCase(counterpartyRepo)
		listSendersUseCase := counterparty.NewListSavedSendersUseCase(savedSenderRepo)
		saveSenderUseCase := counterparty.NewSaveSenderUseCase(savedSenderRepo)
		deleteSenderUseCase := counterparty.NewDeleteSenderUseCase(savedSenderRepo)

		authController = controller.NewAuthController(loginUseCase, logoutUseCase)
		transactionController = controller.NewTransactionController(
			listUseCase,
			createUseCase,
			deleteUseCase,
			browseUseCase,
			exportUseCase,
		)
		reportController = controller.NewReportController(
			summaryUseCase,
			breakdownUseCase,
			receiverStatsUseCase,
		)
		counterpartyController = controller.NewCounterpartyController(
			listCounterpartiesUseCase,
			listSendersUseCase,
			saveSenderUseCase,
			deleteSenderUseCase,
		)

		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("API systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		reportController,
		counterpartyController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds the Redis client for the session registry.
func newRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
