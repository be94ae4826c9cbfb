package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/caixaflow/caixaflow/internal/adapter/http"
	"github.com/caixaflow/caixaflow/internal/adapter/http/handler"
	"github.com/caixaflow/caixaflow/internal/adapter/http/middleware"
	postgresRepo "github.com/caixaflow/caixaflow/internal/adapter/repository/postgres"
	redisRepo "github.com/caixaflow/caixaflow/internal/adapter/repository/redis"
	"github.com/caixaflow/caixaflow/internal/infrastructure/config"
	"github.com/caixaflow/caixaflow/internal/infrastructure/logger"
	"github.com/caixaflow/caixaflow/internal/infrastructure/metrics"
	"github.com/caixaflow/caixaflow/internal/infrastructure/postgres"
	"github.com/caixaflow/caixaflow/internal/infrastructure/redis"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	reconRepo := postgresRepo.NewReconciliationRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	cache := redisRepo.NewCache(redisClient)
	versions := redisRepo.NewVersionStore(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	m := metrics.New()

	// Initialize use cases
	periodLockUC := usecase.NewPeriodLockUseCase(settingsRepo)
	if err := periodLockUC.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load closing watermark")
	}

	chartUC := usecase.NewChartUseCase(categoryRepo, idGen)
	if cfg.SeedChart {
		seeded, err := chartUC.Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed chart of accounts")
		}
		if seeded {
			log.Info().Msg("seeded default chart of accounts")
		}
	}

	accountUC := usecase.NewAccountUseCase(accountRepo, movementRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(
		txManager, movementRepo, accountRepo, categoryRepo,
		periodLockUC, versions, idGen, retrier, m, log,
	)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, movementRepo, categoryRepo, cache, versions, m, log)
	reconUC := usecase.NewReconciliationUseCase(reconRepo, accountRepo, balanceUC, periodLockUC, idGen, m)
	cashFlowUC := usecase.NewCashFlowUseCase(movementRepo, accountRepo, categoryRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC, balanceUC)
	categoryHandler := handler.NewCategoryHandler(chartUC)
	movementHandler := handler.NewMovementHandler(ledgerUC)
	transferHandler := handler.NewTransferHandler(ledgerUC)
	reconHandler := handler.NewReconciliationHandler(reconUC)
	cashFlowHandler := handler.NewCashFlowHandler(cashFlowUC)
	closingHandler := handler.NewClosingHandler(periodLockUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:        accountHandler,
		CategoryHandler:       categoryHandler,
		MovementHandler:       movementHandler,
		TransferHandler:       transferHandler,
		ReconciliationHandler: reconHandler,
		CashFlowHandler:       cashFlowHandler,
		ClosingHandler:        closingHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           rateLimiter,
		RequestLogger:         middleware.NewRequestLogger(log),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
