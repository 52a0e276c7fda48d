package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/corebank/accounts/internal/adapter/client"
	httpAdapter "github.com/corebank/accounts/internal/adapter/http"
	"github.com/corebank/accounts/internal/adapter/http/handler"
	"github.com/corebank/accounts/internal/adapter/http/middleware"
	postgresRepo "github.com/corebank/accounts/internal/adapter/repository/postgres"
	redisRepo "github.com/corebank/accounts/internal/adapter/repository/redis"
	"github.com/corebank/accounts/internal/infrastructure/config"
	"github.com/corebank/accounts/internal/infrastructure/logger"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
	"github.com/corebank/accounts/internal/infrastructure/postgres"
	"github.com/corebank/accounts/internal/infrastructure/redis"
	"github.com/corebank/accounts/internal/usecase"
)

func main() {
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

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	customerClient := client.NewCustomerClient(cfg.CustomerServiceURL, cache, cfg.CustomerCacheTTL, log, m)

	accountUC := usecase.NewAccountUseCase(accountRepo, customerClient, log, m)
	movementUC := usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, ledgerRepo, retrier, log, m)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, accountRepo, m)
	statementUC := usecase.NewStatementUseCase(accountRepo, ledgerRepo, customerClient, idGen, log, m)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		MovementHandler:  handler.NewMovementHandler(movementUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		StatementHandler: handler.NewStatementHandler(statementUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
