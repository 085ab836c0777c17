package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bankwise/bank_account_app/internal/adapters/database/memory"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	"github.com/bankwise/bank_account_app/internal/core/services"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/bankwise/bank_account_app/internal/handlers"
	"github.com/bankwise/bank_account_app/internal/middleware"
	"github.com/bankwise/bank_account_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state lives in-process: the stores exist for the lifetime of the
	// server and start empty, except for the seeded currency registry.
	repos := portsrepo.RepositoryProvider{
		AccountRepo:  memory.NewAccountRepository(),
		TransferRepo: memory.NewTransferRepository(),
		CurrencyRepo: memory.NewCurrencyRepository(),
	}

	container := services.NewServiceContainer(repos)

	currencySvc, ok := container.Currency.(*services.CurrencyService)
	if !ok {
		logger.Error("Currency service has unexpected type")
		os.Exit(1)
	}
	if err := currencySvc.SeedDefaultCurrencies(context.Background()); err != nil {
		logger.Error("Failed to seed currency registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency registry seeded.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
