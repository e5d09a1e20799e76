package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUseCase "github.com/pictrify/credit-ledger/internal/domain/usecase/account"
	catalogUseCase "github.com/pictrify/credit-ledger/internal/domain/usecase/catalog"
	consumptionUseCase "github.com/pictrify/credit-ledger/internal/domain/usecase/consumption"
	discountUseCase "github.com/pictrify/credit-ledger/internal/domain/usecase/discount"
	redemptionUseCase "github.com/pictrify/credit-ledger/internal/domain/usecase/redemption"

	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/payment"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/pictrify/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/transform"
	"github.com/pictrify/credit-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	discountRepo := repository.NewDiscountRepository(dbManager.DB(), appLogger)
	planRepo := repository.NewPlanRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Provider adapters
	paymentClient := payment.NewClient(payment.Config{
		BaseURL:      cfg.Payment.BaseURL,
		KeyID:        cfg.Payment.KeyID,
		KeySecret:    cfg.Payment.KeySecret,
		Currency:     cfg.Payment.Currency,
		OrderTimeout: cfg.Payment.OrderTimeout,
	}, appLogger)
	signatureVerifier := payment.NewSignatureVerifier(cfg.Payment.KeySecret)
	transformClient := transform.NewClient(transform.Config{
		BaseURL:        cfg.Transformer.BaseURL,
		APIKey:         cfg.Transformer.APIKey,
		RequestTimeout: cfg.Transformer.RequestTimeout,
	}, appLogger)

	// Use cases
	accounts := accountUseCase.NewUseCase(accountRepo, transactionRepo, tp, appLogger, cfg.Ledger.SignupGrant)
	discounts := discountUseCase.NewUseCase(discountRepo, tp, appLogger)
	catalog := catalogUseCase.NewUseCase(planRepo, appLogger)
	redemption := redemptionUseCase.NewService(
		accountRepo,
		planRepo,
		transactionRepo,
		discounts,
		paymentClient,
		signatureVerifier,
		tp,
		appLogger,
		redemptionUseCase.Config{
			WaitlistBonusCredits: cfg.Ledger.WaitlistBonusCredits,
			WaitlistAmount:       cfg.Ledger.WaitlistAmount,
		},
	)
	consumption := consumptionUseCase.NewUseCase(accountRepo, transformClient, tp, appLogger, cfg.Ledger.TransformCost)

	if err := migration.CreateDefaultPlans(context.Background(), catalog); err != nil {
		appLogger.Error("Failed to seed default plans", map[string]any{
			"error": err.Error(),
		})
	}

	// API handlers
	handlers := routes.Handlers{
		Account:     handler.NewAccountHandler(accounts, appLogger),
		Discount:    handler.NewDiscountHandler(discounts, appLogger),
		Catalog:     handler.NewCatalogHandler(catalog, appLogger),
		Redemption:  handler.NewRedemptionHandler(redemption, appLogger),
		Consumption: handler.NewConsumptionHandler(consumption, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, accounts, []byte(cfg.Auth.SessionSecret), appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or CL_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or CL_DB_USERNAME)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or CL_DB_NAME)")
	}

	if cfg.Payment.KeyID == "" {
		missing = append(missing, "payment.keyID (or CL_PAYMENT_KEY_ID)")
	}
	if cfg.Payment.KeySecret == "" {
		missing = append(missing, "payment.keySecret (or CL_PAYMENT_KEY_SECRET)")
	}

	if cfg.Transformer.BaseURL == "" {
		missing = append(missing, "transformer.baseURL")
	}
	if cfg.Transformer.APIKey == "" {
		missing = append(missing, "transformer.apiKey (or CL_TRANSFORMER_API_KEY)")
	}

	if cfg.Auth.SessionSecret == "" {
		missing = append(missing, "auth.sessionSecret (or CL_AUTH_SESSION_SECRET)")
	}

	if cfg.Ledger.SignupGrant < 0 || cfg.Ledger.TransformCost <= 0 ||
		cfg.Ledger.WaitlistBonusCredits <= 0 || cfg.Ledger.WaitlistAmount <= 0 {
		return fmt.Errorf("ledger amounts must be positive")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
