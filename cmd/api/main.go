package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ledgerUseCase "github.com/avoronova/balance-ledger/internal/domain/usecase/ledger"
	userUseCase "github.com/avoronova/balance-ledger/internal/domain/usecase/user"

	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/cache"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/database"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/logger"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/avoronova/balance-ledger/internal/infrastructure/adapter/time"
	"github.com/avoronova/balance-ledger/internal/infrastructure/config"
	"github.com/avoronova/balance-ledger/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	appLogger.Info("Starting "+cfg.AppTitle, map[string]any{
		"env": cfg.Environment,
	})

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := database.Migrate(dbManager.DB(), appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Register Prometheus collectors
	metrics.Init()

	// Optional Redis cache for user reads
	var userCache *cache.UserCache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewClient(cache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			appLogger.Warn("Cache disabled, continuing without Redis", map[string]any{
				"error": err.Error(),
			})
		} else {
			defer func() { _ = redisClient.Close() }()
			userCache = cache.NewUserCache(redisClient, cfg.Cache.TTL, appLogger)
			appLogger.Info("User cache enabled", map[string]any{
				"addr": cfg.Cache.Addr,
				"ttl":  cfg.Cache.TTL.String(),
			})
		}
	}

	// Initialize repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	ledgerService := ledgerUseCase.NewService(uow, tp, appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, userCache, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, userCache, appLogger)

	// Initialize Gin router
	router := gin.New()

	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, transactionHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
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

	// Wait for interrupt signal to gracefully shut down the server
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
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or BL_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or BL_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or BL_DB_NAME environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
