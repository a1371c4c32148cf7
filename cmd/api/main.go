package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	adminUseCase "github.com/sina-mohseni/nftvault/internal/domain/usecase/admin"
	"github.com/sina-mohseni/nftvault/internal/domain/usecase/eligibility"
	"github.com/sina-mohseni/nftvault/internal/domain/usecase/lifecycle"

	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/handler"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/middleware"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/routes"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/database"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/database/migration"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/event"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/logger"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/repository"
	timeProvider "github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/time"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
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
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
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
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed demo asset types and accounts when enabled
	if cfg.Custody.DemoSeed {
		if err := migration.SeedDemoAssets(dbManager.DB(), appLogger); err != nil {
			appLogger.Error("Failed to seed demo assets", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Admin gate holds the pause flag, the fee schedule and the exemption set
	exemptions := make([]entity.AccountID, 0, len(cfg.Custody.FeeExemptions))
	for _, account := range cfg.Custody.FeeExemptions {
		exemptions = append(exemptions, entity.AccountID(account))
	}

	gate, err := adminUseCase.NewGate(
		entity.AccountID(cfg.Custody.AdminAccount),
		cfg.Custody.CreationFee,
		cfg.Custody.ExtensionFee,
		exemptions,
		appLogger,
	)
	if err != nil {
		appLogger.Error("Failed to initialize admin gate", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work resolves repositories against the transaction it opens
	uow := database.NewUnitOfWork(dbManager.DB(), gate, appLogger)

	// Eligibility guard reads asset metadata outside any transaction
	inspector := repository.NewAssetInspector(dbManager.DB(), appLogger)
	eligibilityGuard := eligibility.NewGuard(inspector, appLogger)

	// Shared metrics registry for HTTP and domain event counters
	registry := prometheus.NewRegistry()
	events := event.NewLogEmitter(appLogger, registry)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	lockService := lifecycle.NewService(
		uow,
		eligibilityGuard,
		gate,
		entity.AccountID(cfg.Custody.CustodyAccount),
		tp,
		events,
		appLogger,
	)

	// Initialize API handlers
	lockHandler := handler.NewLockHandler(lockService, appLogger)
	adminHandler := handler.NewAdminHandler(gate, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, httpMetrics)

	// Setup routes
	routes.SetupRoutes(router, lockHandler, adminHandler, registry)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
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

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
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

	// Validate server configuration
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

	// Validate database configuration
	if cfg.Database.Host == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("NV_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or NV_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("NV_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or NV_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("NV_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or NV_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("NV_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or NV_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("NV_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or NV_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate custody configuration
	if cfg.Custody.CustodyAccount == 0 {
		missingConfigs = append(missingConfigs, "custody.custodyAccount (or NV_CUSTODY_ACCOUNT environment variable)")
	}

	if cfg.Custody.AdminAccount == 0 {
		missingConfigs = append(missingConfigs, "custody.adminAccount (or NV_CUSTODY_ADMIN_ACCOUNT environment variable)")
	}

	if cfg.Custody.CustodyAccount != 0 && cfg.Custody.CustodyAccount == cfg.Custody.AdminAccount {
		return fmt.Errorf("custody.custodyAccount and custody.adminAccount must be distinct accounts")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
