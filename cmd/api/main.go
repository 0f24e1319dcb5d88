package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/docs"
	"github.com/chembio-ls/quotation-api/internal/config"
	"github.com/chembio-ls/quotation-api/internal/database"
	"github.com/chembio-ls/quotation-api/internal/http/handler"
	"github.com/chembio-ls/quotation-api/internal/http/middleware"
	"github.com/chembio-ls/quotation-api/internal/http/router"
	"github.com/chembio-ls/quotation-api/internal/jobs"
	"github.com/chembio-ls/quotation-api/internal/logger"
	"github.com/chembio-ls/quotation-api/internal/repository"
	"github.com/chembio-ls/quotation-api/internal/service"
	"github.com/chembio-ls/quotation-api/internal/storage"
)

// @title ChemBio Quotation API
// @version 1.0
// @description Sales quotation management for chemical and life-science distribution

// @contact.name API Support
// @contact.email support@chembiols.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "quotation-api-staging.chembiols.in"
	case "production":
		docs.SwaggerInfo.Host = "api.chembiols.in"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize document archive storage
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	itemRepo := repository.NewCatalogueItemRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	documentRepo := repository.NewExportedDocumentRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	itemService := service.NewCatalogueItemService(itemRepo, log)
	referenceService := service.NewReferenceNumberService(quotationRepo, companyRepo, log)
	quotationService := service.NewQuotationService(quotationRepo, companyRepo, clientRepo, employeeRepo, referenceService, log)
	exportService := service.NewExportService(quotationRepo, companyRepo, documentRepo, fileStorage, cfg.Export.TemplatePath, log)
	dashboardService := service.NewDashboardService(companyRepo, clientRepo, employeeRepo, itemRepo, quotationRepo, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyService, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	catalogueItemHandler := handler.NewCatalogueItemHandler(itemService, log)
	quotationHandler := handler.NewQuotationHandler(quotationService, referenceService, exportService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		companyHandler,
		clientHandler,
		employeeHandler,
		catalogueItemHandler,
		quotationHandler,
		dashboardHandler,
	)

	// Start the export retention sweep when enabled
	var scheduler *jobs.Scheduler
	if cfg.Retention.Enabled {
		scheduler = jobs.NewScheduler(log)
		retentionJob := jobs.NewRetentionJob(documentRepo, fileStorage, &cfg.Retention, log)

		if err := scheduler.AddJob("export-retention", cfg.Retention.Schedule, func() {
			retentionJob.Run(context.Background())
		}); err != nil {
			log.Error("Failed to register retention job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with retention job",
				zap.String("cron_expr", cfg.Retention.Schedule),
				zap.Int("max_age_days", cfg.Retention.MaxAgeDays),
			)
		}
	} else {
		log.Info("Export retention disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
