package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/config"
	"github.com/chembio-ls/quotation-api/internal/database"
	"github.com/chembio-ls/quotation-api/internal/http/handler"
	"github.com/chembio-ls/quotation-api/internal/http/middleware"

	_ "github.com/chembio-ls/quotation-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                  *config.Config
	logger               *zap.Logger
	db                   *gorm.DB
	rateLimiter          *middleware.RateLimiter
	companyHandler       *handler.CompanyHandler
	clientHandler        *handler.ClientHandler
	employeeHandler      *handler.EmployeeHandler
	catalogueItemHandler *handler.CatalogueItemHandler
	quotationHandler     *handler.QuotationHandler
	dashboardHandler     *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	companyHandler *handler.CompanyHandler,
	clientHandler *handler.ClientHandler,
	employeeHandler *handler.EmployeeHandler,
	catalogueItemHandler *handler.CatalogueItemHandler,
	quotationHandler *handler.QuotationHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
		rateLimiter:          rateLimiter,
		companyHandler:       companyHandler,
		clientHandler:        clientHandler,
		employeeHandler:      employeeHandler,
		catalogueItemHandler: catalogueItemHandler,
		quotationHandler:     quotationHandler,
		dashboardHandler:     dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Companies
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", rt.companyHandler.List)
			r.Post("/", rt.companyHandler.Create)
			r.Get("/{id}", rt.companyHandler.GetByID)
			r.Put("/{id}", rt.companyHandler.Update)
			r.Delete("/{id}", rt.companyHandler.Delete)
			r.Post("/{id}/seal", rt.companyHandler.UploadSeal)
		})

		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.GetByID)
			r.Put("/{id}", rt.clientHandler.Update)
			r.Delete("/{id}", rt.clientHandler.Delete)
		})

		// Employees
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Post("/", rt.employeeHandler.Create)
			r.Get("/{id}", rt.employeeHandler.GetByID)
			r.Put("/{id}", rt.employeeHandler.Update)
			r.Delete("/{id}", rt.employeeHandler.Delete)
		})

		// Catalogue
		r.Route("/catalogue-items", func(r chi.Router) {
			r.Get("/", rt.catalogueItemHandler.List)
			r.Post("/", rt.catalogueItemHandler.Create)
			r.Get("/{id}", rt.catalogueItemHandler.GetByID)
			r.Put("/{id}", rt.catalogueItemHandler.Update)
			r.Delete("/{id}", rt.catalogueItemHandler.Delete)
		})

		// Quotations
		r.Route("/quotations", func(r chi.Router) {
			r.Get("/", rt.quotationHandler.List)
			r.Post("/", rt.quotationHandler.Create)
			r.Post("/preview", rt.quotationHandler.Preview)
			r.Get("/reference-number", rt.quotationHandler.NextReferenceNumber)
			r.Get("/payment-terms", rt.quotationHandler.PaymentTerms)
			r.Get("/{id}", rt.quotationHandler.GetByID)
			r.Delete("/{id}", rt.quotationHandler.Delete)
			r.Post("/{id}/export", rt.quotationHandler.Export)
			r.Get("/{id}/documents", rt.quotationHandler.ListDocuments)
		})

		// Exported documents
		r.Get("/documents/{id}", rt.quotationHandler.DownloadDocument)

		// Dashboard
		r.Get("/dashboard/metrics", rt.dashboardHandler.Metrics)
	})

	return r
}
