package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Metrics godoc
// @Summary Dashboard metrics
// @Description Entity counts shown on the landing dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} domain.DashboardMetricsDTO
// @Failure 500 {object} domain.APIError
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.Metrics(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard metrics", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}
