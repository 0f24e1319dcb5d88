package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/repository"
)

// DashboardService aggregates the entity counts shown on the landing
// screen.
type DashboardService struct {
	companyRepo   *repository.CompanyRepository
	clientRepo    *repository.ClientRepository
	employeeRepo  *repository.EmployeeRepository
	itemRepo      *repository.CatalogueItemRepository
	quotationRepo *repository.QuotationRepository
	logger        *zap.Logger
}

func NewDashboardService(
	companyRepo *repository.CompanyRepository,
	clientRepo *repository.ClientRepository,
	employeeRepo *repository.EmployeeRepository,
	itemRepo *repository.CatalogueItemRepository,
	quotationRepo *repository.QuotationRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		companyRepo:   companyRepo,
		clientRepo:    clientRepo,
		employeeRepo:  employeeRepo,
		itemRepo:      itemRepo,
		quotationRepo: quotationRepo,
		logger:        logger,
	}
}

func (s *DashboardService) Metrics(ctx context.Context) (*domain.DashboardMetricsDTO, error) {
	metrics := &domain.DashboardMetricsDTO{}

	var err error
	if metrics.Companies, err = s.companyRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}
	if metrics.Clients, err = s.clientRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if metrics.Employees, err = s.employeeRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if metrics.Items, err = s.itemRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count catalogue items: %w", err)
	}
	if metrics.Quotations, err = s.quotationRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count quotations: %w", err)
	}

	return metrics, nil
}
