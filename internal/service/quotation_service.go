package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/mapper"
	"github.com/chembio-ls/quotation-api/internal/pricing"
	"github.com/chembio-ls/quotation-api/internal/repository"
)

// QuotationService creates and serves quotations. A saved quotation is
// immutable: party details are frozen into snapshots at save time and
// there is no update path, so a printed document can always be
// reproduced from its record.
type QuotationService struct {
	quotationRepo *repository.QuotationRepository
	companyRepo   *repository.CompanyRepository
	clientRepo    *repository.ClientRepository
	employeeRepo  *repository.EmployeeRepository
	refService    *ReferenceNumberService
	logger        *zap.Logger
}

func NewQuotationService(
	quotationRepo *repository.QuotationRepository,
	companyRepo *repository.CompanyRepository,
	clientRepo *repository.ClientRepository,
	employeeRepo *repository.EmployeeRepository,
	refService *ReferenceNumberService,
	logger *zap.Logger,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		companyRepo:   companyRepo,
		clientRepo:    clientRepo,
		employeeRepo:  employeeRepo,
		refService:    refService,
		logger:        logger,
	}
}

func (s *QuotationService) Create(ctx context.Context, req *domain.CreateQuotationRequest) (*domain.QuotationDTO, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	refNumber := req.ReferenceNumber
	if refNumber == "" {
		refNumber, err = s.refService.Next(ctx, req.CompanyID)
		if err != nil {
			return nil, err
		}
	}

	items, totals := buildItems(req.Items)

	quotation := &domain.Quotation{
		ReferenceNumber: refNumber,
		CompanyID:       company.ID,
		ClientID:        client.ID,
		EmployeeID:      employee.ID,
		CompanySnap: domain.PartySnapshot{
			Name:    company.Name,
			Address: company.Address,
			Email:   company.Email,
			Phone:   company.Phone,
		},
		ClientSnap: domain.PartySnapshot{
			Name:        client.Name,
			CompanyName: client.CompanyName,
			Address:     client.Address,
			Email:       client.Email,
			Phone:       client.Phone,
		},
		EmployeeSnap: domain.PartySnapshot{
			Name:        employee.Name,
			Phone:       employee.Mobile,
			Email:       employee.Email,
			Designation: employee.Designation,
		},
		Items:        items,
		PaymentTerms: req.PaymentTerms,
		Notes:        req.Notes,
		Subtotal:     totals.Subtotal,
		TotalGST:     totals.TotalGST,
		GrandTotal:   totals.GrandTotal,
		Status:       domain.QuotationStatusDraft,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("reference number %s already exists: %w", quotation.ReferenceNumber, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}

	s.logger.Info("quotation created",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("reference_number", quotation.ReferenceNumber),
		zap.Int("items", len(quotation.Items)),
		zap.Float64("grand_total", quotation.GrandTotal))

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuotationDTO, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	dto := mapper.ToQuotationDTO(quotation)
	return &dto, nil
}

func (s *QuotationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.quotationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get quotation: %w", err)
	}
	if err := s.quotationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	return nil
}

func (s *QuotationService) List(ctx context.Context, page, pageSize int, search string, companyID *uuid.UUID) (*domain.PaginatedResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	quotations, total, err := s.quotationRepo.List(ctx, page, pageSize, search, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	dtos := make([]domain.QuotationDTO, len(quotations))
	for i := range quotations {
		dtos[i] = mapper.ToQuotationDTO(&quotations[i])
	}

	return paginated(dtos, total, page, pageSize), nil
}

// Preview recomputes the derived figures for an unsaved payload.
func (s *QuotationService) Preview(_ context.Context, req *domain.PreviewQuotationRequest) (*domain.PreviewQuotationResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	items, totals := buildItems(req.Items)
	dtos := make([]domain.QuotationItemDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToQuotationItemDTO(&items[i])
	}

	return &domain.PreviewQuotationResponse{
		Items:      dtos,
		Subtotal:   totals.Subtotal,
		TotalGST:   totals.TotalGST,
		GrandTotal: totals.GrandTotal,
	}, nil
}

// buildItems coerces the raw line inputs, computes the money figures
// per line and aggregates the document totals.
func buildItems(inputs []domain.QuotationItemInput) ([]domain.QuotationItem, pricing.Totals) {
	items := make([]domain.QuotationItem, len(inputs))
	lines := make([]pricing.LineResult, len(inputs))
	for i, in := range inputs {
		line := pricing.LineInput{
			Price:              pricing.Coerce(in.Price),
			Quantity:           pricing.Coerce(in.Quantity),
			DiscountPercentage: pricing.Coerce(in.DiscountPercentage),
			GSTRate:            pricing.Coerce(in.GSTRate),
		}
		res := pricing.ComputeLine(line)
		lines[i] = res
		items[i] = domain.QuotationItem{
			LineOrder:          i + 1,
			CatalogueID:        in.CatalogueID,
			Description:        in.Description,
			PackSize:           in.PackSize,
			HSNCode:            in.HSNCode,
			Brand:              in.Brand,
			LeadTime:           in.LeadTime,
			Quantity:           line.Quantity,
			Price:              line.Price,
			DiscountPercentage: line.DiscountPercentage,
			GSTRate:            line.GSTRate,
			DiscountedPrice:    res.DiscountedPrice,
			ExpandedRate:       res.ExpandedRate,
			GSTValue:           res.GSTValue,
			Total:              res.Total,
		}
	}
	return items, pricing.ComputeTotals(lines)
}
