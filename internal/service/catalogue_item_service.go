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

type CatalogueItemService struct {
	itemRepo *repository.CatalogueItemRepository
	logger   *zap.Logger
}

func NewCatalogueItemService(itemRepo *repository.CatalogueItemRepository, logger *zap.Logger) *CatalogueItemService {
	return &CatalogueItemService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *CatalogueItemService) Create(ctx context.Context, req *domain.CreateCatalogueItemRequest) (*domain.CatalogueItemDTO, error) {
	item := &domain.CatalogueItem{
		CatalogueID: req.CatalogueID,
		Description: req.Description,
		PackSize:    req.PackSize,
		Price:       req.Price,
		HSNCode:     req.HSNCode,
		CASNumber:   req.CASNumber,
		Brand:       req.Brand,
		GSTRate:     resolveGSTRate(req.GSTRate, req.HSNCode),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create catalogue item: %w", err)
	}

	dto := mapper.ToCatalogueItemDTO(item)
	return &dto, nil
}

func (s *CatalogueItemService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogueItemDTO, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get catalogue item: %w", err)
	}

	dto := mapper.ToCatalogueItemDTO(item)
	return &dto, nil
}

func (s *CatalogueItemService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCatalogueItemRequest) (*domain.CatalogueItemDTO, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get catalogue item: %w", err)
	}

	item.CatalogueID = req.CatalogueID
	item.Description = req.Description
	item.PackSize = req.PackSize
	item.Price = req.Price
	item.HSNCode = req.HSNCode
	item.CASNumber = req.CASNumber
	item.Brand = req.Brand
	item.GSTRate = resolveGSTRate(req.GSTRate, req.HSNCode)

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update catalogue item: %w", err)
	}

	dto := mapper.ToCatalogueItemDTO(item)
	return &dto, nil
}

func (s *CatalogueItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete catalogue item: %w", err)
	}
	return nil
}

func (s *CatalogueItemService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	items, total, err := s.itemRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogue items: %w", err)
	}

	dtos := make([]domain.CatalogueItemDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToCatalogueItemDTO(&items[i])
	}

	return paginated(dtos, total, page, pageSize), nil
}

// resolveGSTRate prefers an explicit rate, falling back to the HSN
// classification table.
func resolveGSTRate(explicit *float64, hsnCode string) float64 {
	if explicit != nil {
		return *explicit
	}
	return pricing.GSTRateForHSN(hsnCode)
}
