package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

type CatalogueItemRepository struct {
	db *gorm.DB
}

func NewCatalogueItemRepository(db *gorm.DB) *CatalogueItemRepository {
	return &CatalogueItemRepository{db: db}
}

func (r *CatalogueItemRepository) Create(ctx context.Context, item *domain.CatalogueItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CatalogueItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogueItem, error) {
	var item domain.CatalogueItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogueItemRepository) GetByCatalogueID(ctx context.Context, catalogueID string) (*domain.CatalogueItem, error) {
	var item domain.CatalogueItem
	err := r.db.WithContext(ctx).Where("catalogue_id = ?", catalogueID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogueItemRepository) Update(ctx context.Context, item *domain.CatalogueItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CatalogueItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CatalogueItem{}, "id = ?", id).Error
}

// List searches across the identifying fields of the catalogue. Chemists
// look items up by catalogue code, CAS number or name interchangeably.
func (r *CatalogueItemRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.CatalogueItem, int64, error) {
	var items []domain.CatalogueItem
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.CatalogueItem{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(catalogue_id) LIKE ? OR LOWER(description) LIKE ? OR LOWER(cas_number) LIKE ?",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("catalogue_id ASC").Find(&items).Error

	return items, total, err
}

func (r *CatalogueItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CatalogueItem{}).Count(&count).Error
	return count, err
}
