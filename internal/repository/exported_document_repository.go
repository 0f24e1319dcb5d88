package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

type ExportedDocumentRepository struct {
	db *gorm.DB
}

func NewExportedDocumentRepository(db *gorm.DB) *ExportedDocumentRepository {
	return &ExportedDocumentRepository{db: db}
}

func (r *ExportedDocumentRepository) Create(ctx context.Context, doc *domain.ExportedDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *ExportedDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportedDocument, error) {
	var doc domain.ExportedDocument
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ExportedDocumentRepository) ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]domain.ExportedDocument, error) {
	var docs []domain.ExportedDocument
	err := r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

// ListOlderThan returns archived documents created before the cutoff,
// oldest first, for the retention job.
func (r *ExportedDocumentRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ExportedDocument, error) {
	var docs []domain.ExportedDocument
	err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

func (r *ExportedDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ExportedDocument{}, "id = ?", id).Error
}
