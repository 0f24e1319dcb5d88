package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/docgen"
	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/mapper"
	"github.com/chembio-ls/quotation-api/internal/repository"
	"github.com/chembio-ls/quotation-api/internal/storage"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExportResult carries a rendered document back to the handler.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
	Document    domain.ExportedDocumentDTO
}

// ExportService renders quotations to docx and archives every render.
// Export never mutates the quotation, so re-exporting an old quote is
// always safe.
type ExportService struct {
	quotationRepo *repository.QuotationRepository
	companyRepo   *repository.CompanyRepository
	documentRepo  *repository.ExportedDocumentRepository
	store         storage.Storage
	templatePath  string
	logger        *zap.Logger
	now           func() time.Time
}

func NewExportService(
	quotationRepo *repository.QuotationRepository,
	companyRepo *repository.CompanyRepository,
	documentRepo *repository.ExportedDocumentRepository,
	store storage.Storage,
	templatePath string,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		quotationRepo: quotationRepo,
		companyRepo:   companyRepo,
		documentRepo:  documentRepo,
		store:         store,
		templatePath:  templatePath,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock overrides the time source used for filenames.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// Export renders the quotation against the docx template, archives the
// result and records it. The rendered bytes are returned so the handler
// can stream them in the same request.
func (s *ExportService) Export(ctx context.Context, quotationID uuid.UUID) (*ExportResult, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load quotation: %w", err)
	}

	company, err := s.companyRepo.GetByID(ctx, quotation.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	template, err := os.ReadFile(s.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document template: %w", err)
	}

	at := s.now()
	data := docgen.BuildQuotationData(quotation, company, quotation.CreatedAt)

	var rendered bytes.Buffer
	if err := docgen.Render(template, data, &rendered); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	filename := docgen.ExportFilename(at)
	storagePath, size, err := s.store.Upload(ctx, filename, docxContentType, bytes.NewReader(rendered.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to archive document: %w", err)
	}

	doc := &domain.ExportedDocument{
		QuotationID: quotation.ID,
		Filename:    filename,
		ContentType: docxContentType,
		Size:        size,
		StoragePath: storagePath,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// The archive copy survives; the record is what went missing.
		return nil, fmt.Errorf("failed to record exported document: %w", err)
	}

	s.logger.Info("quotation exported",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("reference_number", quotation.ReferenceNumber),
		zap.String("filename", filename),
		zap.Int64("size", size))

	return &ExportResult{
		Filename:    filename,
		ContentType: docxContentType,
		Content:     rendered.Bytes(),
		Document:    mapper.ToExportedDocumentDTO(doc),
	}, nil
}

// ListDocuments returns the archived exports of a quotation, newest
// first.
func (s *ExportService) ListDocuments(ctx context.Context, quotationID uuid.UUID) ([]domain.ExportedDocumentDTO, error) {
	if _, err := s.quotationRepo.GetByID(ctx, quotationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load quotation: %w", err)
	}

	docs, err := s.documentRepo.ListByQuotation(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exported documents: %w", err)
	}

	dtos := make([]domain.ExportedDocumentDTO, len(docs))
	for i := range docs {
		dtos[i] = mapper.ToExportedDocumentDTO(&docs[i])
	}
	return dtos, nil
}

// DownloadDocument streams an archived export.
func (s *ExportService) DownloadDocument(ctx context.Context, documentID uuid.UUID) (*ExportResult, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load exported document: %w", err)
	}

	rc, err := s.store.Download(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archived document: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived document: %w", err)
	}

	return &ExportResult{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Content:     content,
		Document:    mapper.ToExportedDocumentDTO(doc),
	}, nil
}
