package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/mapper"
	"github.com/chembio-ls/quotation-api/internal/repository"
)

type CompanyService struct {
	companyRepo *repository.CompanyRepository
	logger      *zap.Logger
}

func NewCompanyService(companyRepo *repository.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (s *CompanyService) Create(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.CompanyDTO, error) {
	company := &domain.Company{
		Name:        req.Name,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		PAN:         req.PAN,
		GSTNumber:   req.GSTNumber,
		BankDetails: req.BankDetails,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCompanyRequest) (*domain.CompanyDTO, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	company.Name = req.Name
	company.Address = req.Address
	company.Email = req.Email
	company.Phone = req.Phone
	company.PAN = req.PAN
	company.GSTNumber = req.GSTNumber
	company.BankDetails = req.BankDetails

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	dto := mapper.ToCompanyDTO(company)
	return &dto, nil
}

func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	companies, total, err := s.companyRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	dtos := make([]domain.CompanyDTO, len(companies))
	for i := range companies {
		dtos[i] = mapper.ToCompanyDTO(&companies[i])
	}

	return paginated(dtos, total, page, pageSize), nil
}

// UploadSeal stores a seal image for the company. Seals travel as data
// URIs so the stamped document needs no extra fetch at render time.
func (s *CompanyService) UploadSeal(ctx context.Context, id uuid.UUID, req *domain.UploadSealRequest) error {
	if !strings.HasPrefix(req.SealImage, "data:image/") {
		return ErrInvalidSealImage
	}
	// The cap is on the decoded image, not the base64 envelope.
	comma := strings.IndexByte(req.SealImage, ',')
	if comma < 0 {
		return ErrInvalidSealImage
	}
	if base64.StdEncoding.DecodedLen(len(req.SealImage)-comma-1) > domain.MaxSealImageBytes {
		return ErrSealTooLarge
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	company.SealImage = req.SealImage
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return fmt.Errorf("failed to store seal image: %w", err)
	}

	s.logger.Info("seal image updated",
		zap.String("company_id", id.String()),
		zap.Int("size_bytes", len(req.SealImage)))
	return nil
}

// clampPage bounds pagination parameters to sane values.
func clampPage(page, pageSize int) (int, int) {
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}

func paginated(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
