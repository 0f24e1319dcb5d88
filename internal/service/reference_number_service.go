package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/repository"
)

// ReferenceNumberService allocates quotation reference numbers of the
// form <PREFIX>/<YYMM>/<NNN>. The sequence continues from the most
// recent quotation of the company and restarts at 001 whenever the
// month rolls over.
//
// Two concurrent allocations for the same company can read the same
// latest quotation and produce the same number. The unique index on
// reference_number rejects the second insert, which matches how the
// desk actually works: one person raises quotes for a company at a
// time.
type ReferenceNumberService struct {
	quotationRepo *repository.QuotationRepository
	companyRepo   *repository.CompanyRepository
	logger        *zap.Logger
	now           func() time.Time
}

func NewReferenceNumberService(
	quotationRepo *repository.QuotationRepository,
	companyRepo *repository.CompanyRepository,
	logger *zap.Logger,
) *ReferenceNumberService {
	return &ReferenceNumberService{
		quotationRepo: quotationRepo,
		companyRepo:   companyRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Tests pin the period with it.
func (s *ReferenceNumberService) WithClock(now func() time.Time) *ReferenceNumberService {
	s.now = now
	return s
}

// Next returns the reference number the next quotation for the company
// should carry. It does not reserve the number.
func (s *ReferenceNumberService) Next(ctx context.Context, companyID uuid.UUID) (string, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCompanyNotFound
		}
		return "", fmt.Errorf("failed to load company: %w", err)
	}

	prefix := company.ReferencePrefix()
	period := s.now().Format("0601")

	seq := 1
	latest, err := s.quotationRepo.LatestForCompany(ctx, companyID)
	switch {
	case err == nil:
		if n, ok := parseSequence(latest.ReferenceNumber, prefix, period); ok {
			seq = n + 1
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first quotation for this company
	default:
		return "", fmt.Errorf("failed to read latest quotation: %w", err)
	}

	ref := fmt.Sprintf("%s/%s/%03d", prefix, period, seq)
	s.logger.Debug("allocated reference number",
		zap.String("company_id", companyID.String()),
		zap.String("reference_number", ref))
	return ref, nil
}

// parseSequence extracts the trailing sequence of a reference number
// when it belongs to the given prefix and period. A number from another
// month or another prefix does not continue the sequence.
func parseSequence(ref, prefix, period string) (int, bool) {
	if !strings.Contains(ref, prefix+"/"+period) {
		return 0, false
	}
	i := strings.LastIndex(ref, "/")
	if i < 0 || i == len(ref)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(ref[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
