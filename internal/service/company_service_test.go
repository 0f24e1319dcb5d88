package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

// The seal size cap applies to the decoded image bytes, not the base64
// envelope around them.
func TestUploadSealSizeCap(t *testing.T) {
	env := newTestEnv(t)
	companies := NewCompanyService(env.companyRepo, zap.NewNop())
	company := env.seedCompany(t, "Chemlife Solutions")

	// Base64 inflates by a third, so an encoded payload slightly over
	// the cap still decodes to well under it and must be accepted.
	encodedLen := domain.MaxSealImageBytes + 1024
	encodedLen -= encodedLen % 4
	ok := "data:image/png;base64," + strings.Repeat("A", encodedLen)
	require.NoError(t, companies.UploadSeal(context.Background(), company.ID, &domain.UploadSealRequest{SealImage: ok}))

	oversized := "data:image/png;base64," + strings.Repeat("A", domain.MaxSealImageBytes*2)
	err := companies.UploadSeal(context.Background(), company.ID, &domain.UploadSealRequest{SealImage: oversized})
	assert.ErrorIs(t, err, ErrSealTooLarge)

	err = companies.UploadSeal(context.Background(), company.ID, &domain.UploadSealRequest{SealImage: "not-a-data-uri"})
	assert.ErrorIs(t, err, ErrInvalidSealImage)

	err = companies.UploadSeal(context.Background(), company.ID, &domain.UploadSealRequest{SealImage: "data:image/png;base64"})
	assert.ErrorIs(t, err, ErrInvalidSealImage)
}
