package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

func TestNextFirstQuotation(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.January))
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "CBLS/2501/001", ref)
}

func TestNextPrefixForOtherCompanies(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.January))
	company := env.seedCompany(t, "Lifescience Solutions")

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "CLS/2501/001", ref)
}

func TestNextIncrementsWithinPeriod(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.January))
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	_, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Description: "Acetone", Price: "100", Quantity: "1"}},
	})
	require.NoError(t, err)

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "CBLS/2501/002", ref)
}

func TestNextRestartsOnNewPeriod(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.January))
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	_, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Description: "Acetone", Price: "100", Quantity: "1"}},
	})
	require.NoError(t, err)

	env.refService.WithClock(fixedClock(2025, time.February))

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "CBLS/2502/001", ref)
}

func TestNextIgnoresForeignReference(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.March))
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	// A manually entered reference from another numbering era does not
	// continue the sequence.
	_, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		ReferenceNumber: "LEGACY-0042",
		CompanyID:       company.ID,
		ClientID:        client.ID,
		EmployeeID:      employee.ID,
		Items:           []domain.QuotationItemInput{{Description: "Acetone", Price: "100", Quantity: "1"}},
	})
	require.NoError(t, err)

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "CBLS/2503/001", ref)
}

func TestNextCompanyNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.refService.Next(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestNextFormat(t *testing.T) {
	env := newTestEnv(t)
	env.refService.WithClock(fixedClock(2025, time.December))
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")

	ref, err := env.refService.Next(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^(CBLS|CLS)/\d{4}/\d{3}$`), ref)
	assert.Equal(t, "CBLS/2512/001", ref)
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		ref    string
		prefix string
		period string
		want   int
		ok     bool
	}{
		{"CBLS/2501/007", "CBLS", "2501", 7, true},
		{"CBLS/2501/007", "CBLS", "2502", 0, false},
		{"CLS/2501/007", "CBLS", "2501", 0, false},
		{"CBLS/2501/", "CBLS", "2501", 0, false},
		{"CBLS/2501/xyz", "CBLS", "2501", 0, false},
		{"", "CBLS", "2501", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseSequence(tc.ref, tc.prefix, tc.period)
		assert.Equal(t, tc.ok, ok, "ref %q", tc.ref)
		if tc.ok {
			assert.Equal(t, tc.want, got, "ref %q", tc.ref)
		}
	}
}
