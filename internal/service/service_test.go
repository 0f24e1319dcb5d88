package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Company{},
		&domain.Client{},
		&domain.Employee{},
		&domain.CatalogueItem{},
		&domain.Quotation{},
		&domain.QuotationItem{},
		&domain.ExportedDocument{},
	)
	require.NoError(t, err)
	return db
}

type testEnv struct {
	db            *gorm.DB
	companyRepo   *repository.CompanyRepository
	clientRepo    *repository.ClientRepository
	employeeRepo  *repository.EmployeeRepository
	quotationRepo *repository.QuotationRepository
	refService    *ReferenceNumberService
	quotations    *QuotationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	logger := zap.NewNop()

	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	refService := NewReferenceNumberService(quotationRepo, companyRepo, logger)
	quotations := NewQuotationService(quotationRepo, companyRepo, clientRepo, employeeRepo, refService, logger)

	return &testEnv{
		db:            db,
		companyRepo:   companyRepo,
		clientRepo:    clientRepo,
		employeeRepo:  employeeRepo,
		quotationRepo: quotationRepo,
		refService:    refService,
		quotations:    quotations,
	}
}

func (e *testEnv) seedCompany(t *testing.T, name string) *domain.Company {
	t.Helper()
	company := &domain.Company{
		Name:      name,
		GSTNumber: "27AAACC1234D1Z5",
		PAN:       "AAACC1234D",
	}
	require.NoError(t, e.companyRepo.Create(context.Background(), company))
	return company
}

func (e *testEnv) seedClient(t *testing.T) *domain.Client {
	t.Helper()
	client := &domain.Client{Name: "Dr. Rao", CompanyName: "Apex Pharma"}
	require.NoError(t, e.clientRepo.Create(context.Background(), client))
	return client
}

func (e *testEnv) seedEmployee(t *testing.T) *domain.Employee {
	t.Helper()
	employee := &domain.Employee{Name: "S. Iyer", Designation: "Sales Executive", Mobile: "98200-11223"}
	require.NoError(t, e.employeeRepo.Create(context.Background(), employee))
	return employee
}
