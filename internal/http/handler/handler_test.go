package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/repository"
	"github.com/chembio-ls/quotation-api/internal/service"
)

type handlerEnv struct {
	db     *gorm.DB
	router chi.Router

	companyRepo  *repository.CompanyRepository
	clientRepo   *repository.ClientRepository
	employeeRepo *repository.EmployeeRepository
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Company{},
		&domain.Client{},
		&domain.Employee{},
		&domain.CatalogueItem{},
		&domain.Quotation{},
		&domain.QuotationItem{},
		&domain.ExportedDocument{},
	))

	logger := zap.NewNop()

	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	itemRepo := repository.NewCatalogueItemRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	companyService := service.NewCompanyService(companyRepo, logger)
	clientService := service.NewClientService(clientRepo, logger)
	employeeService := service.NewEmployeeService(employeeRepo, logger)
	itemService := service.NewCatalogueItemService(itemRepo, logger)
	referenceService := service.NewReferenceNumberService(quotationRepo, companyRepo, logger)
	quotationService := service.NewQuotationService(quotationRepo, companyRepo, clientRepo, employeeRepo, referenceService, logger)

	companyHandler := NewCompanyHandler(companyService, logger)
	clientHandler := NewClientHandler(clientService, logger)
	employeeHandler := NewEmployeeHandler(employeeService, logger)
	itemHandler := NewCatalogueItemHandler(itemService, logger)
	quotationHandler := NewQuotationHandler(quotationService, referenceService, nil, logger)

	r := chi.NewRouter()
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)
		r.Get("/{id}", companyHandler.GetByID)
		r.Put("/{id}", companyHandler.Update)
		r.Delete("/{id}", companyHandler.Delete)
		r.Post("/{id}/seal", companyHandler.UploadSeal)
	})
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", employeeHandler.Create)
	})
	r.Route("/catalogue-items", func(r chi.Router) {
		r.Post("/", itemHandler.Create)
		r.Get("/", itemHandler.List)
	})
	r.Route("/quotations", func(r chi.Router) {
		r.Get("/", quotationHandler.List)
		r.Post("/", quotationHandler.Create)
		r.Post("/preview", quotationHandler.Preview)
		r.Get("/reference-number", quotationHandler.NextReferenceNumber)
		r.Get("/payment-terms", quotationHandler.PaymentTerms)
		r.Get("/{id}", quotationHandler.GetByID)
		r.Delete("/{id}", quotationHandler.Delete)
	})

	return &handlerEnv{
		db:           db,
		router:       r,
		companyRepo:  companyRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

func (e *handlerEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestCompanyHandler_CreateAndGet(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodPost, "/companies", domain.CreateCompanyRequest{
		Name:      "Chembio Lifesciences Pvt Ltd",
		GSTNumber: "27AAACC1234D1Z5",
		BankDetails: domain.BankDetails{
			BankName:      "HDFC Bank",
			AccountNumber: "50200012345678",
			IFSCCode:      "HDFC0000123",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/api/v1/companies/"))

	var created domain.CompanyDTO
	decodeBody(t, rec, &created)
	assert.Equal(t, "CBLS", created.Prefix)
	assert.False(t, created.HasSeal)

	rec = env.do(t, http.MethodGet, "/companies/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched domain.CompanyDTO
	decodeBody(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "HDFC Bank", fetched.BankDetails.BankName)
}

func TestCompanyHandler_ValidationError(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodPost, "/companies", domain.CreateCompanyRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	decodeBody(t, rec, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Errors, "name")
	assert.Contains(t, apiErr.Errors, "email")
}

func TestCompanyHandler_InvalidID(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodGet, "/companies/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/companies/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompanyHandler_UploadSeal(t *testing.T) {
	env := newHandlerEnv(t)

	company := &domain.Company{Name: "Chemlife Solutions"}
	require.NoError(t, env.companyRepo.Create(context.Background(), company))

	rec := env.do(t, http.MethodPost, "/companies/"+company.ID.String()+"/seal", domain.UploadSealRequest{
		SealImage: "data:image/png;base64,iVBORw0KGgo=",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Anything not a data:image/ URI is rejected by validation
	rec = env.do(t, http.MethodPost, "/companies/"+company.ID.String()+"/seal", domain.UploadSealRequest{
		SealImage: "iVBORw0KGgo=",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyHandler_SealTooLarge(t *testing.T) {
	env := newHandlerEnv(t)

	company := &domain.Company{Name: "Chemlife Solutions"}
	require.NoError(t, env.companyRepo.Create(context.Background(), company))

	// Twice the cap in base64 characters decodes to roughly 1.5 MiB.
	oversized := "data:image/png;base64," + strings.Repeat("A", domain.MaxSealImageBytes*2)
	rec := env.do(t, http.MethodPost, "/companies/"+company.ID.String()+"/seal", domain.UploadSealRequest{
		SealImage: oversized,
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestClientHandler_ListPagination(t *testing.T) {
	env := newHandlerEnv(t)

	for _, name := range []string{"Dr. Rao", "Dr. Mehta", "Prof. Singh"} {
		require.NoError(t, env.clientRepo.Create(context.Background(), &domain.Client{Name: name}))
	}

	rec := env.do(t, http.MethodGet, "/clients?page=1&pageSize=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.PaginatedResponse
	decodeBody(t, rec, &page)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 2)
}

func TestEmployeeHandler_DefaultDesignation(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodPost, "/employees", domain.CreateEmployeeRequest{Name: "S. Iyer"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.EmployeeDTO
	decodeBody(t, rec, &created)
	assert.Equal(t, domain.DefaultDesignation, created.Designation)
}

func TestQuotationHandler_Create(t *testing.T) {
	env := newHandlerEnv(t)

	company := &domain.Company{Name: "Chembio Lifesciences Pvt Ltd"}
	require.NoError(t, env.companyRepo.Create(context.Background(), company))
	client := &domain.Client{Name: "Dr. Rao", CompanyName: "Apex Pharma"}
	require.NoError(t, env.clientRepo.Create(context.Background(), client))
	employee := &domain.Employee{Name: "S. Iyer"}
	require.NoError(t, env.employeeRepo.Create(context.Background(), employee))

	rec := env.do(t, http.MethodPost, "/quotations", domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items: []domain.QuotationItemInput{
			{
				Description:        "Acetonitrile HPLC grade",
				Quantity:           "2",
				Price:              "500",
				DiscountPercentage: "10",
				GSTRate:            "18",
			},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.QuotationDTO
	decodeBody(t, rec, &created)
	assert.Regexp(t, `^CBLS/\d{4}/\d{3}$`, created.ReferenceNumber)
	assert.InDelta(t, 1062.0, created.GrandTotal, 0.001)
	assert.Equal(t, "Dr. Rao", created.Client.Name)

	// Missing party returns 404, not 500
	rec = env.do(t, http.MethodPost, "/quotations", domain.CreateQuotationRequest{
		CompanyID:  uuid.New(),
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Quantity: "1", Price: "10"}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotationHandler_CreateRequiresItems(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodPost, "/quotations", domain.CreateQuotationRequest{
		CompanyID:  uuid.New(),
		ClientID:   uuid.New(),
		EmployeeID: uuid.New(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	decodeBody(t, rec, &apiErr)
	assert.Contains(t, apiErr.Errors, "items")
}

func TestQuotationHandler_NextReferenceNumber(t *testing.T) {
	env := newHandlerEnv(t)

	company := &domain.Company{Name: "Chemlife Solutions"}
	require.NoError(t, env.companyRepo.Create(context.Background(), company))

	rec := env.do(t, http.MethodGet, "/quotations/reference-number?companyId="+company.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ref domain.ReferenceNumberDTO
	decodeBody(t, rec, &ref)
	assert.Regexp(t, `^CLS/\d{4}/001$`, ref.ReferenceNumber)

	rec = env.do(t, http.MethodGet, "/quotations/reference-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/quotations/reference-number?companyId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotationHandler_PaymentTerms(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodGet, "/quotations/payment-terms", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var terms []string
	decodeBody(t, rec, &terms)
	assert.Equal(t, domain.DefaultPaymentTerms, terms)
}

func TestQuotationHandler_Preview(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(t, http.MethodPost, "/quotations/preview", domain.PreviewQuotationRequest{
		Items: []domain.QuotationItemInput{
			{Quantity: "2", Price: "500", DiscountPercentage: "10", GSTRate: "18"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var preview domain.PreviewQuotationResponse
	decodeBody(t, rec, &preview)
	require.Len(t, preview.Items, 1)
	assert.InDelta(t, 450.0, preview.Items[0].DiscountedPrice, 0.001)
	assert.InDelta(t, 900.0, preview.Subtotal, 0.001)
	assert.InDelta(t, 162.0, preview.TotalGST, 0.001)
	assert.InDelta(t, 1062.0, preview.GrandTotal, 0.001)

	// Nothing was persisted
	rec = env.do(t, http.MethodGet, "/quotations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page domain.PaginatedResponse
	decodeBody(t, rec, &page)
	assert.Equal(t, int64(0), page.Total)
}

func TestQuotationHandler_Delete(t *testing.T) {
	env := newHandlerEnv(t)

	company := &domain.Company{Name: "Chembio Lifesciences Pvt Ltd"}
	require.NoError(t, env.companyRepo.Create(context.Background(), company))
	client := &domain.Client{Name: "Dr. Rao"}
	require.NoError(t, env.clientRepo.Create(context.Background(), client))
	employee := &domain.Employee{Name: "S. Iyer"}
	require.NoError(t, env.employeeRepo.Create(context.Background(), employee))

	rec := env.do(t, http.MethodPost, "/quotations", domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Quantity: "1", Price: "100"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.QuotationDTO
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodDelete, "/quotations/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/quotations/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/quotations/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
