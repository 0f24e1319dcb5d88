package service

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/repository"
	"github.com/chembio-ls/quotation-api/internal/storage"
)

func writeTestTemplate(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	ct, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = ct.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)

	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(`<w:t>{{refNumber}} {{client.name}} {{grandTotal}}</w:t>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "quotation_template.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func newExportEnv(t *testing.T) (*testEnv, *ExportService, *repository.ExportedDocumentRepository) {
	t.Helper()
	env := newTestEnv(t)
	logger := zap.NewNop()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	documentRepo := repository.NewExportedDocumentRepository(env.db)
	exports := NewExportService(env.quotationRepo, env.companyRepo, documentRepo, store, writeTestTemplate(t), logger)
	return env, exports, documentRepo
}

func TestExportArchivesDocument(t *testing.T) {
	env, exports, _ := newExportEnv(t)
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	dto, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items: []domain.QuotationItemInput{
			{Description: "Acetone", Quantity: "2", Price: "1000", DiscountPercentage: "10", GSTRate: "18"},
		},
	})
	require.NoError(t, err)

	at := time.UnixMilli(1735725600000)
	exports.WithClock(func() time.Time { return at })

	result, err := exports.Export(context.Background(), dto.ID)
	require.NoError(t, err)

	assert.Equal(t, "Test_Quote_1735725600000.docx", result.Filename)
	assert.Equal(t, docxContentType, result.ContentType)
	assert.NotEmpty(t, result.Content)

	// rendered content is a valid zip with the substituted document
	zr, err := zip.NewReader(bytes.NewReader(result.Content), int64(len(result.Content)))
	require.NoError(t, err)
	assert.NotEmpty(t, zr.File)

	docs, err := exports.ListDocuments(context.Background(), dto.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, result.Filename, docs[0].Filename)
	assert.Equal(t, int64(len(result.Content)), docs[0].Size)
}

func TestExportDoesNotMutateQuotation(t *testing.T) {
	env, exports, _ := newExportEnv(t)
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	dto, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Description: "Acetone", Price: "100", Quantity: "1"}},
	})
	require.NoError(t, err)

	_, err = exports.Export(context.Background(), dto.ID)
	require.NoError(t, err)
	_, err = exports.Export(context.Background(), dto.ID)
	require.NoError(t, err)

	got, err := env.quotations.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.GrandTotal, got.GrandTotal)
	assert.Equal(t, dto.ReferenceNumber, got.ReferenceNumber)
	assert.Equal(t, domain.QuotationStatusDraft, got.Status)

	docs, err := exports.ListDocuments(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestExportQuotationNotFound(t *testing.T) {
	_, exports, _ := newExportEnv(t)

	_, err := exports.Export(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadDocumentRoundTrip(t *testing.T) {
	env, exports, _ := newExportEnv(t)
	company := env.seedCompany(t, "Chembio Lifesciences Pvt Ltd")
	client := env.seedClient(t)
	employee := env.seedEmployee(t)

	dto, err := env.quotations.Create(context.Background(), &domain.CreateQuotationRequest{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Items:      []domain.QuotationItemInput{{Description: "Acetone", Price: "100", Quantity: "1"}},
	})
	require.NoError(t, err)

	result, err := exports.Export(context.Background(), dto.ID)
	require.NoError(t, err)

	got, err := exports.DownloadDocument(context.Background(), result.Document.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Content, got.Content)
	assert.Equal(t, result.Filename, got.Filename)
}
