package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

func TestToCompanyDTO(t *testing.T) {
	company := &domain.Company{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		Name:      "Chembio Lifesciences Pvt Ltd",
		GSTNumber: "27AAACC1234D1Z5",
		SealImage: "data:image/png;base64,iVBORw0KGgo=",
	}

	dto := ToCompanyDTO(company)

	assert.Equal(t, company.ID, dto.ID)
	assert.Equal(t, "CBLS", dto.Prefix)
	assert.True(t, dto.HasSeal, "seal image presence should surface as hasSeal")
	assert.Equal(t, "2025-01-15T10:30:00Z", dto.CreatedAt)
}

func TestToCompanyDTO_NoSeal(t *testing.T) {
	dto := ToCompanyDTO(&domain.Company{Name: "Chemlife Solutions"})
	assert.Equal(t, "CLS", dto.Prefix)
	assert.False(t, dto.HasSeal)
}

func TestToQuotationDTO(t *testing.T) {
	quotation := &domain.Quotation{
		BaseModel:       domain.BaseModel{ID: uuid.New()},
		ReferenceNumber: "CBLS/2501/007",
		ClientSnap:      domain.PartySnapshot{Name: "Dr. Rao", CompanyName: "Apex Pharma"},
		Items: []domain.QuotationItem{
			{LineOrder: 1, Description: "Acetonitrile", Total: 1062},
			{LineOrder: 2, Description: "Methanol", Total: 531},
		},
		Subtotal:   1350,
		TotalGST:   243,
		GrandTotal: 1593,
		Status:     domain.QuotationStatusDraft,
	}

	dto := ToQuotationDTO(quotation)

	assert.Equal(t, "CBLS/2501/007", dto.ReferenceNumber)
	assert.Equal(t, "Dr. Rao", dto.Client.Name)
	assert.Len(t, dto.Items, 2)
	assert.Equal(t, 1, dto.Items[0].LineOrder)
	assert.Equal(t, 531.0, dto.Items[1].Total)
	assert.Equal(t, domain.QuotationStatusDraft, dto.Status)
}

func TestToExportedDocumentDTO(t *testing.T) {
	doc := &domain.ExportedDocument{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		QuotationID: uuid.New(),
		Filename:    "Test_Quote_1735725600000.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Size:        2048,
		StoragePath: "2025/01/abc.docx",
	}

	dto := ToExportedDocumentDTO(doc)

	assert.Equal(t, doc.QuotationID, dto.QuotationID)
	assert.Equal(t, doc.Filename, dto.Filename)
	assert.Equal(t, int64(2048), dto.Size)
}
