package docgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

func TestBuildQuotationData(t *testing.T) {
	q := &domain.Quotation{
		ReferenceNumber: "CBLS/2508/004",
		CompanySnap: domain.PartySnapshot{
			Name:    "Chembio Lifesciences Pvt Ltd",
			Address: "Plot 14, MIDC",
			Email:   "sales@chembio.example",
			Phone:   "022-400100",
		},
		ClientSnap: domain.PartySnapshot{
			Name:        "Dr. Rao",
			CompanyName: "Apex Pharma",
		},
		EmployeeSnap: domain.PartySnapshot{
			Name:        "S. Iyer",
			Designation: "Sales Executive",
		},
		Items: []domain.QuotationItem{
			{
				Description:        "Acetonitrile HPLC",
				CatalogueID:        "AC-1100",
				HSNCode:            "29269000",
				Quantity:           2,
				DiscountedPrice:    900,
				DiscountPercentage: 10,
				GSTRate:            18,
				Total:              2124,
			},
		},
		PaymentTerms: "100% advance",
		Notes:        "Prices valid 30 days",
		Subtotal:     1800,
		TotalGST:     324,
		GrandTotal:   2124,
	}
	company := &domain.Company{
		PAN:       "AAACC1234D",
		GSTNumber: "27AAACC1234D1Z5",
		BankDetails: domain.BankDetails{
			BankName:      "HDFC Bank",
			AccountNumber: "50200012345678",
			IFSCCode:      "HDFC0000123",
			Branch:        "Andheri East",
			AccountName:   "Chembio Lifesciences",
		},
	}

	data := BuildQuotationData(q, company, time.Date(2025, time.August, 7, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "CBLS/2508/004", data["refNumber"])
	assert.Equal(t, "7 August 2025", data["date"])
	assert.Equal(t, "27AAACC1234D1Z5", data["gst"])
	assert.Equal(t, "HDFC0000123", data["bankDetails"].(Data)["ifscCode"])
	assert.Equal(t, "Apex Pharma", data["client"].(Data)["company"])
	assert.Equal(t, "Sales Executive", data["employee"].(Data)["designation"])
	assert.Equal(t, "1,800.00", data["subTotal"])
	assert.Equal(t, "2,124.00", data["grandTotal"])
	assert.Equal(t, "100% advance\n\nPrices valid 30 days", data["terms"])

	items := data["items"].([]Data)
	assert.Len(t, items, 1)
	assert.Equal(t, "1", items[0]["s_no"])
	assert.Equal(t, "2", items[0]["quantity"])
	assert.Equal(t, "900.00", items[0]["unitPrice"])
	assert.Equal(t, "10", items[0]["discount"])
	assert.Equal(t, "2,124.00", items[0]["total"])
}

func TestJoinTermsSkipsBlank(t *testing.T) {
	assert.Equal(t, "pay now", joinTerms("pay now", ""))
	assert.Equal(t, "a note", joinTerms("  ", "a note"))
	assert.Equal(t, "", joinTerms("", ""))
}
