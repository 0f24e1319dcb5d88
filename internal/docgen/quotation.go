package docgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/chembio-ls/quotation-api/internal/domain"
)

// BuildQuotationData flattens a quotation into the value tree the docx
// templates expect. Key names follow the placeholders used in the
// shipped templates, so renaming one here breaks existing documents.
func BuildQuotationData(q *domain.Quotation, company *domain.Company, issuedAt time.Time) Data {
	items := make([]Data, 0, len(q.Items))
	for i, it := range q.Items {
		items = append(items, Data{
			"s_no":        fmt.Sprintf("%d", i+1),
			"description": it.Description,
			"catalogueId": it.CatalogueID,
			"packSize":    it.PackSize,
			"hsn":         it.HSNCode,
			"brand":       it.Brand,
			"leadTime":    it.LeadTime,
			"quantity":    trimNumber(it.Quantity),
			"unitPrice":   FormatINR(it.DiscountedPrice),
			"discount":    trimNumber(it.DiscountPercentage),
			"gstRate":     trimNumber(it.GSTRate),
			"total":       FormatINR(it.Total),
		})
	}

	return Data{
		"name":        q.CompanySnap.Name,
		"companyName": q.CompanySnap.CompanyName,
		"address":     q.CompanySnap.Address,
		"email":       q.CompanySnap.Email,
		"phone":       q.CompanySnap.Phone,
		"pan":         company.PAN,
		"gst":         company.GSTNumber,
		"bankDetails": Data{
			"accountName":   company.BankDetails.AccountName,
			"accountNumber": company.BankDetails.AccountNumber,
			"bankName":      company.BankDetails.BankName,
			"branch":        company.BankDetails.Branch,
			"ifscCode":      company.BankDetails.IFSCCode,
		},
		"refNumber": q.ReferenceNumber,
		"date":      FormatDate(issuedAt),
		"client": Data{
			"name":    q.ClientSnap.Name,
			"company": q.ClientSnap.CompanyName,
			"address": q.ClientSnap.Address,
			"phone":   q.ClientSnap.Phone,
			"email":   q.ClientSnap.Email,
		},
		"employee": Data{
			"name":        q.EmployeeSnap.Name,
			"designation": q.EmployeeSnap.Designation,
			"phone":       q.EmployeeSnap.Phone,
			"email":       q.EmployeeSnap.Email,
		},
		"items":      items,
		"subTotal":   FormatINR(q.Subtotal),
		"gstTotal":   FormatINR(q.TotalGST),
		"grandTotal": FormatINR(q.GrandTotal),
		"terms":      joinTerms(q.PaymentTerms, q.Notes),
	}
}

// ExportFilename names a rendered document with a millisecond timestamp
// so successive exports of the same quotation never collide.
func ExportFilename(at time.Time) string {
	return fmt.Sprintf("Test_Quote_%d.docx", at.UnixMilli())
}

func joinTerms(paymentTerms, notes string) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(paymentTerms) != "" {
		parts = append(parts, paymentTerms)
	}
	if strings.TrimSpace(notes) != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, "\n\n")
}

// trimNumber renders a float without trailing zeros, so a quantity of 2
// prints as "2" and 2.5 as "2.5".
func trimNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
