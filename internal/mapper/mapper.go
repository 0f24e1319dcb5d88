package mapper

import (
	"github.com/chembio-ls/quotation-api/internal/domain"
)

// ToCompanyDTO converts Company to CompanyDTO
func ToCompanyDTO(company *domain.Company) domain.CompanyDTO {
	return domain.CompanyDTO{
		ID:          company.ID,
		Name:        company.Name,
		Address:     company.Address,
		Email:       company.Email,
		Phone:       company.Phone,
		PAN:         company.PAN,
		GSTNumber:   company.GSTNumber,
		BankDetails: company.BankDetails,
		HasSeal:     company.SealImage != "",
		Prefix:      company.ReferencePrefix(),
		CreatedAt:   company.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   company.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:          client.ID,
		Name:        client.Name,
		CompanyName: client.CompanyName,
		Address:     client.Address,
		Email:       client.Email,
		Phone:       client.Phone,
		CreatedAt:   client.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   client.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToEmployeeDTO converts Employee to EmployeeDTO
func ToEmployeeDTO(employee *domain.Employee) domain.EmployeeDTO {
	return domain.EmployeeDTO{
		ID:          employee.ID,
		Name:        employee.Name,
		Mobile:      employee.Mobile,
		Email:       employee.Email,
		Designation: employee.Designation,
		CreatedAt:   employee.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   employee.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToCatalogueItemDTO converts CatalogueItem to CatalogueItemDTO
func ToCatalogueItemDTO(item *domain.CatalogueItem) domain.CatalogueItemDTO {
	return domain.CatalogueItemDTO{
		ID:          item.ID,
		CatalogueID: item.CatalogueID,
		Description: item.Description,
		PackSize:    item.PackSize,
		Price:       item.Price,
		HSNCode:     item.HSNCode,
		CASNumber:   item.CASNumber,
		Brand:       item.Brand,
		GSTRate:     item.GSTRate,
		CreatedAt:   item.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   item.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToQuotationItemDTO converts QuotationItem to QuotationItemDTO
func ToQuotationItemDTO(item *domain.QuotationItem) domain.QuotationItemDTO {
	return domain.QuotationItemDTO{
		ID:                 item.ID,
		LineOrder:          item.LineOrder,
		CatalogueID:        item.CatalogueID,
		Description:        item.Description,
		PackSize:           item.PackSize,
		HSNCode:            item.HSNCode,
		Brand:              item.Brand,
		LeadTime:           item.LeadTime,
		Quantity:           item.Quantity,
		Price:              item.Price,
		DiscountPercentage: item.DiscountPercentage,
		GSTRate:            item.GSTRate,
		DiscountedPrice:    item.DiscountedPrice,
		ExpandedRate:       item.ExpandedRate,
		GSTValue:           item.GSTValue,
		Total:              item.Total,
	}
}

// ToQuotationDTO converts Quotation to QuotationDTO
func ToQuotationDTO(quotation *domain.Quotation) domain.QuotationDTO {
	items := make([]domain.QuotationItemDTO, len(quotation.Items))
	for i := range quotation.Items {
		items[i] = ToQuotationItemDTO(&quotation.Items[i])
	}

	return domain.QuotationDTO{
		ID:              quotation.ID,
		ReferenceNumber: quotation.ReferenceNumber,
		CompanyID:       quotation.CompanyID,
		ClientID:        quotation.ClientID,
		EmployeeID:      quotation.EmployeeID,
		Company:         quotation.CompanySnap,
		Client:          quotation.ClientSnap,
		Employee:        quotation.EmployeeSnap,
		Items:           items,
		PaymentTerms:    quotation.PaymentTerms,
		Notes:           quotation.Notes,
		Subtotal:        quotation.Subtotal,
		TotalGST:        quotation.TotalGST,
		GrandTotal:      quotation.GrandTotal,
		Status:          quotation.Status,
		CreatedAt:       quotation.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToExportedDocumentDTO converts ExportedDocument to ExportedDocumentDTO
func ToExportedDocumentDTO(doc *domain.ExportedDocument) domain.ExportedDocumentDTO {
	return domain.ExportedDocumentDTO{
		ID:          doc.ID,
		QuotationID: doc.QuotationID,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		CreatedAt:   doc.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
