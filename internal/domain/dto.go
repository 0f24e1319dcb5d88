package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses

type CompanyDTO struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	PAN         string      `json:"pan,omitempty"`
	GSTNumber   string      `json:"gstNumber,omitempty"`
	BankDetails BankDetails `json:"bankDetails"`
	HasSeal     bool        `json:"hasSeal"`
	Prefix      string      `json:"prefix"`
	CreatedAt   string      `json:"createdAt"` // ISO 8601
	UpdatedAt   string      `json:"updatedAt"` // ISO 8601
}

type ClientDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName,omitempty"`
	Address     string    `json:"address,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type EmployeeDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile,omitempty"`
	Email       string    `json:"email,omitempty"`
	Designation string    `json:"designation,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type CatalogueItemDTO struct {
	ID          uuid.UUID `json:"id"`
	CatalogueID string    `json:"catalogueId"`
	Description string    `json:"description"`
	PackSize    string    `json:"packSize,omitempty"`
	Price       float64   `json:"price"`
	HSNCode     string    `json:"hsnCode,omitempty"`
	CASNumber   string    `json:"casNumber,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	GSTRate     float64   `json:"gstRate"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type QuotationItemDTO struct {
	ID                 uuid.UUID `json:"id,omitempty"`
	LineOrder          int       `json:"lineOrder"`
	CatalogueID        string    `json:"catalogueId,omitempty"`
	Description        string    `json:"description,omitempty"`
	PackSize           string    `json:"packSize,omitempty"`
	HSNCode            string    `json:"hsnCode,omitempty"`
	Brand              string    `json:"brand,omitempty"`
	LeadTime           string    `json:"leadTime,omitempty"`
	Quantity           float64   `json:"quantity"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	GSTRate            float64   `json:"gstRate"`
	DiscountedPrice    float64   `json:"discountedPrice"`
	ExpandedRate       float64   `json:"expandedRate"`
	GSTValue           float64   `json:"gstValue"`
	Total              float64   `json:"total"`
}

type QuotationDTO struct {
	ID              uuid.UUID          `json:"id"`
	ReferenceNumber string             `json:"referenceNumber"`
	CompanyID       uuid.UUID          `json:"companyId"`
	ClientID        uuid.UUID          `json:"clientId"`
	EmployeeID      uuid.UUID          `json:"employeeId"`
	Company         PartySnapshot      `json:"company"`
	Client          PartySnapshot      `json:"client"`
	Employee        PartySnapshot      `json:"employee"`
	Items           []QuotationItemDTO `json:"items"`
	PaymentTerms    string             `json:"paymentTerms,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Subtotal        float64            `json:"subtotal"`
	TotalGST        float64            `json:"totalGST"`
	GrandTotal      float64            `json:"grandTotal"`
	Status          QuotationStatus    `json:"status"`
	CreatedAt       string             `json:"createdAt"`
}

type ExportedDocumentDTO struct {
	ID          uuid.UUID `json:"id"`
	QuotationID uuid.UUID `json:"quotationId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   string    `json:"createdAt"`
}

// ReferenceNumberDTO is returned by the allocator preview endpoint.
type ReferenceNumberDTO struct {
	ReferenceNumber string `json:"referenceNumber"`
}

// DashboardMetricsDTO holds the entity counts shown on the dashboard.
type DashboardMetricsDTO struct {
	Companies  int64 `json:"companies"`
	Clients    int64 `json:"clients"`
	Employees  int64 `json:"employees"`
	Items      int64 `json:"items"`
	Quotations int64 `json:"quotations"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

type CreateCompanyRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Address     string      `json:"address,omitempty" validate:"max=500"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string      `json:"phone,omitempty" validate:"max=50"`
	PAN         string      `json:"pan,omitempty" validate:"max=20"`
	GSTNumber   string      `json:"gstNumber,omitempty" validate:"max=20"`
	BankDetails BankDetails `json:"bankDetails"`
}

type UpdateCompanyRequest = CreateCompanyRequest

// UploadSealRequest carries a seal image as a data URI.
type UploadSealRequest struct {
	SealImage string `json:"sealImage" validate:"required,startswith=data:image/"`
}

type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	CompanyName string `json:"companyName,omitempty" validate:"max=200"`
	Address     string `json:"address,omitempty" validate:"max=500"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"max=50"`
}

type UpdateClientRequest = CreateClientRequest

type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Mobile      string `json:"mobile,omitempty" validate:"max=50"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Designation string `json:"designation,omitempty" validate:"max=100"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type CreateCatalogueItemRequest struct {
	CatalogueID string  `json:"catalogueId" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	PackSize    string  `json:"packSize,omitempty" validate:"max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	HSNCode     string  `json:"hsnCode,omitempty" validate:"max=20"`
	CASNumber   string  `json:"casNumber,omitempty" validate:"max=50"`
	Brand       string  `json:"brand,omitempty" validate:"max=100"`
	// GSTRate of nil means "resolve from the HSN classification table".
	GSTRate *float64 `json:"gstRate,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type UpdateCatalogueItemRequest = CreateCatalogueItemRequest

// QuotationItemInput carries the raw fields of one quotation row. Numeric
// fields are strings so that blank and partially-typed values coerce to
// zero instead of failing to decode.
type QuotationItemInput struct {
	CatalogueID string `json:"catalogueId,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	PackSize    string `json:"packSize,omitempty" validate:"max=100"`
	HSNCode     string `json:"hsnCode,omitempty" validate:"max=20"`
	Brand       string `json:"brand,omitempty" validate:"max=100"`
	LeadTime    string `json:"leadTime,omitempty" validate:"max=100"`

	Quantity           string `json:"quantity,omitempty"`
	Price              string `json:"price,omitempty"`
	DiscountPercentage string `json:"discountPercentage,omitempty"`
	GSTRate            string `json:"gstRate,omitempty"`
}

type CreateQuotationRequest struct {
	// ReferenceNumber may be pre-fetched from the allocator endpoint.
	// Left blank, the server allocates one at save time.
	ReferenceNumber string               `json:"referenceNumber,omitempty" validate:"max=50"`
	CompanyID       uuid.UUID            `json:"companyId" validate:"required"`
	ClientID        uuid.UUID            `json:"clientId" validate:"required"`
	EmployeeID      uuid.UUID            `json:"employeeId" validate:"required"`
	Items           []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentTerms    string               `json:"paymentTerms,omitempty" validate:"max=500"`
	Notes           string               `json:"notes,omitempty"`
}

// PreviewQuotationRequest recomputes derived figures for a draft payload
// without touching the store.
type PreviewQuotationRequest struct {
	Items []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
}

type PreviewQuotationResponse struct {
	Items      []QuotationItemDTO `json:"items"`
	Subtotal   float64            `json:"subtotal"`
	TotalGST   float64            `json:"totalGST"`
	GrandTotal float64            `json:"grandTotal"`
}
