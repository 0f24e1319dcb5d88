package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns the ID so inserts work the same on postgres and
// on the sqlite databases the tests run against.
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BankDetails holds a company's bank account information, embedded into
// the companies table and printed on every exported quotation.
type BankDetails struct {
	BankName      string `gorm:"type:varchar(200);column:bank_name" json:"bankName"`
	AccountNumber string `gorm:"type:varchar(50);column:account_number" json:"accountNumber"`
	IFSCCode      string `gorm:"type:varchar(20);column:ifsc_code" json:"ifscCode"`
	Branch        string `gorm:"type:varchar(200)" json:"branch"`
	AccountType   string `gorm:"type:varchar(50);column:account_type" json:"accountType"`
	AccountName   string `gorm:"type:varchar(200);column:account_name" json:"accountName"`
}

// Company represents an issuing legal entity. Quotation reference numbers
// are scoped per company, and the company's tax ids, bank details and seal
// appear on exported documents.
type Company struct {
	BaseModel
	Name        string      `gorm:"type:varchar(200);not null;index"`
	Address     string      `gorm:"type:varchar(500)"`
	Email       string      `gorm:"type:varchar(255)"`
	Phone       string      `gorm:"type:varchar(50)"`
	PAN         string      `gorm:"type:varchar(20);column:pan"`
	GSTNumber   string      `gorm:"type:varchar(20);column:gst_number"`
	BankDetails BankDetails `gorm:"embedded;embeddedPrefix:bank_"`
	// SealImage is a data URI (data:image/...;base64,...), capped at 1 MiB
	// on input. Stored inline with the record like the rest of the profile.
	SealImage string `gorm:"type:text;column:seal_image"`
}

// ReferencePrefix returns the quotation number prefix for this company.
// Companies whose name contains "chembio" (case-insensitive) use CBLS,
// everything else uses CLS.
func (c *Company) ReferencePrefix() string {
	if strings.Contains(strings.ToLower(c.Name), "chembio") {
		return "CBLS"
	}
	return "CLS"
}

// Client represents a purchasing contact, usually attached to an institute
// or company of their own.
type Client struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	CompanyName string `gorm:"type:varchar(200);column:company_name"`
	Address     string `gorm:"type:varchar(500)"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(50)"`
}

// DefaultDesignation applies when an employee is created without one.
const DefaultDesignation = "Sales Executive"

// Employee represents a sales employee who signs quotations.
type Employee struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	Mobile      string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(255)"`
	Designation string `gorm:"type:varchar(100);default:'Sales Executive'"`
}

// CatalogueItem represents a product in the sales catalogue.
type CatalogueItem struct {
	BaseModel
	CatalogueID string  `gorm:"type:varchar(100);not null;index;column:catalogue_id"`
	Description string  `gorm:"type:varchar(500);not null"`
	PackSize    string  `gorm:"type:varchar(100);column:pack_size"`
	Price       float64 `gorm:"type:decimal(15,2);not null;default:0"`
	HSNCode     string  `gorm:"type:varchar(20);column:hsn_code;index"`
	CASNumber   string  `gorm:"type:varchar(50);column:cas_number"`
	Brand       string  `gorm:"type:varchar(100)"`
	// GSTRate is resolved from the HSN classification table when the item
	// is created without an explicit rate.
	GSTRate float64 `gorm:"type:decimal(5,2);column:gst_rate"`
}

// QuotationStatus represents the lifecycle state of a quotation
type QuotationStatus string

const (
	QuotationStatusDraft QuotationStatus = "draft"
)

// PartySnapshot holds display fields of a company/client/employee frozen at
// quotation creation time. Later edits to the master records never alter a
// saved quotation; the foreign ids are retained for traceability only.
type PartySnapshot struct {
	Name        string `gorm:"type:varchar(200)" json:"name"`
	CompanyName string `gorm:"type:varchar(200);column:company_name" json:"companyName,omitempty"`
	Address     string `gorm:"type:varchar(500)" json:"address,omitempty"`
	Email       string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone       string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Designation string `gorm:"type:varchar(100)" json:"designation,omitempty"`
}

// Quotation represents a saved sales quotation. Saved quotations are never
// updated in place: export reads them, deletion removes them.
type Quotation struct {
	BaseModel
	ReferenceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex;column:reference_number"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Company         *Company        `gorm:"foreignKey:CompanyID"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Client          *Client         `gorm:"foreignKey:ClientID"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID"`
	CompanySnap     PartySnapshot   `gorm:"embedded;embeddedPrefix:company_"`
	ClientSnap      PartySnapshot   `gorm:"embedded;embeddedPrefix:client_"`
	EmployeeSnap    PartySnapshot   `gorm:"embedded;embeddedPrefix:employee_"`
	Items           []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	PaymentTerms    string          `gorm:"type:varchar(500);column:payment_terms"`
	Notes           string          `gorm:"type:text"`
	Subtotal        float64         `gorm:"type:decimal(15,2);not null;default:0"`
	TotalGST        float64         `gorm:"type:decimal(15,2);not null;default:0;column:total_gst"`
	GrandTotal      float64         `gorm:"type:decimal(15,2);not null;default:0;column:grand_total"`
	Status          QuotationStatus `gorm:"type:varchar(50);not null;default:'draft';index"`
	Documents       []ExportedDocument `gorm:"foreignKey:QuotationID"`
}

// QuotationItem represents one printed row of a quotation. Line order is
// significant; rows are numbered in the exported document.
type QuotationItem struct {
	BaseModel
	QuotationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quotation   *Quotation `gorm:"foreignKey:QuotationID"`
	LineOrder   int        `gorm:"not null;default:0;column:line_order"`
	CatalogueID string     `gorm:"type:varchar(100);column:catalogue_id"`
	Description string     `gorm:"type:varchar(500)"`
	PackSize    string     `gorm:"type:varchar(100);column:pack_size"`
	HSNCode     string     `gorm:"type:varchar(20);column:hsn_code"`
	Brand       string     `gorm:"type:varchar(100)"`
	LeadTime    string     `gorm:"type:varchar(100);column:lead_time"`

	Quantity           float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Price              float64 `gorm:"type:decimal(15,2);not null;default:0"`
	DiscountPercentage float64 `gorm:"type:decimal(5,2);not null;default:0;column:discount_percentage"`
	GSTRate            float64 `gorm:"type:decimal(5,2);not null;default:0;column:gst_rate"`

	// Derived fields, always recomputed from the four raw inputs above.
	DiscountedPrice float64 `gorm:"type:decimal(15,2);not null;default:0;column:discounted_price"`
	ExpandedRate    float64 `gorm:"type:decimal(15,2);not null;default:0;column:expanded_rate"`
	GSTValue        float64 `gorm:"type:decimal(15,2);not null;default:0;column:gst_value"`
	Total           float64 `gorm:"type:decimal(15,2);not null;default:0"`
}

// ExportedDocument records a rendered quotation document archived through
// the storage layer, so past exports can be re-downloaded and pruned by the
// retention job. The quotation record itself is never touched by an export.
type ExportedDocument struct {
	BaseModel
	QuotationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quotation   *Quotation `gorm:"foreignKey:QuotationID"`
	Filename    string     `gorm:"type:varchar(255);not null"`
	ContentType string     `gorm:"type:varchar(100);not null"`
	Size        int64      `gorm:"not null"`
	StoragePath string     `gorm:"type:varchar(500);not null;unique"`
}

// DefaultPaymentTerms is the preset list offered when composing a
// quotation; callers may also supply free-text terms.
var DefaultPaymentTerms = []string{
	"50% advance payment along with the purchase order and balance before dispatch of material.",
	"100% advance payment along with the purchase order.",
	"Payment within 30 days from the date of invoice.",
	"Payment within 45 days from the date of invoice.",
}

// MaxSealImageBytes caps the decoded size of an uploaded seal image.
const MaxSealImageBytes = 1 << 20
