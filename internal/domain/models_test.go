package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The schema must migrate and insert cleanly on sqlite, where postgres
// column defaults like gen_random_uuid() are not available.
func TestBaseModel_SQLiteCompatible(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Company{},
		&Client{},
		&Employee{},
		&CatalogueItem{},
		&Quotation{},
		&QuotationItem{},
		&ExportedDocument{},
	))

	company := &Company{Name: "Chemlife Solutions"}
	require.NoError(t, db.Create(company).Error)
	assert.NotEqual(t, uuid.Nil, company.ID, "BeforeCreate should assign the id")

	var loaded Company
	require.NoError(t, db.First(&loaded, "id = ?", company.ID).Error)
	assert.Equal(t, "Chemlife Solutions", loaded.Name)
}

func TestBaseModel_BeforeCreateKeepsExplicitID(t *testing.T) {
	id := uuid.New()
	m := &BaseModel{ID: id}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, id, m.ID)

	var fresh BaseModel
	require.NoError(t, fresh.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, fresh.ID)
}

func TestCompany_ReferencePrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Chembio Lifesciences Pvt Ltd", "CBLS"},
		{"CHEMBIO LIFESCIENCES", "CBLS"},
		{"Chemlife Solutions", "CLS"},
		{"Apex Pharma", "CLS"},
	}
	for _, tt := range tests {
		c := &Company{Name: tt.name}
		assert.Equal(t, tt.want, c.ReferencePrefix(), tt.name)
	}
}
