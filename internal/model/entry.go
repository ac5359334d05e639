package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductEntry records a stock receipt: a quantity of a product received from
// a supplier on a date, with the invoice file attached.
// Entries are created and deleted, never updated in place.
type ProductEntry struct {
	BaseModel
	EntryCode string `gorm:"type:varchar(6);not null" json:"entry_code"` // Display label, not unique

	ProductID uint     `gorm:"not null;index" json:"product_id" validate:"required"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	SupplierID uint      `gorm:"not null;index" json:"supplier_id" validate:"required"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`

	EntryDate time.Time `gorm:"type:date;not null" json:"entry_date" validate:"required"`

	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitValue decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unit_value"`
	// Total is submitted by the client precomputed and stored as-is
	TotalValue decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_value"`

	InvoiceNumber string `gorm:"type:varchar(50);not null" json:"invoice_number" validate:"required"`
	Batch         string `gorm:"type:varchar(50)" json:"batch,omitempty"`

	// Attached invoice file
	FileName string `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType string `gorm:"type:varchar(100)" json:"file_type"`
	FileData []byte `gorm:"type:bytea" json:"-"`
}

func (ProductEntry) TableName() string {
	return "product_entries"
}

// EntryResponse for API responses
type EntryResponse struct {
	ID            uint            `json:"id"`
	EntryCode     string          `json:"entry_code"`
	ProductID     uint            `json:"product_id"`
	Product       *Product        `json:"product,omitempty"`
	SupplierID    uint            `json:"supplier_id"`
	Supplier      *Supplier       `json:"supplier,omitempty"`
	EntryDate     string          `json:"entry_date"`
	Quantity      int             `json:"quantity"`
	UnitValue     decimal.Decimal `json:"unit_value"`
	TotalValue    decimal.Decimal `json:"total_value"`
	InvoiceNumber string          `json:"invoice_number"`
	Batch         string          `json:"batch,omitempty"`
	FileName      string          `json:"file_name"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// ToResponse converts ProductEntry to EntryResponse
func (e *ProductEntry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		EntryCode:     e.EntryCode,
		ProductID:     e.ProductID,
		Product:       e.Product,
		SupplierID:    e.SupplierID,
		Supplier:      e.Supplier,
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		Quantity:      e.Quantity,
		UnitValue:     e.UnitValue,
		TotalValue:    e.TotalValue,
		InvoiceNumber: e.InvoiceNumber,
		Batch:         e.Batch,
		FileName:      e.FileName,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}
