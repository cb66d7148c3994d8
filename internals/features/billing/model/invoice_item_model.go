// file: internals/features/billing/model/invoice_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceItemModel is a frozen line item: quantity*unit_price - discount,
// captured once at invoice creation and never mutated afterwards.
type InvoiceItemModel struct {
	// PK
	InvoiceItemID uuid.UUID `gorm:"column:invoice_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_item_id"`

	// FK -> invoices(invoice_id)
	InvoiceItemInvoiceID uuid.UUID `gorm:"column:invoice_item_invoice_id;type:uuid;not null;index" json:"invoice_item_invoice_id"`

	// Optional catalog reference; when set, the catalog name overrides the
	// requested description at build time.
	InvoiceItemMedicalServiceID *uuid.UUID `gorm:"column:invoice_item_medical_service_id;type:uuid;index" json:"invoice_item_medical_service_id,omitempty"`

	InvoiceItemDescription    string          `gorm:"column:invoice_item_description;type:varchar(500);not null" json:"invoice_item_description"`
	InvoiceItemQuantity       int             `gorm:"column:invoice_item_quantity;type:int;not null;check:invoice_item_quantity > 0" json:"invoice_item_quantity"`
	InvoiceItemUnitPrice      decimal.Decimal `gorm:"column:invoice_item_unit_price;type:numeric(18,2);not null;check:invoice_item_unit_price >= 0" json:"invoice_item_unit_price"`
	InvoiceItemDiscountAmount decimal.Decimal `gorm:"column:invoice_item_discount_amount;type:numeric(18,2);not null;default:0" json:"invoice_item_discount_amount"`
	InvoiceItemTotalPrice     decimal.Decimal `gorm:"column:invoice_item_total_price;type:numeric(18,2);not null" json:"invoice_item_total_price"`

	// Audit
	InvoiceItemCreatedBy string         `gorm:"column:invoice_item_created_by;type:varchar(100);not null" json:"invoice_item_created_by"`
	InvoiceItemCreatedAt time.Time      `gorm:"column:invoice_item_created_at;type:timestamptz;not null;default:now()" json:"invoice_item_created_at"`
	InvoiceItemDeletedAt gorm.DeletedAt `gorm:"column:invoice_item_deleted_at;type:timestamptz;index" json:"-"`
}

func (InvoiceItemModel) TableName() string { return "invoice_items" }

func (m *InvoiceItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvoiceItemCreatedAt.IsZero() {
		m.InvoiceItemCreatedAt = time.Now()
	}
	return nil
}
