// file: internals/features/billing/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — invoice status
============================== */

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusRefunded      InvoiceStatus = "refunded"
)

// CanAcceptPayment: only pending and partially paid invoices may be settled.
func (s InvoiceStatus) CanAcceptPayment() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPartiallyPaid
}

/* ==============================
   MODEL
============================== */

type InvoiceModel struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Immutable business number (INV-YYYYMMDD-XXXXXXXX)
	InvoiceNumber string `gorm:"column:invoice_number;type:varchar(30);not null;uniqueIndex" json:"invoice_number"`

	// Tenant & references
	InvoiceFacilityID    uuid.UUID  `gorm:"column:invoice_facility_id;type:uuid;not null;index" json:"invoice_facility_id"`
	InvoicePatientID     uuid.UUID  `gorm:"column:invoice_patient_id;type:uuid;not null;index" json:"invoice_patient_id"`
	InvoiceAppointmentID *uuid.UUID `gorm:"column:invoice_appointment_id;type:uuid;index" json:"invoice_appointment_id,omitempty"`

	// Dates
	InvoiceDate    time.Time  `gorm:"column:invoice_date;type:timestamptz;not null;default:now();index" json:"invoice_date"`
	InvoiceDueDate *time.Time `gorm:"column:invoice_due_date;type:timestamptz" json:"invoice_due_date,omitempty"`

	// Money (numeric(18,2), single currency per deployment)
	InvoiceSubtotal           decimal.Decimal `gorm:"column:invoice_subtotal;type:numeric(18,2);not null;default:0" json:"invoice_subtotal"`
	InvoiceDiscountPercentage decimal.Decimal `gorm:"column:invoice_discount_percentage;type:numeric(5,2);not null;default:0" json:"invoice_discount_percentage"`
	InvoiceDiscountAmount     decimal.Decimal `gorm:"column:invoice_discount_amount;type:numeric(18,2);not null;default:0" json:"invoice_discount_amount"`
	InvoiceTotalAmount        decimal.Decimal `gorm:"column:invoice_total_amount;type:numeric(18,2);not null;default:0;check:invoice_total_amount >= 0" json:"invoice_total_amount"`
	InvoicePaidAmount         decimal.Decimal `gorm:"column:invoice_paid_amount;type:numeric(18,2);not null;default:0;check:invoice_paid_amount >= 0" json:"invoice_paid_amount"`
	InvoiceCurrency           string          `gorm:"column:invoice_currency;type:varchar(3);not null" json:"invoice_currency"`

	// Status
	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending';index" json:"invoice_status"`
	InvoiceNotes  *string       `gorm:"column:invoice_notes;type:text" json:"invoice_notes,omitempty"`

	// Items (cascade lifecycle, frozen at creation)
	InvoiceItems []InvoiceItemModel `gorm:"foreignKey:InvoiceItemInvoiceID;references:InvoiceID" json:"invoice_items,omitempty"`

	// Audit
	InvoiceCreatedBy string         `gorm:"column:invoice_created_by;type:varchar(100);not null" json:"invoice_created_by"`
	InvoiceUpdatedBy *string        `gorm:"column:invoice_updated_by;type:varchar(100)" json:"invoice_updated_by,omitempty"`
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;type:timestamptz;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;type:timestamptz;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;type:timestamptz;index" json:"-"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

/* ==============================
   STATE MACHINE
============================== */

// OutstandingAmount = total - paid, never negative.
func (m *InvoiceModel) OutstandingAmount() decimal.Decimal {
	out := m.InvoiceTotalAmount.Sub(m.InvoicePaidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// ApplySettlement increases paid amount and recomputes status. The paid
// amount never decreases; callers must have validated the amount against
// OutstandingAmount inside the same unit of work that loaded the invoice.
func (m *InvoiceModel) ApplySettlement(amount decimal.Decimal) InvoiceStatus {
	m.InvoicePaidAmount = m.InvoicePaidAmount.Add(amount)
	if m.InvoicePaidAmount.GreaterThanOrEqual(m.InvoiceTotalAmount) {
		m.InvoiceStatus = InvoiceStatusPaid
	} else {
		m.InvoiceStatus = InvoiceStatusPartiallyPaid
	}
	return m.InvoiceStatus
}
