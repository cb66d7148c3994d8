// file: internals/features/billing/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS — method & status
============================== */

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodInsurance    PaymentMethod = "insurance"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodWallet, PaymentMethodInsurance:
		return true
	}
	return false
}

type PaymentStatus string

const (
	// Success path only: a failed settlement attempt produces no record.
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

/* ==============================
   MODEL — created once, never mutated
============================== */

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// Human-readable unique reference (PAY-YYYYMMDD-XXXXXXXX)
	PaymentReference string `gorm:"column:payment_reference;type:varchar(30);not null;uniqueIndex" json:"payment_reference"`

	// FK -> invoices(invoice_id)
	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	PaymentAmount   decimal.Decimal `gorm:"column:payment_amount;type:numeric(18,2);not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentCurrency string          `gorm:"column:payment_currency;type:varchar(3);not null" json:"payment_currency"`
	PaymentMethod   PaymentMethod   `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus   PaymentStatus   `gorm:"column:payment_status;type:varchar(20);not null;default:'completed'" json:"payment_status"`
	PaymentDate     time.Time       `gorm:"column:payment_date;type:timestamptz;not null;default:now();index" json:"payment_date"`

	// Opaque gateway pass-through; no external gateway integration here.
	PaymentTransactionID *string `gorm:"column:payment_transaction_id;type:varchar(100)" json:"payment_transaction_id,omitempty"`
	PaymentNotes         *string `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`

	// Actor who processed the settlement
	PaymentProcessedByUserID uuid.UUID `gorm:"column:payment_processed_by_user_id;type:uuid;not null" json:"payment_processed_by_user_id"`

	// Audit
	PaymentCreatedBy string         `gorm:"column:payment_created_by;type:varchar(100);not null" json:"payment_created_by"`
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;not null;default:now()" json:"payment_created_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;type:timestamptz;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = time.Now()
	}
	if m.PaymentDate.IsZero() {
		m.PaymentDate = m.PaymentCreatedAt
	}
	return nil
}
