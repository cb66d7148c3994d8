// file: internals/features/billing/model/wallet_transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — transaction type
============================== */

type WalletTransactionType string

const (
	WalletTransactionTypeTopUp   WalletTransactionType = "TOP_UP"
	WalletTransactionTypePayment WalletTransactionType = "PAYMENT"
)

/* ==============================
   MODEL — append-only audit trail
============================== */

// WalletTransactionModel records every balance change with a before/after
// snapshot. Rows are never updated or deleted; balance_after must always
// equal balance_before + amount (amount is signed: credit +, debit -).
type WalletTransactionModel struct {
	// PK
	WalletTransactionID uuid.UUID `gorm:"column:wallet_transaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"wallet_transaction_id"`

	// FK -> patient_wallets(wallet_id)
	WalletTransactionWalletID uuid.UUID `gorm:"column:wallet_transaction_wallet_id;type:uuid;not null;index" json:"wallet_transaction_wallet_id"`

	WalletTransactionAmount        decimal.Decimal       `gorm:"column:wallet_transaction_amount;type:numeric(18,2);not null" json:"wallet_transaction_amount"`
	WalletTransactionType          WalletTransactionType `gorm:"column:wallet_transaction_type;type:varchar(20);not null;index" json:"wallet_transaction_type"`
	WalletTransactionDescription   string                `gorm:"column:wallet_transaction_description;type:varchar(255);not null" json:"wallet_transaction_description"`
	WalletTransactionReference     *string               `gorm:"column:wallet_transaction_reference;type:varchar(100)" json:"wallet_transaction_reference,omitempty"`
	WalletTransactionBalanceBefore decimal.Decimal       `gorm:"column:wallet_transaction_balance_before;type:numeric(18,2);not null" json:"wallet_transaction_balance_before"`
	WalletTransactionBalanceAfter  decimal.Decimal       `gorm:"column:wallet_transaction_balance_after;type:numeric(18,2);not null" json:"wallet_transaction_balance_after"`

	// Audit (no updated_at: rows are immutable)
	WalletTransactionCreatedBy string    `gorm:"column:wallet_transaction_created_by;type:varchar(100);not null" json:"wallet_transaction_created_by"`
	WalletTransactionCreatedAt time.Time `gorm:"column:wallet_transaction_created_at;type:timestamptz;not null;default:now();index" json:"wallet_transaction_created_at"`
}

func (WalletTransactionModel) TableName() string { return "wallet_transactions" }

func (m *WalletTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.WalletTransactionCreatedAt.IsZero() {
		m.WalletTransactionCreatedAt = time.Now()
	}
	return nil
}
