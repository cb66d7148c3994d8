// file: internals/features/billing/model/patient_wallet_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PatientWalletModel is owned 1:1 by a patient. The balance is mutated only
// through ledger operations and is never allowed to go negative.
type PatientWalletModel struct {
	// PK
	WalletID uuid.UUID `gorm:"column:wallet_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"wallet_id"`

	// 1:1 owner
	WalletPatientID  uuid.UUID `gorm:"column:wallet_patient_id;type:uuid;not null;uniqueIndex" json:"wallet_patient_id"`
	WalletFacilityID uuid.UUID `gorm:"column:wallet_facility_id;type:uuid;not null;index" json:"wallet_facility_id"`

	WalletBalance  decimal.Decimal `gorm:"column:wallet_balance;type:numeric(18,2);not null;default:0;check:wallet_balance >= 0" json:"wallet_balance"`
	WalletCurrency string          `gorm:"column:wallet_currency;type:varchar(3);not null" json:"wallet_currency"`

	// Audit
	WalletCreatedBy string         `gorm:"column:wallet_created_by;type:varchar(100);not null" json:"wallet_created_by"`
	WalletCreatedAt time.Time      `gorm:"column:wallet_created_at;type:timestamptz;not null;default:now()" json:"wallet_created_at"`
	WalletUpdatedAt time.Time      `gorm:"column:wallet_updated_at;type:timestamptz;not null;default:now()" json:"wallet_updated_at"`
	WalletDeletedAt gorm.DeletedAt `gorm:"column:wallet_deleted_at;type:timestamptz;index" json:"-"`
}

func (PatientWalletModel) TableName() string { return "patient_wallets" }

func (m *PatientWalletModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.WalletCreatedAt.IsZero() {
		m.WalletCreatedAt = now
	}
	m.WalletUpdatedAt = now
	return nil
}

func (m *PatientWalletModel) BeforeUpdate(tx *gorm.DB) error {
	m.WalletUpdatedAt = time.Now()
	return nil
}
