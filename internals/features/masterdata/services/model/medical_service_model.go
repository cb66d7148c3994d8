// file: internals/features/masterdata/services/model/medical_service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MedicalServiceModel is the billable service catalog. The billing engine
// reads name and price only; catalog management stays here.
type MedicalServiceModel struct {
	// PK
	MedicalServiceID uuid.UUID `gorm:"column:medical_service_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"medical_service_id"`

	// Tenant
	MedicalServiceFacilityID uuid.UUID `gorm:"column:medical_service_facility_id;type:uuid;not null;index" json:"medical_service_facility_id"`

	MedicalServiceCode  string          `gorm:"column:medical_service_code;type:varchar(30);not null;uniqueIndex" json:"medical_service_code"`
	MedicalServiceName  string          `gorm:"column:medical_service_name;type:varchar(200);not null" json:"medical_service_name"`
	MedicalServicePrice decimal.Decimal `gorm:"column:medical_service_price;type:numeric(18,2);not null;check:medical_service_price >= 0" json:"medical_service_price"`

	MedicalServiceTags     pq.StringArray `gorm:"column:medical_service_tags;type:text[]" json:"medical_service_tags,omitempty"`
	MedicalServiceIsActive bool           `gorm:"column:medical_service_is_active;not null;default:true;index" json:"medical_service_is_active"`

	// Audit
	MedicalServiceCreatedBy string         `gorm:"column:medical_service_created_by;type:varchar(100);not null" json:"medical_service_created_by"`
	MedicalServiceCreatedAt time.Time      `gorm:"column:medical_service_created_at;type:timestamptz;not null;default:now()" json:"medical_service_created_at"`
	MedicalServiceUpdatedAt time.Time      `gorm:"column:medical_service_updated_at;type:timestamptz;not null;default:now()" json:"medical_service_updated_at"`
	MedicalServiceDeletedAt gorm.DeletedAt `gorm:"column:medical_service_deleted_at;type:timestamptz;index" json:"-"`
}

func (MedicalServiceModel) TableName() string { return "medical_services" }

func (m *MedicalServiceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.MedicalServiceCreatedAt.IsZero() {
		m.MedicalServiceCreatedAt = now
	}
	m.MedicalServiceUpdatedAt = now
	return nil
}

func (m *MedicalServiceModel) BeforeUpdate(tx *gorm.DB) error {
	m.MedicalServiceUpdatedAt = time.Now()
	return nil
}
