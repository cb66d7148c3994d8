// file: internals/features/masterdata/patients/model/patient_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientModel struct {
	// PK
	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"patient_id"`

	// Tenant
	PatientFacilityID uuid.UUID `gorm:"column:patient_facility_id;type:uuid;not null;index" json:"patient_facility_id"`

	// Business code (PAT-YYYYMMDD-XXXXXXXX)
	PatientCode string `gorm:"column:patient_code;type:varchar(30);not null;uniqueIndex" json:"patient_code"`

	PatientFirstName  string  `gorm:"column:patient_first_name;type:varchar(100);not null" json:"patient_first_name"`
	PatientLastName   string  `gorm:"column:patient_last_name;type:varchar(100);not null" json:"patient_last_name"`
	PatientMiddleName *string `gorm:"column:patient_middle_name;type:varchar(100)" json:"patient_middle_name,omitempty"`

	PatientPhone       *string    `gorm:"column:patient_phone;type:varchar(30)" json:"patient_phone,omitempty"`
	PatientEmail       *string    `gorm:"column:patient_email;type:varchar(150)" json:"patient_email,omitempty"`
	PatientDateOfBirth *time.Time `gorm:"column:patient_date_of_birth;type:date" json:"patient_date_of_birth,omitempty"`
	PatientGender      *string    `gorm:"column:patient_gender;type:varchar(10)" json:"patient_gender,omitempty"`
	PatientAddress     *string    `gorm:"column:patient_address;type:text" json:"patient_address,omitempty"`

	// Audit
	PatientCreatedBy string         `gorm:"column:patient_created_by;type:varchar(100);not null" json:"patient_created_by"`
	PatientCreatedAt time.Time      `gorm:"column:patient_created_at;type:timestamptz;not null;default:now()" json:"patient_created_at"`
	PatientUpdatedAt time.Time      `gorm:"column:patient_updated_at;type:timestamptz;not null;default:now()" json:"patient_updated_at"`
	PatientDeletedAt gorm.DeletedAt `gorm:"column:patient_deleted_at;type:timestamptz;index" json:"-"`
}

func (PatientModel) TableName() string { return "patients" }

func (m *PatientModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PatientCreatedAt.IsZero() {
		m.PatientCreatedAt = now
	}
	m.PatientUpdatedAt = now
	return nil
}

func (m *PatientModel) BeforeUpdate(tx *gorm.DB) error {
	m.PatientUpdatedAt = time.Now()
	return nil
}

func (m *PatientModel) FullName() string {
	parts := []string{m.PatientFirstName}
	if m.PatientMiddleName != nil && strings.TrimSpace(*m.PatientMiddleName) != "" {
		parts = append(parts, *m.PatientMiddleName)
	}
	parts = append(parts, m.PatientLastName)
	return strings.Join(parts, " ")
}
