// file: internals/features/masterdata/appointments/model/appointment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — appointment workflow status
============================== */

type AppointmentStatus string

const (
	AppointmentStatusScheduled       AppointmentStatus = "scheduled"
	AppointmentStatusCheckedIn       AppointmentStatus = "checked_in"
	AppointmentStatusAwaitingPayment AppointmentStatus = "awaiting_payment"
	AppointmentStatusAwaitingVitals  AppointmentStatus = "awaiting_vitals"
	AppointmentStatusInProgress      AppointmentStatus = "in_progress"
	AppointmentStatusCompleted       AppointmentStatus = "completed"
	AppointmentStatusCancelled       AppointmentStatus = "cancelled"
	AppointmentStatusNoShow          AppointmentStatus = "no_show"
)

/* ==============================
   MODEL
============================== */

type AppointmentModel struct {
	// PK
	AppointmentID uuid.UUID `gorm:"column:appointment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"appointment_id"`

	// Tenant & patient
	AppointmentFacilityID uuid.UUID `gorm:"column:appointment_facility_id;type:uuid;not null;index" json:"appointment_facility_id"`
	AppointmentPatientID  uuid.UUID `gorm:"column:appointment_patient_id;type:uuid;not null;index" json:"appointment_patient_id"`

	AppointmentNumber      string            `gorm:"column:appointment_number;type:varchar(30);not null;uniqueIndex" json:"appointment_number"`
	AppointmentScheduledAt time.Time         `gorm:"column:appointment_scheduled_at;type:timestamptz;not null;index" json:"appointment_scheduled_at"`
	AppointmentStatus      AppointmentStatus `gorm:"column:appointment_status;type:varchar(20);not null;default:'scheduled';index" json:"appointment_status"`
	AppointmentReason      *string           `gorm:"column:appointment_reason;type:text" json:"appointment_reason,omitempty"`
	AppointmentNotes       *string           `gorm:"column:appointment_notes;type:text" json:"appointment_notes,omitempty"`

	// Audit
	AppointmentCreatedBy string         `gorm:"column:appointment_created_by;type:varchar(100);not null" json:"appointment_created_by"`
	AppointmentUpdatedBy *string        `gorm:"column:appointment_updated_by;type:varchar(100)" json:"appointment_updated_by,omitempty"`
	AppointmentCreatedAt time.Time      `gorm:"column:appointment_created_at;type:timestamptz;not null;default:now()" json:"appointment_created_at"`
	AppointmentUpdatedAt time.Time      `gorm:"column:appointment_updated_at;type:timestamptz;not null;default:now()" json:"appointment_updated_at"`
	AppointmentDeletedAt gorm.DeletedAt `gorm:"column:appointment_deleted_at;type:timestamptz;index" json:"-"`
}

func (AppointmentModel) TableName() string { return "appointments" }

func (m *AppointmentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AppointmentCreatedAt.IsZero() {
		m.AppointmentCreatedAt = now
	}
	m.AppointmentUpdatedAt = now
	return nil
}

func (m *AppointmentModel) BeforeUpdate(tx *gorm.DB) error {
	m.AppointmentUpdatedAt = time.Now()
	return nil
}
