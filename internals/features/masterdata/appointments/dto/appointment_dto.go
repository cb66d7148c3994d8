// file: internals/features/masterdata/appointments/dto/appointment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "centralhealth_backend/internals/features/masterdata/appointments/model"
)

/* ======================= REQUESTS ======================= */

type CreateAppointmentRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Reason      *string   `json:"reason"`
	Notes       *string   `json:"notes"`
}

/* ======================= RESPONSES ======================= */

type AppointmentResponse struct {
	AppointmentID     uuid.UUID               `json:"appointment_id"`
	AppointmentNumber string                  `json:"appointment_number"`
	PatientID         uuid.UUID               `json:"patient_id"`
	ScheduledAt       time.Time               `json:"scheduled_at"`
	Status            model.AppointmentStatus `json:"status"`
	Reason            *string                 `json:"reason,omitempty"`
	Notes             *string                 `json:"notes,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

func FromAppointmentModel(m model.AppointmentModel) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID:     m.AppointmentID,
		AppointmentNumber: m.AppointmentNumber,
		PatientID:         m.AppointmentPatientID,
		ScheduledAt:       m.AppointmentScheduledAt,
		Status:            m.AppointmentStatus,
		Reason:            m.AppointmentReason,
		Notes:             m.AppointmentNotes,
		CreatedAt:         m.AppointmentCreatedAt,
	}
}

func FromAppointmentModels(rows []model.AppointmentModel) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromAppointmentModel(m))
	}
	return out
}
