// file: internals/features/masterdata/patients/dto/patient_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/masterdata/patients/model"
)

/* ======================= REQUESTS ======================= */

type CreatePatientRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	MiddleName  *string         `json:"middle_name" validate:"omitempty,max=100"`
	Phone       *string         `json:"phone" validate:"omitempty,max=30"`
	Email       *string         `json:"email" validate:"omitempty,email,max=150"`
	DateOfBirth *time.Time      `json:"date_of_birth"`
	Gender      *string         `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     *string         `json:"address"`
	// Optional opening wallet balance, recorded as a TOP_UP ledger entry.
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

/* ======================= RESPONSES ======================= */

type PatientResponse struct {
	PatientID   uuid.UUID  `json:"patient_id"`
	PatientCode string     `json:"patient_code"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	MiddleName  *string    `json:"middle_name,omitempty"`
	FullName    string     `json:"full_name"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	Address     *string    `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromPatientModel(m model.PatientModel) PatientResponse {
	return PatientResponse{
		PatientID:   m.PatientID,
		PatientCode: m.PatientCode,
		FirstName:   m.PatientFirstName,
		LastName:    m.PatientLastName,
		MiddleName:  m.PatientMiddleName,
		FullName:    m.FullName(),
		Phone:       m.PatientPhone,
		Email:       m.PatientEmail,
		DateOfBirth: m.PatientDateOfBirth,
		Gender:      m.PatientGender,
		Address:     m.PatientAddress,
		CreatedAt:   m.PatientCreatedAt,
	}
}

func FromPatientModels(rows []model.PatientModel) []PatientResponse {
	out := make([]PatientResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromPatientModel(m))
	}
	return out
}
