// file: internals/features/masterdata/services/dto/medical_service_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/masterdata/services/model"
)

/* ======================= REQUESTS ======================= */

type CreateMedicalServiceRequest struct {
	Code  string          `json:"code" validate:"required,max=30"`
	Name  string          `json:"name" validate:"required,max=200"`
	Price decimal.Decimal `json:"price"`
	Tags  []string        `json:"tags"`
}

type UpdateMedicalServiceRequest struct {
	Name     *string          `json:"name" validate:"omitempty,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Tags     []string         `json:"tags"`
	IsActive *bool            `json:"is_active"`
}

/* ======================= RESPONSES ======================= */

type MedicalServiceResponse struct {
	MedicalServiceID uuid.UUID       `json:"medical_service_id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Tags             []string        `json:"tags,omitempty"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

func FromMedicalServiceModel(m model.MedicalServiceModel) MedicalServiceResponse {
	return MedicalServiceResponse{
		MedicalServiceID: m.MedicalServiceID,
		Code:             m.MedicalServiceCode,
		Name:             m.MedicalServiceName,
		Price:            m.MedicalServicePrice,
		Tags:             m.MedicalServiceTags,
		IsActive:         m.MedicalServiceIsActive,
		CreatedAt:        m.MedicalServiceCreatedAt,
	}
}

func FromMedicalServiceModels(rows []model.MedicalServiceModel) []MedicalServiceResponse {
	out := make([]MedicalServiceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromMedicalServiceModel(m))
	}
	return out
}
