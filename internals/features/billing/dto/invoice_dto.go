// file: internals/features/billing/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/billing/model"
)

/* ======================= REQUESTS ======================= */

type CreateInvoiceItemRequest struct {
	MedicalServiceID *uuid.UUID      `json:"medical_service_id"`
	Description      string          `json:"description" validate:"required,max=500"`
	Quantity         int             `json:"quantity" validate:"gt=0"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
}

type CreateInvoiceRequest struct {
	PatientID          uuid.UUID                  `json:"patient_id" validate:"required"`
	AppointmentID      *uuid.UUID                 `json:"appointment_id"`
	DiscountPercentage decimal.Decimal            `json:"discount_percentage"`
	Notes              *string                    `json:"notes"`
	Items              []CreateInvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ListInvoicesQuery struct {
	PatientID *uuid.UUID `query:"patient_id"`
	Status    *string    `query:"status"`
	StartDate *time.Time `query:"start_date"`
	EndDate   *time.Time `query:"end_date"`
}

/* ======================= RESPONSES ======================= */

type InvoiceItemResponse struct {
	InvoiceItemID    uuid.UUID       `json:"invoice_item_id"`
	MedicalServiceID *uuid.UUID      `json:"medical_service_id,omitempty"`
	Description      string          `json:"description"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

type InvoiceResponse struct {
	InvoiceID          uuid.UUID             `json:"invoice_id"`
	InvoiceNumber      string                `json:"invoice_number"`
	InvoiceDate        time.Time             `json:"invoice_date"`
	DueDate            *time.Time            `json:"due_date,omitempty"`
	PatientID          uuid.UUID             `json:"patient_id"`
	AppointmentID      *uuid.UUID            `json:"appointment_id,omitempty"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	DiscountPercentage decimal.Decimal       `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	PaidAmount         decimal.Decimal       `json:"paid_amount"`
	OutstandingAmount  decimal.Decimal       `json:"outstanding_amount"`
	Currency           string                `json:"currency"`
	Status             model.InvoiceStatus   `json:"status"`
	Notes              *string               `json:"notes,omitempty"`
	Items              []InvoiceItemResponse `json:"items"`
	Payments           []PaymentResponse     `json:"payments,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

func FromInvoiceItemModel(m model.InvoiceItemModel) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID:    m.InvoiceItemID,
		MedicalServiceID: m.InvoiceItemMedicalServiceID,
		Description:      m.InvoiceItemDescription,
		Quantity:         m.InvoiceItemQuantity,
		UnitPrice:        m.InvoiceItemUnitPrice,
		DiscountAmount:   m.InvoiceItemDiscountAmount,
		TotalPrice:       m.InvoiceItemTotalPrice,
	}
}

func FromInvoiceModel(m model.InvoiceModel, payments []model.PaymentModel) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(m.InvoiceItems))
	for _, it := range m.InvoiceItems {
		items = append(items, FromInvoiceItemModel(it))
	}
	resp := InvoiceResponse{
		InvoiceID:          m.InvoiceID,
		InvoiceNumber:      m.InvoiceNumber,
		InvoiceDate:        m.InvoiceDate,
		DueDate:            m.InvoiceDueDate,
		PatientID:          m.InvoicePatientID,
		AppointmentID:      m.InvoiceAppointmentID,
		Subtotal:           m.InvoiceSubtotal,
		DiscountPercentage: m.InvoiceDiscountPercentage,
		DiscountAmount:     m.InvoiceDiscountAmount,
		TotalAmount:        m.InvoiceTotalAmount,
		PaidAmount:         m.InvoicePaidAmount,
		OutstandingAmount:  m.OutstandingAmount(),
		Currency:           m.InvoiceCurrency,
		Status:             m.InvoiceStatus,
		Notes:              m.InvoiceNotes,
		Items:              items,
		CreatedAt:          m.InvoiceCreatedAt,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, FromPaymentModel(p))
	}
	return resp
}

func FromInvoiceModels(rows []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromInvoiceModel(m, nil))
	}
	return out
}
