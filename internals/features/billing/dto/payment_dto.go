// file: internals/features/billing/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/billing/model"
)

/* ======================= REQUESTS ======================= */

type ProcessPaymentRequest struct {
	InvoiceID     uuid.UUID           `json:"invoice_id" validate:"required"`
	Amount        decimal.Decimal     `json:"amount"`
	Method        model.PaymentMethod `json:"method" validate:"required,oneof=cash card bank_transfer wallet insurance"`
	TransactionID *string             `json:"transaction_id"`
	Notes         *string             `json:"notes"`
}

/* ======================= RESPONSES ======================= */

type PaymentResponse struct {
	PaymentID        uuid.UUID           `json:"payment_id"`
	PaymentReference string              `json:"payment_reference"`
	InvoiceID        uuid.UUID           `json:"invoice_id"`
	Amount           decimal.Decimal     `json:"amount"`
	Currency         string              `json:"currency"`
	Method           model.PaymentMethod `json:"method"`
	Status           model.PaymentStatus `json:"status"`
	PaymentDate      time.Time           `json:"payment_date"`
	TransactionID    *string             `json:"transaction_id,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

func FromPaymentModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentReference: m.PaymentReference,
		InvoiceID:        m.PaymentInvoiceID,
		Amount:           m.PaymentAmount,
		Currency:         m.PaymentCurrency,
		Method:           m.PaymentMethod,
		Status:           m.PaymentStatus,
		PaymentDate:      m.PaymentDate,
		TransactionID:    m.PaymentTransactionID,
		Notes:            m.PaymentNotes,
	}
}

func FromPaymentModels(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromPaymentModel(m))
	}
	return out
}
