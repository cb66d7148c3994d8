// file: internals/features/billing/dto/wallet_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/billing/model"
)

/* ======================= REQUESTS ======================= */

type TopUpWalletRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference *string         `json:"reference"`
}

/* ======================= RESPONSES ======================= */

type WalletTransactionResponse struct {
	WalletTransactionID uuid.UUID                   `json:"wallet_transaction_id"`
	Amount              decimal.Decimal             `json:"amount"`
	TransactionType     model.WalletTransactionType `json:"transaction_type"`
	Description         string                      `json:"description"`
	Reference           *string                     `json:"reference,omitempty"`
	BalanceBefore       decimal.Decimal             `json:"balance_before"`
	BalanceAfter        decimal.Decimal             `json:"balance_after"`
	CreatedAt           time.Time                   `json:"created_at"`
}

type WalletResponse struct {
	WalletID     uuid.UUID                   `json:"wallet_id"`
	PatientID    uuid.UUID                   `json:"patient_id"`
	Balance      decimal.Decimal             `json:"balance"`
	Currency     string                      `json:"currency"`
	Transactions []WalletTransactionResponse `json:"transactions,omitempty"`
}

func FromWalletTransactionModel(m model.WalletTransactionModel) WalletTransactionResponse {
	return WalletTransactionResponse{
		WalletTransactionID: m.WalletTransactionID,
		Amount:              m.WalletTransactionAmount,
		TransactionType:     m.WalletTransactionType,
		Description:         m.WalletTransactionDescription,
		Reference:           m.WalletTransactionReference,
		BalanceBefore:       m.WalletTransactionBalanceBefore,
		BalanceAfter:        m.WalletTransactionBalanceAfter,
		CreatedAt:           m.WalletTransactionCreatedAt,
	}
}

func FromWalletModel(w model.PatientWalletModel, entries []model.WalletTransactionModel) WalletResponse {
	resp := WalletResponse{
		WalletID:  w.WalletID,
		PatientID: w.WalletPatientID,
		Balance:   w.WalletBalance,
		Currency:  w.WalletCurrency,
	}
	for _, e := range entries {
		resp.Transactions = append(resp.Transactions, FromWalletTransactionModel(e))
	}
	return resp
}
