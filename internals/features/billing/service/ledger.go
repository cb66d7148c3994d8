// file: internals/features/billing/service/ledger.go
package service

import (
	"time"

	"github.com/shopspring/decimal"

	model "centralhealth_backend/internals/features/billing/model"
)

// Ledger applies balance changes to an in-flight wallet and produces the
// matching append-only transaction entry. It holds no state across calls;
// persistence of both the wallet and the entry belongs to the caller's unit
// of work, so a rolled-back settlement leaves no trace of either.
type Ledger struct{}

// Debit decreases the wallet balance. Fails with InsufficientFunds when the
// balance cannot cover the amount; the wallet is left untouched in that case.
func (Ledger) Debit(w *model.PatientWalletModel, amount decimal.Decimal, description string, reference *string, actor Actor) (*model.WalletTransactionModel, error) {
	if !amount.IsPositive() {
		return nil, InvalidAmount("Debit amount must be greater than 0")
	}
	if w.WalletBalance.LessThan(amount) {
		return nil, InsufficientFunds("Insufficient wallet balance")
	}

	before := w.WalletBalance
	w.WalletBalance = w.WalletBalance.Sub(amount)

	return &model.WalletTransactionModel{
		WalletTransactionWalletID:      w.WalletID,
		WalletTransactionAmount:        amount.Neg(),
		WalletTransactionType:          model.WalletTransactionTypePayment,
		WalletTransactionDescription:   description,
		WalletTransactionReference:     reference,
		WalletTransactionBalanceBefore: before,
		WalletTransactionBalanceAfter:  w.WalletBalance,
		WalletTransactionCreatedBy:     actor.UserName,
		WalletTransactionCreatedAt:     time.Now(),
	}, nil
}

// Credit increases the wallet balance. Always succeeds for a positive amount.
func (Ledger) Credit(w *model.PatientWalletModel, amount decimal.Decimal, description string, reference *string, actor Actor) (*model.WalletTransactionModel, error) {
	if !amount.IsPositive() {
		return nil, InvalidAmount("Credit amount must be greater than 0")
	}

	before := w.WalletBalance
	w.WalletBalance = w.WalletBalance.Add(amount)

	return &model.WalletTransactionModel{
		WalletTransactionWalletID:      w.WalletID,
		WalletTransactionAmount:        amount,
		WalletTransactionType:          model.WalletTransactionTypeTopUp,
		WalletTransactionDescription:   description,
		WalletTransactionReference:     reference,
		WalletTransactionBalanceBefore: before,
		WalletTransactionBalanceAfter:  w.WalletBalance,
		WalletTransactionCreatedBy:     actor.UserName,
		WalletTransactionCreatedAt:     time.Now(),
	}, nil
}
