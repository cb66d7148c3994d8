// file: internals/features/billing/service/wallet_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	model "centralhealth_backend/internals/features/billing/model"
)

// WalletService handles the wallet operations that are not part of a
// settlement: top-ups and balance/history reads.
type WalletService struct {
	store  Store
	ledger Ledger
	log    *zap.Logger
}

func NewWalletService(store Store, log *zap.Logger) *WalletService {
	return &WalletService{store: store, log: log}
}

// TopUp credits the patient's wallet and appends the TOP_UP ledger entry in
// one unit of work.
func (s *WalletService) TopUp(ctx context.Context, actor Actor, patientID uuid.UUID, amount decimal.Decimal, reference *string) (*model.WalletTransactionModel, error) {
	if !amount.IsPositive() {
		return nil, InvalidAmount("Top-up amount must be greater than 0")
	}

	var entry *model.WalletTransactionModel
	err := s.store.ExecTx(ctx, func(r Repo) error {
		if _, err := r.PatientByID(ctx, actor.FacilityID, patientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Patient not found")
			}
			return err
		}
		wallet, err := r.WalletForPatient(ctx, patientID, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Wallet not found")
			}
			return err
		}

		e, err := s.ledger.Credit(wallet, amount, "Wallet top-up", reference, actor)
		if err != nil {
			return err
		}
		if err := r.SaveWallet(ctx, wallet); err != nil {
			return err
		}
		if err := r.AppendWalletTransaction(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		var typed *Error
		if errors.As(err, &typed) {
			return nil, typed
		}
		s.log.Error("wallet top-up failed",
			zap.String("patient_id", patientID.String()),
			zap.String("amount", amount.StringFixed(2)),
			zap.String("actor", actor.UserName),
			zap.Error(err))
		return nil, OperationFailed("An error occurred while topping up the wallet")
	}

	s.log.Info("wallet topped up",
		zap.String("patient_id", patientID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("actor", actor.UserName))
	return entry, nil
}

// GetForPatient returns the wallet with its most recent ledger entries.
func (s *WalletService) GetForPatient(ctx context.Context, actor Actor, patientID uuid.UUID, limit, offset int) (*model.PatientWalletModel, []model.WalletTransactionModel, int64, error) {
	if _, err := s.store.PatientByID(ctx, actor.FacilityID, patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, NotFound("Patient not found")
		}
		s.log.Error("patient lookup failed",
			zap.String("patient_id", patientID.String()), zap.Error(err))
		return nil, nil, 0, OperationFailed("An error occurred while retrieving the wallet")
	}
	wallet, err := s.store.WalletForPatient(ctx, patientID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, NotFound("Wallet not found")
		}
		s.log.Error("wallet lookup failed",
			zap.String("patient_id", patientID.String()), zap.Error(err))
		return nil, nil, 0, OperationFailed("An error occurred while retrieving the wallet")
	}
	entries, total, err := s.store.WalletTransactions(ctx, wallet.WalletID, limit, offset)
	if err != nil {
		s.log.Error("wallet history lookup failed",
			zap.String("wallet_id", wallet.WalletID.String()), zap.Error(err))
		return nil, nil, 0, OperationFailed("An error occurred while retrieving the wallet")
	}
	return wallet, entries, total, nil
}
