// file: internals/features/billing/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "centralhealth_backend/internals/features/billing/dto"
	model "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
)

// PaymentService is the settlement coordinator: it validates a payment
// request against the current invoice/wallet state, executes the ledger debit
// for wallet-funded payments, creates the payment record, advances invoice
// and appointment state, and commits all of it atomically.
type PaymentService struct {
	store  Store
	ledger Ledger
	log    *zap.Logger
}

func NewPaymentService(store Store, log *zap.Logger) *PaymentService {
	return &PaymentService{store: store, log: log}
}

/* ======================= PROCESS (settlement) ======================= */

// Process applies one payment to an invoice. The invoice row (and the wallet
// row, for wallet-funded payments) is locked FOR UPDATE from load to commit,
// so two concurrent attempts against the same invoice serialize and the
// second revalidates against the committed outstanding amount. Any failure
// rolls the whole unit of work back; no partial write is ever observable.
func (s *PaymentService) Process(ctx context.Context, actor Actor, req dto.ProcessPaymentRequest) (*model.PaymentModel, error) {
	// Backstop behind the transport-level oneof validation; an unknown
	// method is a request-shape problem, not a money problem.
	if !req.Method.Valid() {
		return nil, InvalidState("Invalid payment method")
	}

	var payment *model.PaymentModel
	err := s.store.ExecTx(ctx, func(r Repo) error {
		inv, err := r.InvoiceByID(ctx, actor.FacilityID, req.InvoiceID, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Invoice not found")
			}
			return err
		}

		if inv.InvoiceStatus == model.InvoiceStatusPaid {
			return InvalidState("Invoice is already paid")
		}
		if inv.InvoiceStatus == model.InvoiceStatusCancelled {
			return InvalidState("Cannot process payment for a cancelled invoice")
		}
		if !inv.InvoiceStatus.CanAcceptPayment() {
			return InvalidState(fmt.Sprintf("Invoice in status %s cannot accept payments", inv.InvoiceStatus))
		}

		if !req.Amount.IsPositive() {
			return InvalidAmount("Payment amount must be greater than 0")
		}
		outstanding := inv.OutstandingAmount()
		if req.Amount.GreaterThan(outstanding) {
			return InvalidAmount(fmt.Sprintf("Payment amount (%s) exceeds outstanding amount (%s)",
				req.Amount.StringFixed(2), outstanding.StringFixed(2)))
		}

		if req.Method == model.PaymentMethodWallet {
			if err := s.debitWallet(ctx, r, inv, req, actor); err != nil {
				return err
			}
		}

		payment = &model.PaymentModel{
			PaymentID:                uuid.New(),
			PaymentInvoiceID:         inv.InvoiceID,
			PaymentAmount:            req.Amount,
			PaymentCurrency:          inv.InvoiceCurrency,
			PaymentMethod:            req.Method,
			PaymentStatus:            model.PaymentStatusCompleted,
			PaymentDate:              time.Now(),
			PaymentTransactionID:     req.TransactionID,
			PaymentNotes:             req.Notes,
			PaymentProcessedByUserID: actor.UserID,
			PaymentCreatedBy:         actor.UserName,
		}
		if err := createWithRefRetry(func() error {
			payment.PaymentReference = GeneratePaymentReference()
			return r.CreatePayment(ctx, payment)
		}); err != nil {
			return err
		}

		newStatus := inv.ApplySettlement(req.Amount)
		inv.InvoiceUpdatedBy = &actor.UserName
		if err := r.SaveInvoice(ctx, inv); err != nil {
			return err
		}

		if newStatus == model.InvoiceStatusPaid && inv.InvoiceAppointmentID != nil {
			if err := s.advanceAppointment(ctx, r, inv, actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var typed *Error
		if errors.As(err, &typed) {
			return nil, typed
		}
		s.log.Error("payment processing failed",
			zap.String("invoice_id", req.InvoiceID.String()),
			zap.String("amount", req.Amount.StringFixed(2)),
			zap.String("method", string(req.Method)),
			zap.String("actor", actor.UserName),
			zap.Error(err))
		return nil, OperationFailed("An error occurred while processing the payment")
	}

	s.log.Info("payment processed",
		zap.String("payment_id", payment.PaymentID.String()),
		zap.String("payment_reference", payment.PaymentReference),
		zap.String("invoice_id", req.InvoiceID.String()),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("method", string(req.Method)),
		zap.String("actor", actor.UserName))
	return payment, nil
}

// debitWallet funds the payment from the patient's wallet. A missing wallet
// and an underfunded one surface the same error; callers must not be able to
// tell which it was.
func (s *PaymentService) debitWallet(ctx context.Context, r Repo, inv *model.InvoiceModel, req dto.ProcessPaymentRequest, actor Actor) error {
	wallet, err := r.WalletForPatient(ctx, inv.InvoicePatientID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InsufficientFunds("Insufficient wallet balance")
		}
		return err
	}

	entry, err := s.ledger.Debit(wallet, req.Amount,
		fmt.Sprintf("Payment for Invoice %s", inv.InvoiceNumber), req.TransactionID, actor)
	if err != nil {
		return err
	}
	if err := r.SaveWallet(ctx, wallet); err != nil {
		return err
	}
	return r.AppendWalletTransaction(ctx, entry)
}

// advanceAppointment couples full settlement to the clinical workflow:
// awaiting_payment moves to awaiting_vitals, any other status is left alone
// because the visit may have been progressed manually already.
func (s *PaymentService) advanceAppointment(ctx context.Context, r Repo, inv *model.InvoiceModel, actor Actor) error {
	appt, err := r.AppointmentByID(ctx, inv.InvoiceFacilityID, *inv.InvoiceAppointmentID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if appt.AppointmentStatus != apptModel.AppointmentStatusAwaitingPayment {
		return nil
	}
	appt.AppointmentStatus = apptModel.AppointmentStatusAwaitingVitals
	appt.AppointmentUpdatedBy = &actor.UserName
	if err := r.SaveAppointment(ctx, appt); err != nil {
		return err
	}
	s.log.Info("appointment advanced to awaiting_vitals",
		zap.String("appointment_id", appt.AppointmentID.String()),
		zap.String("invoice_id", inv.InvoiceID.String()))
	return nil
}

/* ======================= READS ======================= */

func (s *PaymentService) GetByID(ctx context.Context, actor Actor, paymentID uuid.UUID) (*model.PaymentModel, error) {
	p, err := s.store.PaymentByID(ctx, actor.FacilityID, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Payment not found")
		}
		s.log.Error("payment lookup failed",
			zap.String("payment_id", paymentID.String()), zap.Error(err))
		return nil, OperationFailed("An error occurred while retrieving the payment")
	}
	return p, nil
}

func (s *PaymentService) ListForInvoice(ctx context.Context, actor Actor, invoiceID uuid.UUID) ([]model.PaymentModel, error) {
	if _, err := s.store.InvoiceByID(ctx, actor.FacilityID, invoiceID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Invoice not found")
		}
		s.log.Error("invoice lookup failed",
			zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		return nil, OperationFailed("An error occurred while retrieving payments")
	}
	rows, err := s.store.PaymentsForInvoice(ctx, invoiceID)
	if err != nil {
		s.log.Error("payment list failed",
			zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		return nil, OperationFailed("An error occurred while retrieving payments")
	}
	return rows, nil
}
