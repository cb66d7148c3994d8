// file: internals/features/billing/service/invoice_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "centralhealth_backend/internals/features/billing/dto"
	model "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
)

// refRetryAttempts bounds retry-on-collision for the random-suffix
// invoice/payment references.
const refRetryAttempts = 3

var oneHundred = decimal.NewFromInt(100)

type InvoiceService struct {
	store    Store
	log      *zap.Logger
	currency string
}

func NewInvoiceService(store Store, log *zap.Logger, currency string) *InvoiceService {
	return &InvoiceService{store: store, log: log, currency: currency}
}

/* ======================= CREATE (invoice builder) ======================= */

// Create builds a new invoice in pending status with its items frozen at
// creation time. When the linked appointment is checked in, it advances to
// awaiting payment inside the same unit of work.
func (s *InvoiceService) Create(ctx context.Context, actor Actor, req dto.CreateInvoiceRequest) (*model.InvoiceModel, error) {
	if len(req.Items) == 0 {
		return nil, InvalidAmount("At least one item is required")
	}
	if req.DiscountPercentage.IsNegative() || req.DiscountPercentage.GreaterThan(oneHundred) {
		return nil, InvalidAmount("Discount percentage must be between 0 and 100")
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, InvalidAmount("Quantity must be greater than 0")
		}
		if it.UnitPrice.IsNegative() {
			return nil, InvalidAmount("Unit price cannot be negative")
		}
		if it.DiscountAmount.IsNegative() {
			return nil, InvalidAmount("Discount amount cannot be negative")
		}
	}

	var created *model.InvoiceModel
	err := s.store.ExecTx(ctx, func(r Repo) error {
		if _, err := r.PatientByID(ctx, actor.FacilityID, req.PatientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Patient not found")
			}
			return err
		}

		var appointment *apptModel.AppointmentModel
		if req.AppointmentID != nil {
			appt, err := r.AppointmentByID(ctx, actor.FacilityID, *req.AppointmentID, true)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFound("Appointment not found")
				}
				return err
			}
			appointment = appt
		}

		now := time.Now()
		due := now.Add(30 * 24 * time.Hour)
		inv := &model.InvoiceModel{
			InvoiceID:                 uuid.New(),
			InvoiceFacilityID:         actor.FacilityID,
			InvoicePatientID:          req.PatientID,
			InvoiceAppointmentID:      req.AppointmentID,
			InvoiceDate:               now,
			InvoiceDueDate:            &due,
			InvoiceDiscountPercentage: req.DiscountPercentage,
			InvoiceCurrency:           s.currency,
			InvoiceStatus:             model.InvoiceStatusPending,
			InvoiceNotes:              req.Notes,
			InvoiceCreatedBy:          actor.UserName,
		}

		subtotal := decimal.Zero
		for _, itemReq := range req.Items {
			description := itemReq.Description
			if itemReq.MedicalServiceID != nil {
				svc, err := r.MedicalServiceByID(ctx, actor.FacilityID, *itemReq.MedicalServiceID)
				if err == nil {
					description = svc.MedicalServiceName
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}

			itemTotal := itemReq.UnitPrice.
				Mul(decimal.NewFromInt(int64(itemReq.Quantity))).
				Sub(itemReq.DiscountAmount)

			inv.InvoiceItems = append(inv.InvoiceItems, model.InvoiceItemModel{
				InvoiceItemID:               uuid.New(),
				InvoiceItemInvoiceID:        inv.InvoiceID,
				InvoiceItemMedicalServiceID: itemReq.MedicalServiceID,
				InvoiceItemDescription:      description,
				InvoiceItemQuantity:         itemReq.Quantity,
				InvoiceItemUnitPrice:        itemReq.UnitPrice,
				InvoiceItemDiscountAmount:   itemReq.DiscountAmount,
				InvoiceItemTotalPrice:       itemTotal,
				InvoiceItemCreatedBy:        actor.UserName,
			})
			subtotal = subtotal.Add(itemTotal)
		}

		inv.InvoiceSubtotal = subtotal
		inv.InvoiceDiscountAmount = subtotal.Mul(req.DiscountPercentage).Div(oneHundred).Round(2)
		inv.InvoiceTotalAmount = subtotal.Sub(inv.InvoiceDiscountAmount)

		if err := createWithRefRetry(func() error {
			inv.InvoiceNumber = GenerateInvoiceNumber()
			return r.CreateInvoice(ctx, inv)
		}); err != nil {
			return err
		}

		if appointment != nil && appointment.AppointmentStatus == apptModel.AppointmentStatusCheckedIn {
			appointment.AppointmentStatus = apptModel.AppointmentStatusAwaitingPayment
			appointment.AppointmentUpdatedBy = &actor.UserName
			if err := r.SaveAppointment(ctx, appointment); err != nil {
				return err
			}
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, s.failure(err, "An error occurred while creating the invoice",
			zap.String("patient_id", req.PatientID.String()),
			zap.String("facility_id", actor.FacilityID.String()),
			zap.String("actor", actor.UserName))
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", created.InvoiceID.String()),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("total_amount", created.InvoiceTotalAmount.StringFixed(2)),
		zap.String("actor", actor.UserName))
	return created, nil
}

/* ======================= READS ======================= */

func (s *InvoiceService) GetByID(ctx context.Context, actor Actor, invoiceID uuid.UUID) (*model.InvoiceModel, []model.PaymentModel, error) {
	inv, err := s.store.InvoiceByID(ctx, actor.FacilityID, invoiceID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFound("Invoice not found")
		}
		return nil, nil, s.failure(err, "An error occurred while retrieving the invoice",
			zap.String("invoice_id", invoiceID.String()))
	}
	payments, err := s.store.PaymentsForInvoice(ctx, invoiceID)
	if err != nil {
		return nil, nil, s.failure(err, "An error occurred while retrieving the invoice",
			zap.String("invoice_id", invoiceID.String()))
	}
	return inv, payments, nil
}

func (s *InvoiceService) List(ctx context.Context, actor Actor, filter InvoiceFilter) ([]model.InvoiceModel, int64, error) {
	rows, total, err := s.store.ListInvoices(ctx, actor.FacilityID, filter)
	if err != nil {
		return nil, 0, s.failure(err, "An error occurred while retrieving invoices",
			zap.String("facility_id", actor.FacilityID.String()))
	}
	return rows, total, nil
}

/* ======================= CANCEL ======================= */

// Cancel moves an invoice to cancelled. Payments and ledger entries already
// applied are intentionally left untouched; refunds are a separate manual
// process.
func (s *InvoiceService) Cancel(ctx context.Context, actor Actor, invoiceID uuid.UUID) error {
	err := s.store.ExecTx(ctx, func(r Repo) error {
		inv, err := r.InvoiceByID(ctx, actor.FacilityID, invoiceID, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Invoice not found")
			}
			return err
		}
		switch inv.InvoiceStatus {
		case model.InvoiceStatusPaid:
			return InvalidState("Cannot cancel a paid invoice")
		case model.InvoiceStatusCancelled:
			return InvalidState("Invoice is already cancelled")
		}
		inv.InvoiceStatus = model.InvoiceStatusCancelled
		inv.InvoiceUpdatedBy = &actor.UserName
		return r.SaveInvoice(ctx, inv)
	})
	if err != nil {
		return s.failure(err, "An error occurred while cancelling the invoice",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("actor", actor.UserName))
	}

	s.log.Info("invoice cancelled",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("actor", actor.UserName))
	return nil
}

/* ======================= HELPERS ======================= */

// failure passes typed engine errors through untouched; anything else is
// logged with context here (the engine boundary) and replaced by a generic
// OperationFailed so internal detail never reaches the caller.
func (s *InvoiceService) failure(err error, msg string, fields ...zap.Field) error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	s.log.Error(msg, append(fields, zap.Error(err))...)
	return OperationFailed(msg)
}

// createWithRefRetry re-runs the insert with a freshly generated reference
// when the unique constraint rejects the previous one.
func createWithRefRetry(insert func() error) error {
	var err error
	for attempt := 0; attempt < refRetryAttempts; attempt++ {
		if err = insert(); !errors.Is(err, ErrDuplicateReference) {
			return err
		}
	}
	return err
}
