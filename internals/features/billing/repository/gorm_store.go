// file: internals/features/billing/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	billingModel "centralhealth_backend/internals/features/billing/model"
	service "centralhealth_backend/internals/features/billing/service"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	svcModel "centralhealth_backend/internals/features/masterdata/services/model"
)

// GormStore implements service.Store on Postgres. Tenant scoping is an
// explicit WHERE on every query; soft-deleted rows are excluded by gorm's
// DeletedAt handling. Row locks (FOR UPDATE) back the pessimistic settlement
// contract.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ service.Store = (*GormStore)(nil)

// ExecTx runs fn inside one database transaction. The Repo handed to fn is
// bound to the transaction, so every read and write commits or rolls back as
// a unit; context cancellation aborts at the next statement and rolls back.
func (s *GormStore) ExecTx(ctx context.Context, fn func(service.Repo) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

/* ======================= INVOICES ======================= */

func (s *GormStore) InvoiceByID(ctx context.Context, facilityID, invoiceID uuid.UUID, forUpdate bool) (*billingModel.InvoiceModel, error) {
	q := s.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var inv billingModel.InvoiceModel
	if err := q.
		Preload("InvoiceItems").
		Where("invoice_id = ? AND invoice_facility_id = ?", invoiceID, facilityID).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice inserts inside a nested transaction, which GORM issues as a
// savepoint when a transaction is already open. A unique violation on the
// invoice number then aborts only the savepoint scope; the surrounding
// transaction stays usable for a retry with a fresh reference.
func (s *GormStore) CreateInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error {
	return translateErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(inv).Error
	}))
}

func (s *GormStore) SaveInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error {
	// Items are frozen; only the invoice row itself is written back.
	return s.db.WithContext(ctx).Omit("InvoiceItems").Save(inv).Error
}

func (s *GormStore) ListInvoices(ctx context.Context, facilityID uuid.UUID, filter service.InvoiceFilter) ([]billingModel.InvoiceModel, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&billingModel.InvoiceModel{}).
		Where("invoice_facility_id = ?", facilityID)

	if filter.PatientID != nil {
		q = q.Where("invoice_patient_id = ?", *filter.PatientID)
	}
	if filter.Status != nil {
		q = q.Where("invoice_status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		q = q.Where("invoice_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("invoice_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []billingModel.InvoiceModel
	if err := q.
		Preload("InvoiceItems").
		Order("invoice_date DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ======================= PAYMENTS ======================= */

// PaymentByID joins the invoice header for tenant safety: a payment is only
// visible through an invoice of the caller's facility.
func (s *GormStore) PaymentByID(ctx context.Context, facilityID, paymentID uuid.UUID) (*billingModel.PaymentModel, error) {
	var p billingModel.PaymentModel
	if err := s.db.WithContext(ctx).
		Table("payments AS p").
		Joins("JOIN invoices AS i ON i.invoice_id = p.payment_invoice_id").
		Where("p.payment_id = ? AND i.invoice_facility_id = ?", paymentID, facilityID).
		Where("p.payment_deleted_at IS NULL AND i.invoice_deleted_at IS NULL").
		Select("p.*").
		Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) PaymentsForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billingModel.PaymentModel, error) {
	var rows []billingModel.PaymentModel
	if err := s.db.WithContext(ctx).
		Where("payment_invoice_id = ?", invoiceID).
		Order("payment_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreatePayment mirrors CreateInvoice: savepoint-wrapped so a duplicate
// payment reference leaves the settlement transaction usable for the retry.
func (s *GormStore) CreatePayment(ctx context.Context, p *billingModel.PaymentModel) error {
	return translateErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	}))
}

/* ======================= WALLET & LEDGER ======================= */

func (s *GormStore) WalletForPatient(ctx context.Context, patientID uuid.UUID, forUpdate bool) (*billingModel.PatientWalletModel, error) {
	q := s.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var w billingModel.PatientWalletModel
	if err := q.Where("wallet_patient_id = ?", patientID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *GormStore) CreateWallet(ctx context.Context, w *billingModel.PatientWalletModel) error {
	return translateErr(s.db.WithContext(ctx).Create(w).Error)
}

func (s *GormStore) SaveWallet(ctx context.Context, w *billingModel.PatientWalletModel) error {
	return s.db.WithContext(ctx).Save(w).Error
}

func (s *GormStore) AppendWalletTransaction(ctx context.Context, entry *billingModel.WalletTransactionModel) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) WalletTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]billingModel.WalletTransactionModel, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&billingModel.WalletTransactionModel{}).
		Where("wallet_transaction_wallet_id = ?", walletID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []billingModel.WalletTransactionModel
	if err := q.
		Order("wallet_transaction_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ======================= MASTER DATA ======================= */

func (s *GormStore) PatientByID(ctx context.Context, facilityID, patientID uuid.UUID) (*patientModel.PatientModel, error) {
	var p patientModel.PatientModel
	if err := s.db.WithContext(ctx).
		Where("patient_id = ? AND patient_facility_id = ?", patientID, facilityID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) MedicalServiceByID(ctx context.Context, facilityID, serviceID uuid.UUID) (*svcModel.MedicalServiceModel, error) {
	var m svcModel.MedicalServiceModel
	if err := s.db.WithContext(ctx).
		Where("medical_service_id = ? AND medical_service_facility_id = ?", serviceID, facilityID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) AppointmentByID(ctx context.Context, facilityID, appointmentID uuid.UUID, forUpdate bool) (*apptModel.AppointmentModel, error) {
	q := s.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var a apptModel.AppointmentModel
	if err := q.
		Where("appointment_id = ? AND appointment_facility_id = ?", appointmentID, facilityID).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) SaveAppointment(ctx context.Context, a *apptModel.AppointmentModel) error {
	return s.db.WithContext(ctx).Save(a).Error
}

/* ======================= HELPERS ======================= */

// translateErr maps unique-constraint violations to ErrDuplicateReference so
// the engine can retry with a fresh business reference. String fallback keeps
// this working when the pg error is wrapped by another driver layer.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return service.ErrDuplicateReference
	}
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return service.ErrDuplicateReference
	}
	return err
}
