// file: internals/features/billing/service/store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	billingModel "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	svcModel "centralhealth_backend/internals/features/masterdata/services/model"
)

// ErrDuplicateReference is returned by Repo implementations when an insert
// hits the unique constraint on invoice_number / payment_reference. The
// random-suffix generators are collision-probabilistic, so callers retry with
// a fresh reference instead of assuming collision-freedom.
var ErrDuplicateReference = errors.New("duplicate business reference")

// InvoiceFilter narrows ListInvoices. Zero fields are ignored.
type InvoiceFilter struct {
	PatientID *uuid.UUID
	Status    *billingModel.InvoiceStatus
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// Repo is the data access surface of the billing engine. Every lookup is
// facility-scoped and excludes soft-deleted rows; the forUpdate flag requests
// a row lock held until the surrounding transaction ends.
type Repo interface {
	// Invoices
	InvoiceByID(ctx context.Context, facilityID, invoiceID uuid.UUID, forUpdate bool) (*billingModel.InvoiceModel, error)
	CreateInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error
	SaveInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error
	ListInvoices(ctx context.Context, facilityID uuid.UUID, filter InvoiceFilter) ([]billingModel.InvoiceModel, int64, error)

	// Payments
	PaymentByID(ctx context.Context, facilityID, paymentID uuid.UUID) (*billingModel.PaymentModel, error)
	PaymentsForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billingModel.PaymentModel, error)
	CreatePayment(ctx context.Context, p *billingModel.PaymentModel) error

	// Wallet & ledger
	WalletForPatient(ctx context.Context, patientID uuid.UUID, forUpdate bool) (*billingModel.PatientWalletModel, error)
	CreateWallet(ctx context.Context, w *billingModel.PatientWalletModel) error
	SaveWallet(ctx context.Context, w *billingModel.PatientWalletModel) error
	AppendWalletTransaction(ctx context.Context, entry *billingModel.WalletTransactionModel) error
	WalletTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]billingModel.WalletTransactionModel, int64, error)

	// Master data (read side, plus the single appointment write the engine owns)
	PatientByID(ctx context.Context, facilityID, patientID uuid.UUID) (*patientModel.PatientModel, error)
	MedicalServiceByID(ctx context.Context, facilityID, serviceID uuid.UUID) (*svcModel.MedicalServiceModel, error)
	AppointmentByID(ctx context.Context, facilityID, appointmentID uuid.UUID, forUpdate bool) (*apptModel.AppointmentModel, error)
	SaveAppointment(ctx context.Context, a *apptModel.AppointmentModel) error
}

// Store is the unit-of-work boundary. ExecTx runs fn inside one atomic
// transaction: every Repo call made through the passed Repo either commits as
// a whole or leaves no visible writes. Reads outside ExecTx see committed
// state only.
type Store interface {
	Repo
	ExecTx(ctx context.Context, fn func(Repo) error) error
}
