// file: internals/features/billing/service/store_fake_test.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	svcModel "centralhealth_backend/internals/features/masterdata/services/model"
)

// fakeStore is an in-memory Store with real rollback semantics: ExecTx
// snapshots all state up front and restores it when fn fails, so atomicity
// tests observe exactly what a database rollback would leave behind. Reads
// return copies; a write is only visible after the matching Save/Create call.
type fakeStore struct {
	invoices     map[uuid.UUID]*billingModel.InvoiceModel
	payments     map[uuid.UUID]*billingModel.PaymentModel
	wallets      map[uuid.UUID]*billingModel.PatientWalletModel
	walletTx     []billingModel.WalletTransactionModel
	patients     map[uuid.UUID]*patientModel.PatientModel
	services     map[uuid.UUID]*svcModel.MedicalServiceModel
	appointments map[uuid.UUID]*apptModel.AppointmentModel

	// failOn makes the named Repo method return errInjected, exercising the
	// rollback path without any real infrastructure failure.
	failOn string
}

var errInjected = errors.New("injected store failure")

func newFakeStore() *fakeStore {
	return &fakeStore{
		invoices:     map[uuid.UUID]*billingModel.InvoiceModel{},
		payments:     map[uuid.UUID]*billingModel.PaymentModel{},
		wallets:      map[uuid.UUID]*billingModel.PatientWalletModel{},
		patients:     map[uuid.UUID]*patientModel.PatientModel{},
		services:     map[uuid.UUID]*svcModel.MedicalServiceModel{},
		appointments: map[uuid.UUID]*apptModel.AppointmentModel{},
	}
}

/* ======================= SNAPSHOT / RESTORE ======================= */

type fakeSnapshot struct {
	invoices     map[uuid.UUID]*billingModel.InvoiceModel
	payments     map[uuid.UUID]*billingModel.PaymentModel
	wallets      map[uuid.UUID]*billingModel.PatientWalletModel
	walletTx     []billingModel.WalletTransactionModel
	appointments map[uuid.UUID]*apptModel.AppointmentModel
}

func (f *fakeStore) snapshot() fakeSnapshot {
	s := fakeSnapshot{
		invoices:     map[uuid.UUID]*billingModel.InvoiceModel{},
		payments:     map[uuid.UUID]*billingModel.PaymentModel{},
		wallets:      map[uuid.UUID]*billingModel.PatientWalletModel{},
		walletTx:     append([]billingModel.WalletTransactionModel(nil), f.walletTx...),
		appointments: map[uuid.UUID]*apptModel.AppointmentModel{},
	}
	for id, inv := range f.invoices {
		cp := *inv
		cp.InvoiceItems = append([]billingModel.InvoiceItemModel(nil), inv.InvoiceItems...)
		s.invoices[id] = &cp
	}
	for id, p := range f.payments {
		cp := *p
		s.payments[id] = &cp
	}
	for id, w := range f.wallets {
		cp := *w
		s.wallets[id] = &cp
	}
	for id, a := range f.appointments {
		cp := *a
		s.appointments[id] = &cp
	}
	return s
}

func (f *fakeStore) restore(s fakeSnapshot) {
	f.invoices = s.invoices
	f.payments = s.payments
	f.wallets = s.wallets
	f.walletTx = s.walletTx
	f.appointments = s.appointments
}

func (f *fakeStore) ExecTx(ctx context.Context, fn func(Repo) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeStore) injected(method string) error {
	if f.failOn == method {
		return errInjected
	}
	return nil
}

/* ======================= INVOICES ======================= */

func (f *fakeStore) InvoiceByID(ctx context.Context, facilityID, invoiceID uuid.UUID, forUpdate bool) (*billingModel.InvoiceModel, error) {
	if err := f.injected("InvoiceByID"); err != nil {
		return nil, err
	}
	inv, ok := f.invoices[invoiceID]
	if !ok || inv.InvoiceFacilityID != facilityID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	cp.InvoiceItems = append([]billingModel.InvoiceItemModel(nil), inv.InvoiceItems...)
	return &cp, nil
}

func (f *fakeStore) CreateInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error {
	if err := f.injected("CreateInvoice"); err != nil {
		return err
	}
	for _, existing := range f.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return ErrDuplicateReference
		}
	}
	cp := *inv
	cp.InvoiceItems = append([]billingModel.InvoiceItemModel(nil), inv.InvoiceItems...)
	f.invoices[inv.InvoiceID] = &cp
	return nil
}

func (f *fakeStore) SaveInvoice(ctx context.Context, inv *billingModel.InvoiceModel) error {
	if err := f.injected("SaveInvoice"); err != nil {
		return err
	}
	cp := *inv
	cp.InvoiceItems = append([]billingModel.InvoiceItemModel(nil), inv.InvoiceItems...)
	f.invoices[inv.InvoiceID] = &cp
	return nil
}

func (f *fakeStore) ListInvoices(ctx context.Context, facilityID uuid.UUID, filter InvoiceFilter) ([]billingModel.InvoiceModel, int64, error) {
	if err := f.injected("ListInvoices"); err != nil {
		return nil, 0, err
	}
	var rows []billingModel.InvoiceModel
	for _, inv := range f.invoices {
		if inv.InvoiceFacilityID != facilityID {
			continue
		}
		if filter.PatientID != nil && inv.InvoicePatientID != *filter.PatientID {
			continue
		}
		if filter.Status != nil && inv.InvoiceStatus != *filter.Status {
			continue
		}
		if filter.StartDate != nil && inv.InvoiceDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && inv.InvoiceDate.After(*filter.EndDate) {
			continue
		}
		rows = append(rows, *inv)
	}
	return rows, int64(len(rows)), nil
}

/* ======================= PAYMENTS ======================= */

func (f *fakeStore) PaymentByID(ctx context.Context, facilityID, paymentID uuid.UUID) (*billingModel.PaymentModel, error) {
	if err := f.injected("PaymentByID"); err != nil {
		return nil, err
	}
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	inv, ok := f.invoices[p.PaymentInvoiceID]
	if !ok || inv.InvoiceFacilityID != facilityID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) PaymentsForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billingModel.PaymentModel, error) {
	if err := f.injected("PaymentsForInvoice"); err != nil {
		return nil, err
	}
	var rows []billingModel.PaymentModel
	for _, p := range f.payments {
		if p.PaymentInvoiceID == invoiceID {
			rows = append(rows, *p)
		}
	}
	return rows, nil
}

func (f *fakeStore) CreatePayment(ctx context.Context, p *billingModel.PaymentModel) error {
	if err := f.injected("CreatePayment"); err != nil {
		return err
	}
	for _, existing := range f.payments {
		if existing.PaymentReference == p.PaymentReference {
			return ErrDuplicateReference
		}
	}
	cp := *p
	f.payments[p.PaymentID] = &cp
	return nil
}

/* ======================= WALLET & LEDGER ======================= */

func (f *fakeStore) WalletForPatient(ctx context.Context, patientID uuid.UUID, forUpdate bool) (*billingModel.PatientWalletModel, error) {
	if err := f.injected("WalletForPatient"); err != nil {
		return nil, err
	}
	for _, w := range f.wallets {
		if w.WalletPatientID == patientID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateWallet(ctx context.Context, w *billingModel.PatientWalletModel) error {
	if err := f.injected("CreateWallet"); err != nil {
		return err
	}
	cp := *w
	f.wallets[w.WalletID] = &cp
	return nil
}

func (f *fakeStore) SaveWallet(ctx context.Context, w *billingModel.PatientWalletModel) error {
	if err := f.injected("SaveWallet"); err != nil {
		return err
	}
	cp := *w
	f.wallets[w.WalletID] = &cp
	return nil
}

func (f *fakeStore) AppendWalletTransaction(ctx context.Context, entry *billingModel.WalletTransactionModel) error {
	if err := f.injected("AppendWalletTransaction"); err != nil {
		return err
	}
	f.walletTx = append(f.walletTx, *entry)
	return nil
}

func (f *fakeStore) WalletTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]billingModel.WalletTransactionModel, int64, error) {
	if err := f.injected("WalletTransactions"); err != nil {
		return nil, 0, err
	}
	var rows []billingModel.WalletTransactionModel
	for _, tx := range f.walletTx {
		if tx.WalletTransactionWalletID == walletID {
			rows = append(rows, tx)
		}
	}
	return rows, int64(len(rows)), nil
}

/* ======================= MASTER DATA ======================= */

func (f *fakeStore) PatientByID(ctx context.Context, facilityID, patientID uuid.UUID) (*patientModel.PatientModel, error) {
	if err := f.injected("PatientByID"); err != nil {
		return nil, err
	}
	p, ok := f.patients[patientID]
	if !ok || p.PatientFacilityID != facilityID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) MedicalServiceByID(ctx context.Context, facilityID, serviceID uuid.UUID) (*svcModel.MedicalServiceModel, error) {
	if err := f.injected("MedicalServiceByID"); err != nil {
		return nil, err
	}
	m, ok := f.services[serviceID]
	if !ok || m.MedicalServiceFacilityID != facilityID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStore) AppointmentByID(ctx context.Context, facilityID, appointmentID uuid.UUID, forUpdate bool) (*apptModel.AppointmentModel, error) {
	if err := f.injected("AppointmentByID"); err != nil {
		return nil, err
	}
	a, ok := f.appointments[appointmentID]
	if !ok || a.AppointmentFacilityID != facilityID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) SaveAppointment(ctx context.Context, a *apptModel.AppointmentModel) error {
	if err := f.injected("SaveAppointment"); err != nil {
		return err
	}
	cp := *a
	f.appointments[a.AppointmentID] = &cp
	return nil
}

var _ Store = (*fakeStore)(nil)
