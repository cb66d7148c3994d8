// file: internals/features/billing/service/fixtures_test.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	billingModel "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	svcModel "centralhealth_backend/internals/features/masterdata/services/model"
)

var (
	testFacilityID = uuid.MustParse("6f3a2a8e-1111-4a1a-9b2a-000000000001")
	testActor      = Actor{
		FacilityID: testFacilityID,
		UserID:     uuid.MustParse("6f3a2a8e-2222-4a1a-9b2a-000000000002"),
		UserName:   "cashier",
	}
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func seedPatient(f *fakeStore) *patientModel.PatientModel {
	p := &patientModel.PatientModel{
		PatientID:         uuid.New(),
		PatientFacilityID: testFacilityID,
		PatientCode:       GeneratePatientCode(),
		PatientFirstName:  "Amina",
		PatientLastName:   "Diallo",
		PatientCreatedBy:  "test",
	}
	f.patients[p.PatientID] = p
	return p
}

func seedWallet(f *fakeStore, patientID uuid.UUID, balance decimal.Decimal) *billingModel.PatientWalletModel {
	w := &billingModel.PatientWalletModel{
		WalletID:         uuid.New(),
		WalletPatientID:  patientID,
		WalletFacilityID: testFacilityID,
		WalletBalance:    balance,
		WalletCurrency:   "USD",
		WalletCreatedBy:  "test",
	}
	f.wallets[w.WalletID] = w
	return w
}

func seedAppointment(f *fakeStore, patientID uuid.UUID, status apptModel.AppointmentStatus) *apptModel.AppointmentModel {
	a := &apptModel.AppointmentModel{
		AppointmentID:          uuid.New(),
		AppointmentFacilityID:  testFacilityID,
		AppointmentPatientID:   patientID,
		AppointmentNumber:      GenerateAppointmentNumber(),
		AppointmentScheduledAt: time.Now(),
		AppointmentStatus:      status,
		AppointmentCreatedBy:   "test",
	}
	f.appointments[a.AppointmentID] = a
	return a
}

func seedMedicalService(f *fakeStore, name string, price decimal.Decimal) *svcModel.MedicalServiceModel {
	m := &svcModel.MedicalServiceModel{
		MedicalServiceID:         uuid.New(),
		MedicalServiceFacilityID: testFacilityID,
		MedicalServiceCode:       "CONS-01",
		MedicalServiceName:       name,
		MedicalServicePrice:      price,
		MedicalServiceIsActive:   true,
		MedicalServiceCreatedBy:  "test",
	}
	f.services[m.MedicalServiceID] = m
	return m
}

// seedInvoice creates a pending invoice with the given total, optionally
// linked to an appointment.
func seedInvoice(f *fakeStore, patientID uuid.UUID, appointmentID *uuid.UUID, total decimal.Decimal) *billingModel.InvoiceModel {
	inv := &billingModel.InvoiceModel{
		InvoiceID:            uuid.New(),
		InvoiceNumber:        GenerateInvoiceNumber(),
		InvoiceFacilityID:    testFacilityID,
		InvoicePatientID:     patientID,
		InvoiceAppointmentID: appointmentID,
		InvoiceDate:          time.Now(),
		InvoiceSubtotal:      total,
		InvoiceTotalAmount:   total,
		InvoicePaidAmount:    decimal.Zero,
		InvoiceCurrency:      "USD",
		InvoiceStatus:        billingModel.InvoiceStatusPending,
		InvoiceCreatedBy:     "test",
	}
	f.invoices[inv.InvoiceID] = inv
	return inv
}
