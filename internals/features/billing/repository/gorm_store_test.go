// file: internals/features/billing/repository/gorm_store_test.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	billingModel "centralhealth_backend/internals/features/billing/model"
	service "centralhealth_backend/internals/features/billing/service"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Discard,
	})
	require.NoError(t, err)
	return NewGormStore(db), mock
}

func duplicateKeyErr(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: constraint,
	}
}

func mockInvoice() *billingModel.InvoiceModel {
	return &billingModel.InvoiceModel{
		InvoiceID:          uuid.New(),
		InvoiceNumber:      service.GenerateInvoiceNumber(),
		InvoiceFacilityID:  uuid.New(),
		InvoicePatientID:   uuid.New(),
		InvoiceSubtotal:    decimal.NewFromInt(100),
		InvoiceTotalAmount: decimal.NewFromInt(100),
		InvoiceCurrency:    "USD",
		InvoiceStatus:      billingModel.InvoiceStatusPending,
		InvoiceCreatedBy:   "test",
	}
}

func mockPayment() *billingModel.PaymentModel {
	return &billingModel.PaymentModel{
		PaymentID:                uuid.New(),
		PaymentInvoiceID:         uuid.New(),
		PaymentReference:         service.GeneratePaymentReference(),
		PaymentAmount:            decimal.NewFromInt(50),
		PaymentCurrency:          "USD",
		PaymentMethod:            billingModel.PaymentMethodCash,
		PaymentStatus:            billingModel.PaymentStatusCompleted,
		PaymentProcessedByUserID: uuid.New(),
		PaymentCreatedBy:         "test",
	}
}

// A duplicate invoice number must abort only the savepoint scope of the
// insert: the surrounding transaction has to accept the next attempt, and
// the caller has to see ErrDuplicateReference, not the raw pg error.
func TestGormStore_CreateInvoice_DuplicateKeepsTransactionUsable(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	// First attempt: savepoint, failed insert, rollback to savepoint.
	mock.ExpectExec("SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "invoices"`).
		WillReturnError(duplicateKeyErr("idx_invoices_invoice_number"))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	// Second attempt goes through the same, still-open transaction.
	mock.ExpectExec("SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "invoices"`).
		WillReturnError(duplicateKeyErr("idx_invoices_invoice_number"))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	attempts := 0
	err := store.ExecTx(context.Background(), func(r service.Repo) error {
		for i := 0; i < 2; i++ {
			attempts++
			inv := mockInvoice()
			if err := r.CreateInvoice(context.Background(), inv); !errors.Is(err, service.ErrDuplicateReference) {
				return fmt.Errorf("attempt %d: %w", attempts, err)
			}
		}
		return service.ErrDuplicateReference
	})
	require.ErrorIs(t, err, service.ErrDuplicateReference)
	assert.Equal(t, 2, attempts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePayment_DuplicateTranslated(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(duplicateKeyErr("idx_payments_payment_reference"))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.ExecTx(context.Background(), func(r service.Repo) error {
		return r.CreatePayment(context.Background(), mockPayment())
	})
	require.ErrorIs(t, err, service.ErrDuplicateReference)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateErr(t *testing.T) {
	assert.NoError(t, translateErr(nil))

	t.Run("unique violation maps", func(t *testing.T) {
		assert.ErrorIs(t, translateErr(duplicateKeyErr("c")), service.ErrDuplicateReference)
	})

	t.Run("wrapped unique violation maps", func(t *testing.T) {
		wrapped := fmt.Errorf("insert: %w", duplicateKeyErr("c"))
		assert.ErrorIs(t, translateErr(wrapped), service.ErrDuplicateReference)
	})

	t.Run("string fallback maps", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_invoices_invoice_number"`)
		assert.ErrorIs(t, translateErr(err), service.ErrDuplicateReference)
	})

	t.Run("aborted transaction is not a duplicate", func(t *testing.T) {
		aborted := &pgconn.PgError{Code: "25P02", Message: "current transaction is aborted, commands ignored until end of transaction block"}
		assert.NotErrorIs(t, translateErr(aborted), service.ErrDuplicateReference)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")
		assert.Equal(t, boom, translateErr(boom))
	})
}
