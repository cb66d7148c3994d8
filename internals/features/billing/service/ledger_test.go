// file: internals/features/billing/service/ledger_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "centralhealth_backend/internals/features/billing/model"
)

func testWallet(balance int64) *model.PatientWalletModel {
	return &model.PatientWalletModel{
		WalletID:        uuid.New(),
		WalletPatientID: uuid.New(),
		WalletBalance:   money(balance),
		WalletCurrency:  "USD",
	}
}

func TestLedger_Debit(t *testing.T) {
	var ledger Ledger

	t.Run("happy path", func(t *testing.T) {
		w := testWallet(8000)
		entry, err := ledger.Debit(w, money(5000), "Payment for Invoice INV-1", nil, testActor)
		require.NoError(t, err)

		assert.True(t, w.WalletBalance.Equal(money(3000)))
		assert.Equal(t, w.WalletID, entry.WalletTransactionWalletID)
		assert.True(t, entry.WalletTransactionAmount.Equal(money(-5000)))
		assert.Equal(t, model.WalletTransactionTypePayment, entry.WalletTransactionType)
		assert.True(t, entry.WalletTransactionBalanceBefore.Equal(money(8000)))
		assert.True(t, entry.WalletTransactionBalanceAfter.Equal(money(3000)))
		assert.Equal(t, "cashier", entry.WalletTransactionCreatedBy)

		// after = before + amount holds for the signed amount.
		assert.True(t, entry.WalletTransactionBalanceBefore.
			Add(entry.WalletTransactionAmount).
			Equal(entry.WalletTransactionBalanceAfter))
	})

	t.Run("exact balance drains to zero", func(t *testing.T) {
		w := testWallet(5000)
		_, err := ledger.Debit(w, money(5000), "d", nil, testActor)
		require.NoError(t, err)
		assert.True(t, w.WalletBalance.IsZero())
	})

	t.Run("insufficient funds leaves wallet untouched", func(t *testing.T) {
		w := testWallet(1000)
		_, err := ledger.Debit(w, money(5000), "d", nil, testActor)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInsufficientFunds))
		assert.Equal(t, "Insufficient wallet balance", err.Error())
		assert.True(t, w.WalletBalance.Equal(money(1000)))
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		w := testWallet(1000)
		for _, amount := range []int64{0, -10} {
			_, err := ledger.Debit(w, money(amount), "d", nil, testActor)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidAmount))
		}
	})
}

func TestLedger_Credit(t *testing.T) {
	var ledger Ledger

	t.Run("happy path", func(t *testing.T) {
		w := testWallet(100)
		ref := "BANK-123"
		entry, err := ledger.Credit(w, money(400), "Wallet top-up", &ref, testActor)
		require.NoError(t, err)

		assert.True(t, w.WalletBalance.Equal(money(500)))
		assert.True(t, entry.WalletTransactionAmount.Equal(money(400)))
		assert.Equal(t, model.WalletTransactionTypeTopUp, entry.WalletTransactionType)
		assert.True(t, entry.WalletTransactionBalanceBefore.Equal(money(100)))
		assert.True(t, entry.WalletTransactionBalanceAfter.Equal(money(500)))
		require.NotNil(t, entry.WalletTransactionReference)
		assert.Equal(t, "BANK-123", *entry.WalletTransactionReference)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		w := testWallet(100)
		for _, amount := range []int64{0, -10} {
			_, err := ledger.Credit(w, money(amount), "c", nil, testActor)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidAmount))
		}
	})
}
