// file: internals/features/billing/service/wallet_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	model "centralhealth_backend/internals/features/billing/model"
)

func TestWalletService_TopUp(t *testing.T) {
	f := newFakeStore()
	patient := seedPatient(f)
	wallet := seedWallet(f, patient.PatientID, money(100))
	svc := NewWalletService(f, zap.NewNop())

	entry, err := svc.TopUp(context.Background(), testActor, patient.PatientID, money(900), nil)
	require.NoError(t, err)

	assert.Equal(t, model.WalletTransactionTypeTopUp, entry.WalletTransactionType)
	assert.True(t, entry.WalletTransactionAmount.Equal(money(900)))
	assert.True(t, f.wallets[wallet.WalletID].WalletBalance.Equal(money(1000)))
	require.Len(t, f.walletTx, 1)
}

func TestWalletService_TopUp_Errors(t *testing.T) {
	f := newFakeStore()
	patient := seedPatient(f)
	seedWallet(f, patient.PatientID, money(100))
	svc := NewWalletService(f, zap.NewNop())

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := svc.TopUp(context.Background(), testActor, patient.PatientID, money(0), nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidAmount))
	})

	t.Run("unknown patient", func(t *testing.T) {
		_, err := svc.TopUp(context.Background(), testActor, uuid.New(), money(100), nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotFound))
		assert.Equal(t, "Patient not found", err.Error())
	})

	t.Run("patient without wallet", func(t *testing.T) {
		orphan := seedPatient(f)
		_, err := svc.TopUp(context.Background(), testActor, orphan.PatientID, money(100), nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotFound))
		assert.Equal(t, "Wallet not found", err.Error())
	})
}

func TestWalletService_TopUp_RollbackOnAppendFailure(t *testing.T) {
	f := newFakeStore()
	patient := seedPatient(f)
	wallet := seedWallet(f, patient.PatientID, money(100))
	f.failOn = "AppendWalletTransaction"
	svc := NewWalletService(f, zap.NewNop())

	_, err := svc.TopUp(context.Background(), testActor, patient.PatientID, money(900), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindOperationFailed))

	assert.True(t, f.wallets[wallet.WalletID].WalletBalance.Equal(money(100)))
	assert.Empty(t, f.walletTx)
}

func TestWalletService_GetForPatient(t *testing.T) {
	f := newFakeStore()
	patient := seedPatient(f)
	seedWallet(f, patient.PatientID, money(100))
	svc := NewWalletService(f, zap.NewNop())

	_, err := svc.TopUp(context.Background(), testActor, patient.PatientID, money(500), nil)
	require.NoError(t, err)

	wallet, entries, total, err := svc.GetForPatient(context.Background(), testActor, patient.PatientID, 20, 0)
	require.NoError(t, err)
	assert.True(t, wallet.WalletBalance.Equal(money(600)))
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, model.WalletTransactionTypeTopUp, entries[0].WalletTransactionType)

	_, _, _, err = svc.GetForPatient(context.Background(), testActor, uuid.New(), 20, 0)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestWalletService_GetForPatient_LogsInfrastructureFailure(t *testing.T) {
	f := newFakeStore()
	patient := seedPatient(f)
	seedWallet(f, patient.PatientID, money(100))

	core, logs := observer.New(zap.ErrorLevel)
	svc := NewWalletService(f, zap.New(core))

	t.Run("patient lookup", func(t *testing.T) {
		f.failOn = "PatientByID"
		_, _, _, err := svc.GetForPatient(context.Background(), testActor, patient.PatientID, 20, 0)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindOperationFailed))

		entries := logs.FilterMessage("patient lookup failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, patient.PatientID.String(), entries[0].ContextMap()["patient_id"])
	})

	t.Run("wallet lookup", func(t *testing.T) {
		f.failOn = "WalletForPatient"
		_, _, _, err := svc.GetForPatient(context.Background(), testActor, patient.PatientID, 20, 0)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindOperationFailed))
		require.Len(t, logs.FilterMessage("wallet lookup failed").All(), 1)
	})
}
