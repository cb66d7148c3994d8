// file: internals/features/billing/model/invoice_model_test.go
package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestInvoiceStatus_CanAcceptPayment(t *testing.T) {
	cases := map[InvoiceStatus]bool{
		InvoiceStatusDraft:         false,
		InvoiceStatusPending:       true,
		InvoiceStatusPartiallyPaid: true,
		InvoiceStatusPaid:          false,
		InvoiceStatusCancelled:     false,
		InvoiceStatusRefunded:      false,
	}
	for status, want := range cases {
		assert.Equal(t, want, status.CanAcceptPayment(), "status %s", status)
	}
}

func TestInvoiceModel_OutstandingAmount(t *testing.T) {
	inv := InvoiceModel{InvoiceTotalAmount: d(5000), InvoicePaidAmount: d(2000)}
	assert.True(t, inv.OutstandingAmount().Equal(d(3000)))

	// Never negative, even if paid somehow exceeds total.
	inv.InvoicePaidAmount = d(6000)
	assert.True(t, inv.OutstandingAmount().IsZero())
}

func TestInvoiceModel_ApplySettlement(t *testing.T) {
	t.Run("partial keeps invoice open", func(t *testing.T) {
		inv := InvoiceModel{InvoiceTotalAmount: d(5000), InvoiceStatus: InvoiceStatusPending}
		status := inv.ApplySettlement(d(2000))
		assert.Equal(t, InvoiceStatusPartiallyPaid, status)
		assert.True(t, inv.InvoicePaidAmount.Equal(d(2000)))
		assert.True(t, inv.OutstandingAmount().Equal(d(3000)))
	})

	t.Run("full settles", func(t *testing.T) {
		inv := InvoiceModel{InvoiceTotalAmount: d(5000), InvoiceStatus: InvoiceStatusPending}
		status := inv.ApplySettlement(d(5000))
		assert.Equal(t, InvoiceStatusPaid, status)
		assert.True(t, inv.OutstandingAmount().IsZero())
	})

	t.Run("sequence of partials settles at total", func(t *testing.T) {
		inv := InvoiceModel{InvoiceTotalAmount: d(5000), InvoiceStatus: InvoiceStatusPending}
		assert.Equal(t, InvoiceStatusPartiallyPaid, inv.ApplySettlement(d(2000)))
		assert.Equal(t, InvoiceStatusPartiallyPaid, inv.ApplySettlement(d(2999)))
		assert.Equal(t, InvoiceStatusPaid, inv.ApplySettlement(d(1)))
	})
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range []PaymentMethod{
		PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodWallet, PaymentMethodInsurance,
	} {
		assert.True(t, m.Valid(), "method %s", m)
	}
	assert.False(t, PaymentMethod("crypto").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
