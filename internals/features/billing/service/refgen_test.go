// file: internals/features/billing/service/refgen_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceFormats(t *testing.T) {
	cases := map[string]struct {
		gen     func() string
		pattern string
	}{
		"invoice":     {GenerateInvoiceNumber, `^INV-\d{8}-[A-Z0-9]{8}$`},
		"payment":     {GeneratePaymentReference, `^PAY-\d{8}-[A-Z0-9]{8}$`},
		"patient":     {GeneratePatientCode, `^PAT-\d{8}-[A-Z0-9]{8}$`},
		"appointment": {GenerateAppointmentNumber, `^APT-\d{8}-[A-Z0-9]{8}$`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				assert.Regexp(t, tc.pattern, tc.gen())
			}
		})
	}
}

func TestReferenceSuffixSpread(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[GenerateInvoiceNumber()] = true
	}
	// Collisions over 36^8 suffixes in 1000 draws would indicate a broken
	// generator rather than bad luck.
	assert.Len(t, seen, 1000)
}

func TestCreateWithRefRetry(t *testing.T) {
	t.Run("retries duplicates then succeeds", func(t *testing.T) {
		calls := 0
		err := createWithRefRetry(func() error {
			calls++
			if calls < 3 {
				return ErrDuplicateReference
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after budget", func(t *testing.T) {
		calls := 0
		err := createWithRefRetry(func() error {
			calls++
			return ErrDuplicateReference
		})
		require.ErrorIs(t, err, ErrDuplicateReference)
		assert.Equal(t, refRetryAttempts, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		err := createWithRefRetry(func() error {
			calls++
			return errInjected
		})
		require.ErrorIs(t, err, errInjected)
		assert.Equal(t, 1, calls)
	})
}
