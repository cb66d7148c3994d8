// file: internals/features/billing/service/refgen.go
package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

const refSuffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomRefSuffix returns 8 uppercase alphanumerics. Uniqueness is enforced
// by the DB constraint plus retry-on-collision, not by the generator.
func randomRefSuffix() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp-derived suffix rather than panicking mid-settlement.
		return fmt.Sprintf("%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	for i, b := range buf {
		buf[i] = refSuffixCharset[int(b)%len(refSuffixCharset)]
	}
	return string(buf)
}

func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%s", time.Now().UTC().Format("20060102"), randomRefSuffix())
}

func GeneratePaymentReference() string {
	return fmt.Sprintf("PAY-%s-%s", time.Now().UTC().Format("20060102"), randomRefSuffix())
}

func GeneratePatientCode() string {
	return fmt.Sprintf("PAT-%s-%s", time.Now().UTC().Format("20060102"), randomRefSuffix())
}

func GenerateAppointmentNumber() string {
	return fmt.Sprintf("APT-%s-%s", time.Now().UTC().Format("20060102"), randomRefSuffix())
}
