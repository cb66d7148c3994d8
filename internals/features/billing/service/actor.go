// file: internals/features/billing/service/actor.go
package service

import "github.com/google/uuid"

// Actor is the per-call caller context supplied by the auth layer. The engine
// holds no session state of its own; every operation receives the tenant and
// the acting user explicitly.
type Actor struct {
	FacilityID uuid.UUID
	UserID     uuid.UUID
	UserName   string
}
