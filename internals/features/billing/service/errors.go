// file: internals/features/billing/service/errors.go
package service

import "errors"

// ErrorKind is the stable, transport-agnostic classification of an engine
// failure. Controllers translate kinds into HTTP statuses; the engine never
// lets raw internal errors cross its boundary.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindInvalidState      ErrorKind = "INVALID_STATE"
	KindInvalidAmount     ErrorKind = "INVALID_AMOUNT"
	KindInsufficientFunds ErrorKind = "INSUFFICIENT_FUNDS"
	KindOperationFailed   ErrorKind = "OPERATION_FAILED"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error          { return &Error{Kind: KindNotFound, Message: msg} }
func InvalidState(msg string) *Error      { return &Error{Kind: KindInvalidState, Message: msg} }
func InvalidAmount(msg string) *Error     { return &Error{Kind: KindInvalidAmount, Message: msg} }
func InsufficientFunds(msg string) *Error { return &Error{Kind: KindInsufficientFunds, Message: msg} }
func OperationFailed(msg string) *Error   { return &Error{Kind: KindOperationFailed, Message: msg} }

// KindOf returns the error kind, or KindOperationFailed for anything that is
// not a typed engine error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOperationFailed
}

// IsKind reports whether err is a typed engine error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
