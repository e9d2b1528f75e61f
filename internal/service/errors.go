package service

import (
	"errors"
	"fmt"
)

// Kind classifies a business rule violation.
type Kind string

// The closed set of violation kinds.
const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
	KindBadRequest Kind = "bad_request"
)

// Error is a business rule violation. Message is meant for humans and is safe
// to show to API clients.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind and message,
// so sentinel values below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// NotFound creates a not_found error.
func NotFound(message string) *Error { return &Error{Kind: KindNotFound, Message: message} }

// Conflict creates a conflict error.
func Conflict(message string) *Error { return &Error{Kind: KindConflict, Message: message} }

// Forbidden creates a forbidden error.
func Forbidden(message string) *Error { return &Error{Kind: KindForbidden, Message: message} }

// BadRequest creates a bad_request error.
func BadRequest(message string) *Error { return &Error{Kind: KindBadRequest, Message: message} }

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Violations returned by the card service.
var (
	ErrCompanyNotFound     = NotFound("Company not found")
	ErrEmployeeNotFound    = NotFound("Employee not found")
	ErrCardNotFound        = NotFound("Card not found")
	ErrDuplicateCardType   = Conflict("Employee cannot register a second card of the same type")
	ErrCardAlreadyActive   = Conflict("Card already activated")
	ErrCardExpired         = Forbidden("Card expired")
	ErrSecurityCodeInvalid = Forbidden("Security code does not match")
	ErrWrongPassword       = Forbidden("Wrong password")
	ErrCardAlreadyBlocked  = BadRequest("Card is already blocked")
	// The message for unblocking an unblocked card is kept as published to clients.
	ErrCardAlreadyUnblocked = BadRequest("Card is already activated")
	ErrCardBlocked          = BadRequest("Card is blocked")
	ErrInvalidPassword      = BadRequest("Password must be 4 digits")
	ErrInvalidCardType      = BadRequest("Invalid card type")
)

// CardServiceError wraps unexpected failures of the card service's collaborators.
type CardServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CardServiceError.
func (e *CardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("card service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CardServiceError) Unwrap() error {
	return e.Err
}

// NewCardServiceError creates a new CardServiceError.
func NewCardServiceError(operation, message string, err error) *CardServiceError {
	return &CardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
