package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness rule.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrConditionFailed is returned when a conditional update matched no row
	// because the entity was not in the expected state.
	ErrConditionFailed = errors.New("update condition not met")

	// Entity-specific "not found" errors

	// ErrCompanyNotFound indicates that no company matches the given API key.
	ErrCompanyNotFound = fmt.Errorf("%w: company", ErrNotFound)

	// ErrEmployeeNotFound indicates that the requested employee does not exist.
	ErrEmployeeNotFound = fmt.Errorf("%w: employee", ErrNotFound)

	// ErrCardNotFound indicates that the requested card does not exist.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCardTypeExists indicates the employee already holds a card of that type.
	ErrCardTypeExists = fmt.Errorf("%w: card type for employee", ErrDuplicate)

	// ErrCardNumberExists indicates the generated card number is already in use.
	ErrCardNumberExists = fmt.Errorf("%w: card number", ErrDuplicate)

	// Conditional update failures

	// ErrCardAlreadyActivated is returned by CardStore.Activate when the card
	// already has a password.
	ErrCardAlreadyActivated = fmt.Errorf("%w: card already activated", ErrConditionFailed)

	// ErrCardStateUnchanged is returned by CardStore.SetBlocked when the card
	// is already in the requested blocked state.
	ErrCardStateUnchanged = fmt.Errorf("%w: card block state unchanged", ErrConditionFailed)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "card", "payment")
	Operation string // The operation that failed (e.g., "insert", "activate")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
