package auth

import "errors"

// Common credential errors
var (
	// ErrMismatch indicates a plaintext secret does not match its stored hash.
	ErrMismatch = errors.New("secret does not match hash")

	// ErrInvalidCost indicates a bcrypt cost outside the accepted range.
	ErrInvalidCost = errors.New("invalid hash cost")
)
