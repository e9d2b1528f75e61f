// Package auth hashes and verifies card secrets (passwords and security codes)
// and generates new security codes.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt cost accepted for card secrets.
const MinCost = 10

// SecurityCodeLength is the number of digits in a generated security code.
const SecurityCodeLength = 3

// PasswordVerifier defines the interface for comparing secrets with their hashes.
type PasswordVerifier interface {
	// Compare compares a hashed secret with its possible plaintext equivalent.
	// Returns nil on success, or an error wrapping ErrMismatch on mismatch.
	Compare(hashedPassword, password string) error
}

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	PasswordVerifier

	// Hash returns a one-way hash of password.
	Hash(password string) (string, error)
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost.
// Costs below MinCost or above bcrypt.MaxCost are rejected.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidCost, cost, MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
// bcrypt compares in constant time.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("%w: %v", ErrMismatch, err)
}

// GenerateSecurityCode returns a random SecurityCodeLength-digit numeric code.
func GenerateSecurityCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < SecurityCodeLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate security code: %w", err)
	}
	return fmt.Sprintf("%0*d", SecurityCodeLength, n.Int64()), nil
}
