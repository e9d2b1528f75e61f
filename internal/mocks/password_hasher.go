package mocks

import (
	"strings"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/service/auth"
)

// HashPrefix marks values produced by MockPasswordHasher.Hash.
const HashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing without bcrypt.
// By default Hash prefixes the secret with HashPrefix and Compare checks that
// form, returning auth.ErrMismatch otherwise.
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	mu sync.Mutex
	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
	// HashCallCount tracks how many times Hash was called
	HashCallCount int
}

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.mu.Lock()
	m.HashCallCount++
	m.mu.Unlock()

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return HashPrefix + password, nil
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.CompareCallCount++
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.HasPrefix(hashedPassword, HashPrefix) && hashedPassword[len(HashPrefix):] == password {
		return nil
	}
	return auth.ErrMismatch
}

// Hashed returns the value MockPasswordHasher.Hash produces for secret.
func Hashed(secret string) string {
	return HashPrefix + secret
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)
