package store

import (
	"context"

	"github.com/phrazzld/benefit-cards/internal/domain"
)

// CardStore defines the interface for card data persistence.
//
// Writes that depend on the current card state are conditional: the
// implementation checks the precondition and applies the change in a single
// statement, so two concurrent requests cannot both pass the check.
type CardStore interface {
	// GetByID retrieves a card by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Card, error)

	// GetByTypeAndEmployeeID retrieves the employee's card of the given type.
	// Returns ErrCardNotFound if the employee has no such card.
	GetByTypeAndEmployeeID(ctx context.Context, cardType domain.CardType, employeeID int64) (*domain.Card, error)

	// Insert saves a new card and sets its ID.
	// Returns an error wrapping ErrCardTypeExists if the employee already has
	// a card of the same type.
	Insert(ctx context.Context, card *domain.Card) error

	// Activate stores the password hash and unblocks the card, but only if the
	// card has no password yet.
	// Returns ErrCardAlreadyActivated when the card already has a password and
	// ErrCardNotFound when it does not exist.
	Activate(ctx context.Context, id int64, passwordHash string) error

	// SetBlocked changes the blocked flag, but only if it differs from blocked.
	// Returns ErrCardStateUnchanged when the card is already in that state and
	// ErrCardNotFound when it does not exist.
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}
