package store

import (
	"context"

	"github.com/phrazzld/benefit-cards/internal/domain"
)

// PaymentStore provides read access to card payments.
type PaymentStore interface {
	// ListByCardID returns every payment made with the card, newest first.
	// A card without payments yields an empty slice, not an error.
	ListByCardID(ctx context.Context, cardID int64) ([]*domain.Payment, error)
}

// RechargeStore provides read access to card recharges.
type RechargeStore interface {
	// ListByCardID returns every recharge of the card, newest first.
	// A card without recharges yields an empty slice, not an error.
	ListByCardID(ctx context.Context, cardID int64) ([]*domain.Recharge, error)
}
