package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/benefit-cards/internal/domain"
)

// Card event types.
const (
	CardCreated   = "card.created"
	CardActivated = "card.activated"
	CardBlocked   = "card.blocked"
	CardUnblocked = "card.unblocked"
)

// CardEvent records a state change of a card.
// It never carries secrets: no number, password or security code.
type CardEvent struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	CardID     int64           `json:"card_id"`
	EmployeeID int64           `json:"employee_id"`
	CardType   domain.CardType `json:"card_type"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewCardEvent creates a CardEvent of eventType for card.
func NewCardEvent(eventType string, card *domain.Card, at time.Time) *CardEvent {
	return &CardEvent{
		ID:         uuid.New(),
		Type:       eventType,
		CardID:     card.ID,
		EmployeeID: card.EmployeeID,
		CardType:   card.Type,
		OccurredAt: at.UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *CardEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *CardEvent) error

// HandleEvent implements EventHandler.
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *CardEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *CardEvent) error
}

// NopEmitter discards every event.
type NopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NopEmitter) EmitEvent(context.Context, *CardEvent) error { return nil }
