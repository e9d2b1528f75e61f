package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// MockCardStore implements store.CardStore for testing.
type MockCardStore struct {
	GetByIDFn                func(ctx context.Context, id int64) (*domain.Card, error)
	GetByTypeAndEmployeeIDFn func(ctx context.Context, cardType domain.CardType, employeeID int64) (*domain.Card, error)
	InsertFn                 func(ctx context.Context, card *domain.Card) error
	ActivateFn               func(ctx context.Context, id int64, passwordHash string) error
	SetBlockedFn             func(ctx context.Context, id int64, blocked bool) error

	mu     sync.Mutex
	cards  map[int64]*domain.Card
	nextID int64

	// Writes counts successful Insert, Activate and SetBlocked calls.
	Writes int
}

// NewMockCardStore creates an empty card store.
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{cards: make(map[int64]*domain.Card)}
}

// Put stores a copy of card as is, assigning an ID when it has none.
func (m *MockCardStore) Put(card *domain.Card) *domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	if card.ID == 0 {
		m.nextID++
		card.ID = m.nextID
	} else if card.ID > m.nextID {
		m.nextID = card.ID
	}
	copied := copyCard(card)
	m.cards[card.ID] = copied
	return copyCard(copied)
}

// Card returns a copy of the stored card, or nil.
func (m *MockCardStore) Card(id int64) *domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return nil
	}
	return copyCard(c)
}

// GetByID implements store.CardStore.
func (m *MockCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if c := m.Card(id); c != nil {
		return c, nil
	}
	return nil, store.ErrCardNotFound
}

// GetByTypeAndEmployeeID implements store.CardStore.
func (m *MockCardStore) GetByTypeAndEmployeeID(
	ctx context.Context,
	cardType domain.CardType,
	employeeID int64,
) (*domain.Card, error) {
	if m.GetByTypeAndEmployeeIDFn != nil {
		return m.GetByTypeAndEmployeeIDFn(ctx, cardType, employeeID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cards {
		if c.EmployeeID == employeeID && c.Type == cardType {
			return copyCard(c), nil
		}
	}
	return nil, store.ErrCardNotFound
}

// Insert implements store.CardStore, enforcing one card per employee and type
// and unique card numbers.
func (m *MockCardStore) Insert(ctx context.Context, card *domain.Card) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, card)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cards {
		if c.EmployeeID == card.EmployeeID && c.Type == card.Type {
			return fmt.Errorf("%w: employee %d, type %s", store.ErrCardTypeExists, card.EmployeeID, card.Type)
		}
		if c.Number == card.Number {
			return store.ErrCardNumberExists
		}
	}
	m.nextID++
	card.ID = m.nextID
	m.cards[card.ID] = copyCard(card)
	m.Writes++
	return nil
}

// Activate implements store.CardStore.
func (m *MockCardStore) Activate(ctx context.Context, id int64, passwordHash string) error {
	if m.ActivateFn != nil {
		return m.ActivateFn(ctx, id, passwordHash)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return store.ErrCardNotFound
	}
	if c.Password != nil {
		return store.ErrCardAlreadyActivated
	}
	hash := passwordHash
	c.Password = &hash
	c.IsBlocked = false
	m.Writes++
	return nil
}

// SetBlocked implements store.CardStore.
func (m *MockCardStore) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	if m.SetBlockedFn != nil {
		return m.SetBlockedFn(ctx, id, blocked)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return store.ErrCardNotFound
	}
	if c.IsBlocked == blocked {
		return store.ErrCardStateUnchanged
	}
	c.IsBlocked = blocked
	m.Writes++
	return nil
}

func copyCard(c *domain.Card) *domain.Card {
	copied := *c
	if c.Password != nil {
		p := *c.Password
		copied.Password = &p
	}
	return &copied
}

var _ store.CardStore = (*MockCardStore)(nil)
