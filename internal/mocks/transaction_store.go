package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// MockPaymentStore implements store.PaymentStore for testing.
type MockPaymentStore struct {
	ListByCardIDFn func(ctx context.Context, cardID int64) ([]*domain.Payment, error)

	mu       sync.Mutex
	payments []*domain.Payment
}

// NewMockPaymentStore creates a store holding the given payments.
func NewMockPaymentStore(payments ...*domain.Payment) *MockPaymentStore {
	return &MockPaymentStore{payments: payments}
}

// Add appends payments.
func (m *MockPaymentStore) Add(payments ...*domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, payments...)
}

// ListByCardID implements store.PaymentStore.
func (m *MockPaymentStore) ListByCardID(ctx context.Context, cardID int64) ([]*domain.Payment, error) {
	if m.ListByCardIDFn != nil {
		return m.ListByCardIDFn(ctx, cardID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*domain.Payment{}
	for _, p := range m.payments {
		if p.CardID == cardID {
			result = append(result, p)
		}
	}
	return result, nil
}

// MockRechargeStore implements store.RechargeStore for testing.
type MockRechargeStore struct {
	ListByCardIDFn func(ctx context.Context, cardID int64) ([]*domain.Recharge, error)

	mu        sync.Mutex
	recharges []*domain.Recharge
}

// NewMockRechargeStore creates a store holding the given recharges.
func NewMockRechargeStore(recharges ...*domain.Recharge) *MockRechargeStore {
	return &MockRechargeStore{recharges: recharges}
}

// Add appends recharges.
func (m *MockRechargeStore) Add(recharges ...*domain.Recharge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recharges = append(m.recharges, recharges...)
}

// ListByCardID implements store.RechargeStore.
func (m *MockRechargeStore) ListByCardID(ctx context.Context, cardID int64) ([]*domain.Recharge, error) {
	if m.ListByCardIDFn != nil {
		return m.ListByCardIDFn(ctx, cardID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*domain.Recharge{}
	for _, r := range m.recharges {
		if r.CardID == cardID {
			result = append(result, r)
		}
	}
	return result, nil
}

var (
	_ store.PaymentStore  = (*MockPaymentStore)(nil)
	_ store.RechargeStore = (*MockRechargeStore)(nil)
)
