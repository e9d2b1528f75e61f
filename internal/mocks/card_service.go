package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/service"
)

// BlockCall records the arguments of a BlockCard call.
type BlockCall struct {
	CardID     int64
	Password   string
	IsBlocking bool
}

// MockCardService implements service.CardService for testing.
type MockCardService struct {
	CreateCardFn   func(ctx context.Context, employeeID int64, cardType domain.CardType, apiKey string) (*service.IssuedCard, error)
	ActivateCardFn func(ctx context.Context, cardID int64, securityCode, password string) error
	GetBalanceFn   func(ctx context.Context, cardID int64) (*domain.Balance, error)
	BlockCardFn    func(ctx context.Context, cardID int64, password string, isBlocking bool) error

	// Default response values
	Issued  *service.IssuedCard
	Balance *domain.Balance
	Err     error

	mu         sync.Mutex
	BlockCalls []BlockCall
}

// CreateCard implements service.CardService.
func (m *MockCardService) CreateCard(
	ctx context.Context,
	employeeID int64,
	cardType domain.CardType,
	apiKey string,
) (*service.IssuedCard, error) {
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, employeeID, cardType, apiKey)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Issued, nil
}

// ActivateCard implements service.CardService.
func (m *MockCardService) ActivateCard(ctx context.Context, cardID int64, securityCode, password string) error {
	if m.ActivateCardFn != nil {
		return m.ActivateCardFn(ctx, cardID, securityCode, password)
	}
	return m.Err
}

// GetBalance implements service.CardService.
func (m *MockCardService) GetBalance(ctx context.Context, cardID int64) (*domain.Balance, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx, cardID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Balance, nil
}

// BlockCard implements service.CardService.
func (m *MockCardService) BlockCard(ctx context.Context, cardID int64, password string, isBlocking bool) error {
	m.mu.Lock()
	m.BlockCalls = append(m.BlockCalls, BlockCall{CardID: cardID, Password: password, IsBlocking: isBlocking})
	m.mu.Unlock()

	if m.BlockCardFn != nil {
		return m.BlockCardFn(ctx, cardID, password, isBlocking)
	}
	return m.Err
}

var _ service.CardService = (*MockCardService)(nil)
