// Package mocks provides centralized test doubles for the card service and its
// collaborators.
//
// Store mocks are in-memory and safe for concurrent use. Every method first
// calls its function field when set, so a test can override a single method
// and keep the default behavior for the rest:
//
//	cards := mocks.NewMockCardStore()
//	cards.GetByIDFn = func(ctx context.Context, id int64) (*domain.Card, error) {
//	    return nil, errors.New("connection reset")
//	}
//
// MockCardStore applies Activate and SetBlocked as compare-and-set under its
// mutex, matching the conditional updates of the postgres store.
package mocks
