package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/events"
)

// MockEventEmitter records emitted events.
type MockEventEmitter struct {
	// Err is returned from every EmitEvent call when set.
	Err error

	mu     sync.Mutex
	events []*events.CardEvent
}

// EmitEvent implements events.EventEmitter.
func (m *MockEventEmitter) EmitEvent(_ context.Context, event *events.CardEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.Err
}

// Types returns the types of the recorded events in emission order.
func (m *MockEventEmitter) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)
