package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// MockCompanyStore implements store.CompanyStore for testing.
type MockCompanyStore struct {
	GetByAPIKeyFn func(ctx context.Context, apiKey string) (*domain.Company, error)

	mu        sync.Mutex
	companies map[string]*domain.Company
}

// NewMockCompanyStore creates a store holding the given companies.
func NewMockCompanyStore(companies ...*domain.Company) *MockCompanyStore {
	m := &MockCompanyStore{companies: make(map[string]*domain.Company)}
	for _, c := range companies {
		m.Add(c)
	}
	return m
}

// Add stores c under its API key.
func (m *MockCompanyStore) Add(c *domain.Company) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[c.APIKey] = c
}

// GetByAPIKey implements store.CompanyStore.
func (m *MockCompanyStore) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error) {
	if m.GetByAPIKeyFn != nil {
		return m.GetByAPIKeyFn(ctx, apiKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[apiKey]
	if !ok {
		return nil, store.ErrCompanyNotFound
	}
	copied := *c
	return &copied, nil
}

// MockEmployeeStore implements store.EmployeeStore for testing.
type MockEmployeeStore struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.Employee, error)

	mu        sync.Mutex
	employees map[int64]*domain.Employee
}

// NewMockEmployeeStore creates a store holding the given employees.
func NewMockEmployeeStore(employees ...*domain.Employee) *MockEmployeeStore {
	m := &MockEmployeeStore{employees: make(map[int64]*domain.Employee)}
	for _, e := range employees {
		m.Add(e)
	}
	return m
}

// Add stores e under its ID.
func (m *MockEmployeeStore) Add(e *domain.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[e.ID] = e
}

// GetByID implements store.EmployeeStore.
func (m *MockEmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.employees[id]
	if !ok {
		return nil, store.ErrEmployeeNotFound
	}
	copied := *e
	return &copied, nil
}

var (
	_ store.CompanyStore  = (*MockCompanyStore)(nil)
	_ store.EmployeeStore = (*MockEmployeeStore)(nil)
)
