package store

import (
	"context"

	"github.com/phrazzld/benefit-cards/internal/domain"
)

// CompanyStore provides read access to companies.
type CompanyStore interface {
	// GetByAPIKey retrieves the company that owns the API key.
	// Returns ErrCompanyNotFound if no company matches.
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error)
}

// EmployeeStore provides read access to employees.
type EmployeeStore interface {
	// GetByID retrieves an employee by ID.
	// Returns ErrEmployeeNotFound if the employee does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}
