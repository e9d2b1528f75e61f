package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/redact"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// PostgresEmployeeStore implements store.EmployeeStore.
type PostgresEmployeeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEmployeeStore creates an employee store on db.
func NewPostgresEmployeeStore(db store.DBTX, logger *slog.Logger) *PostgresEmployeeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEmployeeStore{
		db:     db,
		logger: logger.With(slog.String("component", "employee_store")),
	}
}

var _ store.EmployeeStore = (*PostgresEmployeeStore)(nil)

// GetByID implements store.EmployeeStore.
func (s *PostgresEmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `
		SELECT id, full_name, cpf, email, company_id
		FROM employees
		WHERE id = $1
	`

	var employee domain.Employee
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.FullName,
		&employee.CPF,
		&employee.Email,
		&employee.CompanyID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEmployeeNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query employee",
			slog.Int64("employee_id", id),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("employee", "get_by_id", "query failed", MapError(err))
	}
	return &employee, nil
}
