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

// PostgresCompanyStore implements store.CompanyStore.
type PostgresCompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompanyStore creates a company store on db.
// If logger is nil, a default logger will be used.
func NewPostgresCompanyStore(db store.DBTX, logger *slog.Logger) *PostgresCompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

var _ store.CompanyStore = (*PostgresCompanyStore)(nil)

// GetByAPIKey implements store.CompanyStore.
func (s *PostgresCompanyStore) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error) {
	query := `
		SELECT id, name, api_key
		FROM companies
		WHERE api_key = $1
	`

	var company domain.Company
	err := s.db.QueryRowContext(ctx, query, apiKey).Scan(
		&company.ID,
		&company.Name,
		&company.APIKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCompanyNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query company", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("company", "get_by_api_key", "query failed", MapError(err))
	}
	return &company, nil
}
