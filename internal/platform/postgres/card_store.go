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

const cardColumns = `id, employee_id, number, cardholder_name, security_code,
		expiration_date, password, is_virtual, is_blocked, type`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + `
		FROM cards
		WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query card",
			slog.Int64("card_id", id),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("card", "get_by_id", "query failed", MapError(err))
	}
	return card, nil
}

// GetByTypeAndEmployeeID implements store.CardStore.GetByTypeAndEmployeeID
func (s *PostgresCardStore) GetByTypeAndEmployeeID(
	ctx context.Context,
	cardType domain.CardType,
	employeeID int64,
) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + `
		FROM cards
		WHERE type = $1 AND employee_id = $2`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, string(cardType), employeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query card by type",
			slog.Int64("employee_id", employeeID),
			slog.String("card_type", string(cardType)),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("card", "get_by_type", "query failed", MapError(err))
	}
	return card, nil
}

// Insert implements store.CardStore.Insert
// The unique (employee_id, type) index turns a concurrent duplicate into
// store.ErrCardTypeExists; a number collision is store.ErrCardNumberExists.
func (s *PostgresCardStore) Insert(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return store.NewStoreError("card", "insert", "invalid card", errors.Join(store.ErrInvalidEntity, err))
	}

	query := `
		INSERT INTO cards (employee_id, number, cardholder_name, security_code,
			expiration_date, password, is_virtual, is_blocked, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		card.EmployeeID,
		card.Number,
		card.CardholderName,
		card.SecurityCode,
		card.ExpirationDate,
		nullableString(card.Password),
		card.IsVirtual,
		card.IsBlocked,
		string(card.Type),
	).Scan(&card.ID)
	if err != nil {
		constraint, _ := uniqueConstraint(err)
		switch constraint {
		case cardEmployeeTypeConstraint:
			s.logger.DebugContext(ctx, "card type already issued",
				slog.Int64("employee_id", card.EmployeeID),
				slog.String("card_type", string(card.Type)))
			return MapUniqueViolation(err, store.ErrCardTypeExists)
		case cardNumberConstraint:
			s.logger.WarnContext(ctx, "generated card number already in use",
				slog.Int64("employee_id", card.EmployeeID))
			return MapUniqueViolation(err, store.ErrCardNumberExists)
		}
		s.logger.ErrorContext(ctx, "failed to insert card",
			slog.Int64("employee_id", card.EmployeeID),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("card", "insert", "insert failed", MapError(err))
	}
	return nil
}

// Activate implements store.CardStore.Activate
func (s *PostgresCardStore) Activate(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE cards
		SET password = $2, is_blocked = FALSE
		WHERE id = $1 AND password IS NULL
	`

	result, err := s.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to activate card",
			slog.Int64("card_id", id),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("card", "activate", "update failed", MapError(err))
	}
	return s.checkConditionalUpdate(ctx, "activate", id, result, store.ErrCardAlreadyActivated)
}

// SetBlocked implements store.CardStore.SetBlocked
func (s *PostgresCardStore) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	query := `
		UPDATE cards
		SET is_blocked = $2
		WHERE id = $1 AND is_blocked <> $2
	`

	result, err := s.db.ExecContext(ctx, query, id, blocked)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update card block state",
			slog.Int64("card_id", id),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("card", "set_blocked", "update failed", MapError(err))
	}
	return s.checkConditionalUpdate(ctx, "set_blocked", id, result, store.ErrCardStateUnchanged)
}

// checkConditionalUpdate tells a missing card apart from a failed condition
// when a conditional UPDATE changed no rows.
func (s *PostgresCardStore) checkConditionalUpdate(
	ctx context.Context,
	operation string,
	id int64,
	result sql.Result,
	conditionErr error,
) error {
	n, err := rowsAffected(result)
	if err != nil {
		return store.NewStoreError("card", operation, "rows affected unavailable", err)
	}
	if n > 0 {
		return nil
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return store.NewStoreError("card", operation, "existence check failed", MapError(err))
	}
	if !exists {
		return store.ErrCardNotFound
	}
	return conditionErr
}

func scanCard(row *sql.Row) (*domain.Card, error) {
	var (
		card     domain.Card
		password sql.NullString
		cardType string
	)
	err := row.Scan(
		&card.ID,
		&card.EmployeeID,
		&card.Number,
		&card.CardholderName,
		&card.SecurityCode,
		&card.ExpirationDate,
		&password,
		&card.IsVirtual,
		&card.IsBlocked,
		&cardType,
	)
	if err != nil {
		return nil, err
	}

	card.ExpirationDate = card.ExpirationDate.UTC()
	card.Type = domain.CardType(cardType)
	if password.Valid {
		card.Password = &password.String
	}
	return &card, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
