package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/redact"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// PostgresPaymentStore implements store.PaymentStore.
type PostgresPaymentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPaymentStore creates a payment store on db.
func NewPostgresPaymentStore(db store.DBTX, logger *slog.Logger) *PostgresPaymentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPaymentStore{
		db:     db,
		logger: logger.With(slog.String("component", "payment_store")),
	}
}

var _ store.PaymentStore = (*PostgresPaymentStore)(nil)

// ListByCardID implements store.PaymentStore.
func (s *PostgresPaymentStore) ListByCardID(ctx context.Context, cardID int64) ([]*domain.Payment, error) {
	query := `
		SELECT p.id, p.card_id, p.business_id, b.name, p.amount, p."timestamp"
		FROM payments p
		JOIN businesses b ON b.id = p.business_id
		WHERE p.card_id = $1
		ORDER BY p."timestamp" DESC
	`

	rows, err := s.db.QueryContext(ctx, query, cardID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query payments",
			slog.Int64("card_id", cardID),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("payment", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	payments := []*domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.CardID, &p.BusinessID, &p.BusinessName, &p.Amount, &p.Timestamp); err != nil {
			return nil, store.NewStoreError("payment", "list", "scan failed", err)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("payment", "list", "rows iteration failed", MapError(err))
	}
	return payments, nil
}

// PostgresRechargeStore implements store.RechargeStore.
type PostgresRechargeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRechargeStore creates a recharge store on db.
func NewPostgresRechargeStore(db store.DBTX, logger *slog.Logger) *PostgresRechargeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRechargeStore{
		db:     db,
		logger: logger.With(slog.String("component", "recharge_store")),
	}
}

var _ store.RechargeStore = (*PostgresRechargeStore)(nil)

// ListByCardID implements store.RechargeStore.
func (s *PostgresRechargeStore) ListByCardID(ctx context.Context, cardID int64) ([]*domain.Recharge, error) {
	query := `
		SELECT id, card_id, amount, "timestamp"
		FROM recharges
		WHERE card_id = $1
		ORDER BY "timestamp" DESC
	`

	rows, err := s.db.QueryContext(ctx, query, cardID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query recharges",
			slog.Int64("card_id", cardID),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("recharge", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	recharges := []*domain.Recharge{}
	for rows.Next() {
		var r domain.Recharge
		if err := rows.Scan(&r.ID, &r.CardID, &r.Amount, &r.Timestamp); err != nil {
			return nil, store.NewStoreError("recharge", "list", "scan failed", err)
		}
		recharges = append(recharges, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("recharge", "list", "rows iteration failed", MapError(err))
	}
	return recharges, nil
}
