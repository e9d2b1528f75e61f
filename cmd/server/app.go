package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/benefit-cards/internal/config"
	"github.com/phrazzld/benefit-cards/internal/events"
	"github.com/phrazzld/benefit-cards/internal/platform/postgres"
	"github.com/phrazzld/benefit-cards/internal/service"
	"github.com/phrazzld/benefit-cards/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	cardService  service.CardService
	eventEmitter events.EventEmitter
}

// newApplication wires the stores, hasher, event emitter and card service.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	hasher, err := auth.NewBcryptHasher(cfg.Card.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditHandler(logger))
	app.eventEmitter = emitter

	repos := service.Repositories{
		Companies: postgres.NewPostgresCompanyStore(db, logger),
		Employees: postgres.NewPostgresEmployeeStore(db, logger),
		Cards:     postgres.NewPostgresCardStore(db, logger),
		Payments:  postgres.NewPostgresPaymentStore(db, logger),
		Recharges: postgres.NewPostgresRechargeStore(db, logger),
	}

	app.cardService, err = service.NewCardService(
		repos,
		hasher,
		app.eventEmitter,
		logger,
		service.WithValidityYears(cfg.Card.ValidityYears),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.Int("card_validity_years", cfg.Card.ValidityYears))
	return app, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
