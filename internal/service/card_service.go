package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/events"
	"github.com/phrazzld/benefit-cards/internal/platform/logger"
	"github.com/phrazzld/benefit-cards/internal/redact"
	"github.com/phrazzld/benefit-cards/internal/service/auth"
	"github.com/phrazzld/benefit-cards/internal/store"
)

// MaxCardNumberAttempts bounds how many card numbers CreateCard draws when the
// generated number is already in use.
const MaxCardNumberAttempts = 3

// DefaultValidityYears is how long a newly issued card stays valid.
const DefaultValidityYears = 5

// Repositories groups the stores the card service reads and writes.
type Repositories struct {
	Companies store.CompanyStore
	Employees store.EmployeeStore
	Cards     store.CardStore
	Payments  store.PaymentStore
	Recharges store.RechargeStore
}

// IssuedCard is a newly created card together with its plaintext security code.
// The code is only available here; the card stores its hash.
type IssuedCard struct {
	Card         *domain.Card
	SecurityCode string
}

// CardService provides the card lifecycle operations.
type CardService interface {
	// CreateCard issues a card of cardType to the employee on behalf of the
	// company that owns apiKey.
	CreateCard(ctx context.Context, employeeID int64, cardType domain.CardType, apiKey string) (*IssuedCard, error)

	// ActivateCard sets the card password after checking the security code.
	ActivateCard(ctx context.Context, cardID int64, securityCode, password string) error

	// GetBalance computes the card balance from its recharges and payments.
	GetBalance(ctx context.Context, cardID int64) (*domain.Balance, error)

	// BlockCard blocks the card when isBlocking is true and unblocks it otherwise.
	BlockCard(ctx context.Context, cardID int64, password string, isBlocking bool) error
}

// Option configures a card service.
type Option func(*cardServiceImpl)

// WithClock overrides the time source used for expiration checks and new cards.
func WithClock(now func() time.Time) Option {
	return func(s *cardServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// WithValidityYears sets how many years a new card is valid for.
func WithValidityYears(years int) Option {
	return func(s *cardServiceImpl) {
		if years > 0 {
			s.validityYears = years
		}
	}
}

// WithSecurityCodeGenerator overrides how security codes are generated.
func WithSecurityCodeGenerator(gen func() (string, error)) Option {
	return func(s *cardServiceImpl) {
		if gen != nil {
			s.newSecurityCode = gen
		}
	}
}

// WithCardNumberGenerator overrides how card numbers are generated.
func WithCardNumberGenerator(gen func() (string, error)) Option {
	return func(s *cardServiceImpl) {
		if gen != nil {
			s.newCardNumber = gen
		}
	}
}

type cardServiceImpl struct {
	repos           Repositories
	hasher          auth.PasswordHasher
	emitter         events.EventEmitter
	logger          *slog.Logger
	now             func() time.Time
	validityYears   int
	newSecurityCode func() (string, error)
	newCardNumber   func() (string, error)
}

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	repos Repositories,
	hasher auth.PasswordHasher,
	emitter events.EventEmitter,
	log *slog.Logger,
	opts ...Option,
) (CardService, error) {
	required := []struct {
		name  string
		isNil bool
	}{
		{"companies store", repos.Companies == nil},
		{"employees store", repos.Employees == nil},
		{"cards store", repos.Cards == nil},
		{"payments store", repos.Payments == nil},
		{"recharges store", repos.Recharges == nil},
		{"hasher", hasher == nil},
	}
	for _, dep := range required {
		if dep.isNil {
			return nil, NewCardServiceError("create_service", dep.name+" cannot be nil", nil)
		}
	}

	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if log == nil {
		log = slog.Default()
	}

	s := &cardServiceImpl{
		repos:           repos,
		hasher:          hasher,
		emitter:         emitter,
		logger:          log.With(slog.String("component", "card_service")),
		now:             time.Now,
		validityYears:   DefaultValidityYears,
		newSecurityCode: auth.GenerateSecurityCode,
		newCardNumber:   domain.GenerateCardNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateCard implements CardService.
func (s *cardServiceImpl) CreateCard(
	ctx context.Context,
	employeeID int64,
	cardType domain.CardType,
	apiKey string,
) (*IssuedCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.Int64("employee_id", employeeID),
		slog.String("card_type", string(cardType)),
	)

	if _, err := s.repos.Companies.GetByAPIKey(ctx, apiKey); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrCompanyNotFound
		}
		return nil, s.storeFailure(log, "create_card", "failed to look up company", err)
	}

	employee, err := s.repos.Employees.GetByID(ctx, employeeID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrEmployeeNotFound
		}
		return nil, s.storeFailure(log, "create_card", "failed to look up employee", err)
	}

	if !cardType.IsValid() {
		return nil, ErrInvalidCardType
	}

	_, err = s.repos.Cards.GetByTypeAndEmployeeID(ctx, cardType, employeeID)
	switch {
	case err == nil:
		return nil, ErrDuplicateCardType
	case !store.IsNotFoundError(err):
		return nil, s.storeFailure(log, "create_card", "failed to look up existing card", err)
	}

	securityCode, err := s.newSecurityCode()
	if err != nil {
		return nil, s.storeFailure(log, "create_card", "failed to generate security code", err)
	}
	securityCodeHash, err := s.hasher.Hash(securityCode)
	if err != nil {
		return nil, s.storeFailure(log, "create_card", "failed to hash security code", err)
	}

	card, err := s.insertCard(ctx, log, employeeID, employee.FullName, securityCodeHash, cardType)
	if err != nil {
		return nil, err
	}

	log.Info("card created", slog.Int64("card_id", card.ID))
	s.emit(ctx, log, events.CardCreated, card)

	return &IssuedCard{Card: card, SecurityCode: securityCode}, nil
}

// insertCard stores a new card, drawing another number when the generated
// one is already in use.
func (s *cardServiceImpl) insertCard(
	ctx context.Context,
	log *slog.Logger,
	employeeID int64,
	fullName, securityCodeHash string,
	cardType domain.CardType,
) (*domain.Card, error) {
	var insertErr error
	for attempt := 1; attempt <= MaxCardNumberAttempts; attempt++ {
		number, err := s.newCardNumber()
		if err != nil {
			return nil, s.storeFailure(log, "create_card", "failed to generate card number", err)
		}

		card, err := domain.NewCard(
			employeeID,
			number,
			domain.FormatCardholderName(fullName),
			securityCodeHash,
			cardType,
			s.now().AddDate(s.validityYears, 0, 0),
		)
		if err != nil {
			return nil, s.storeFailure(log, "create_card", "failed to build card", err)
		}

		insertErr = s.repos.Cards.Insert(ctx, card)
		switch {
		case insertErr == nil:
			return card, nil
		case errors.Is(insertErr, store.ErrCardNumberExists):
			log.Warn("card number collision, drawing another", slog.Int("attempt", attempt))
			continue
		case errors.Is(insertErr, store.ErrCardTypeExists):
			return nil, ErrDuplicateCardType
		default:
			return nil, s.storeFailure(log, "create_card", "failed to save card", insertErr)
		}
	}
	return nil, s.storeFailure(log, "create_card", "no unused card number found", insertErr)
}

// ActivateCard implements CardService.
func (s *cardServiceImpl) ActivateCard(ctx context.Context, cardID int64, securityCode, password string) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("card_id", cardID))

	card, err := s.getCard(ctx, log, "activate_card", cardID)
	if err != nil {
		return err
	}
	if card.IsActivated() {
		return ErrCardAlreadyActive
	}
	if err := s.checkExpirationDate(card); err != nil {
		return err
	}
	if err := s.compareSecurityCode(card.SecurityCode, securityCode); err != nil {
		return err
	}
	if !domain.IsValidPassword(password) {
		return ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return s.storeFailure(log, "activate_card", "failed to hash password", err)
	}

	if err := s.repos.Cards.Activate(ctx, cardID, hash); err != nil {
		switch {
		case errors.Is(err, store.ErrCardAlreadyActivated):
			return ErrCardAlreadyActive
		case store.IsNotFoundError(err):
			return ErrCardNotFound
		}
		return s.storeFailure(log, "activate_card", "failed to save password", err)
	}

	card.Password = &hash
	card.IsBlocked = false

	log.Info("card activated")
	s.emit(ctx, log, events.CardActivated, card)
	return nil
}

// GetBalance implements CardService.
func (s *cardServiceImpl) GetBalance(ctx context.Context, cardID int64) (*domain.Balance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("card_id", cardID))

	if _, err := s.getCard(ctx, log, "get_balance", cardID); err != nil {
		return nil, err
	}

	payments, err := s.repos.Payments.ListByCardID(ctx, cardID)
	if err != nil {
		return nil, s.storeFailure(log, "get_balance", "failed to list payments", err)
	}
	recharges, err := s.repos.Recharges.ListByCardID(ctx, cardID)
	if err != nil {
		return nil, s.storeFailure(log, "get_balance", "failed to list recharges", err)
	}

	balance := domain.NewBalance(payments, recharges)
	log.Debug("balance computed",
		slog.Int("payments", len(balance.Transactions)),
		slog.Int("recharges", len(balance.Recharges)))
	return balance, nil
}

// BlockCard implements CardService.
func (s *cardServiceImpl) BlockCard(ctx context.Context, cardID int64, password string, isBlocking bool) error {
	operation := "unblock_card"
	alreadyInState := ErrCardAlreadyUnblocked
	eventType := events.CardUnblocked
	if isBlocking {
		operation = "block_card"
		alreadyInState = ErrCardAlreadyBlocked
		eventType = events.CardBlocked
	}

	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.Int64("card_id", cardID),
		slog.String("operation", operation),
	)

	card, err := s.getCard(ctx, log, operation, cardID)
	if err != nil {
		return err
	}
	if err := s.checkExpirationDate(card); err != nil {
		return err
	}
	if card.IsBlocked == isBlocking {
		return alreadyInState
	}
	if card.Password == nil {
		return ErrWrongPassword
	}
	if err := s.checkPassword(*card.Password, password); err != nil {
		return err
	}

	if err := s.repos.Cards.SetBlocked(ctx, cardID, isBlocking); err != nil {
		switch {
		case errors.Is(err, store.ErrCardStateUnchanged):
			return alreadyInState
		case store.IsNotFoundError(err):
			return ErrCardNotFound
		}
		return s.storeFailure(log, operation, "failed to update card", err)
	}

	card.IsBlocked = isBlocking

	log.Info("card block state changed", slog.Bool("is_blocked", isBlocking))
	s.emit(ctx, log, eventType, card)
	return nil
}

// CheckCardUnblocked returns ErrCardBlocked if card cannot be used for purchases.
func CheckCardUnblocked(card *domain.Card) error {
	if card.IsBlocked {
		return ErrCardBlocked
	}
	return nil
}

func (s *cardServiceImpl) getCard(ctx context.Context, log *slog.Logger, operation string, cardID int64) (*domain.Card, error) {
	card, err := s.repos.Cards.GetByID(ctx, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrCardNotFound
		}
		return nil, s.storeFailure(log, operation, "failed to look up card", err)
	}
	return card, nil
}

// checkExpirationDate fails once the card's expiration month has ended.
func (s *cardServiceImpl) checkExpirationDate(card *domain.Card) error {
	if card.IsExpired(s.now()) {
		return ErrCardExpired
	}
	return nil
}

func (s *cardServiceImpl) checkPassword(hash, password string) error {
	if err := s.hasher.Compare(hash, password); err != nil {
		return ErrWrongPassword
	}
	return nil
}

func (s *cardServiceImpl) compareSecurityCode(hash, securityCode string) error {
	if err := s.hasher.Compare(hash, securityCode); err != nil {
		return ErrSecurityCodeInvalid
	}
	return nil
}

// emit publishes a card event. The write already happened, so a failing
// handler is logged and otherwise ignored.
func (s *cardServiceImpl) emit(ctx context.Context, log *slog.Logger, eventType string, card *domain.Card) {
	event := events.NewCardEvent(eventType, card, s.now())
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit card event",
			slog.String("event_type", eventType),
			slog.String("error", redact.Error(err)))
	}
}

func (s *cardServiceImpl) storeFailure(log *slog.Logger, operation, message string, err error) error {
	log.Error(message, slog.String("error", redact.Error(err)))
	return NewCardServiceError(operation, message, err)
}
