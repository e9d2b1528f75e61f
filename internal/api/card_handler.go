package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/benefit-cards/internal/api/shared"
	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/platform/logger"
	"github.com/phrazzld/benefit-cards/internal/service"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if cardService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardService cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /api/cards requests.
// The company is identified by the API key placed in the context by RequireAPIKey.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "API key is required")
		return
	}

	var req CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cardType, err := domain.ParseCardType(req.Type)
	if err != nil {
		HandleAPIError(w, r, service.ErrInvalidCardType, "")
		return
	}

	issued, err := h.cardService.CreateCard(r.Context(), req.EmployeeID, cardType, apiKey)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create card")
		return
	}

	log.Debug("card created",
		slog.Int64("card_id", issued.Card.ID),
		slog.Int64("employee_id", req.EmployeeID))
	shared.RespondWithJSON(w, r, http.StatusCreated, newCreateCardResponse(issued.Card, issued.SecurityCode))
}

// ActivateCard handles PATCH /api/cards/{id}/activate requests.
func (h *CardHandler) ActivateCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ActivateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.cardService.ActivateCard(r.Context(), cardID, req.SecurityCode, req.Password); err != nil {
		HandleAPIError(w, r, err, "Failed to activate card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBalance handles GET /api/cards/{id}/balance requests.
func (h *CardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	balance, err := h.cardService.GetBalance(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get balance")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBalanceResponse(balance))
}

// BlockCard handles PATCH /api/cards/{id}/block requests.
func (h *CardHandler) BlockCard(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

// UnblockCard handles PATCH /api/cards/{id}/unblock requests.
func (h *CardHandler) UnblockCard(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *CardHandler) setBlocked(w http.ResponseWriter, r *http.Request, isBlocking bool) {
	cardID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req BlockCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.cardService.BlockCard(r.Context(), cardID, req.Password, isBlocking); err != nil {
		HandleAPIError(w, r, err, "Failed to update card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
