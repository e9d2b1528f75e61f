package api

import (
	"time"

	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateCardRequest is the payload of POST /api/cards.
// Type is parsed with domain.ParseCardType, which ignores case and surrounding spaces.
type CreateCardRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Type       string `json:"type"        validate:"required"`
}

// ActivateCardRequest is the payload of PATCH /api/cards/{id}/activate.
type ActivateCardRequest struct {
	SecurityCode string `json:"security_code" validate:"required,len=3,numeric"`
	Password     string `json:"password"      validate:"required,len=4,numeric"`
}

// BlockCardRequest is the payload of the block and unblock endpoints.
// The password is only compared, so its format is not validated here.
type BlockCardRequest struct {
	Password string `json:"password" validate:"required"`
}

// CreateCardResponse is returned once when a card is issued. It is the only
// response that carries the plaintext security code.
type CreateCardResponse struct {
	ID             int64           `json:"id"`
	Number         string          `json:"number"`
	CardholderName string          `json:"cardholder_name"`
	ExpirationDate string          `json:"expiration_date"`
	SecurityCode   string          `json:"security_code"`
	Type           domain.CardType `json:"type"`
}

// PaymentResponse is a payment in a balance response.
type PaymentResponse struct {
	ID           int64           `json:"id"`
	BusinessID   int64           `json:"business_id"`
	BusinessName string          `json:"business_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
}

// RechargeResponse is a recharge in a balance response.
type RechargeResponse struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// BalanceResponse is returned by GET /api/cards/{id}/balance.
type BalanceResponse struct {
	Balance      decimal.Decimal    `json:"balance"`
	Transactions []PaymentResponse  `json:"transactions"`
	Recharges    []RechargeResponse `json:"recharges"`
}

func newCreateCardResponse(card *domain.Card, securityCode string) CreateCardResponse {
	return CreateCardResponse{
		ID:             card.ID,
		Number:         card.Number,
		CardholderName: card.CardholderName,
		ExpirationDate: card.ExpirationLabel(),
		SecurityCode:   securityCode,
		Type:           card.Type,
	}
}

func newBalanceResponse(balance *domain.Balance) BalanceResponse {
	resp := BalanceResponse{
		Balance:      balance.Balance,
		Transactions: make([]PaymentResponse, 0, len(balance.Transactions)),
		Recharges:    make([]RechargeResponse, 0, len(balance.Recharges)),
	}
	for _, p := range balance.Transactions {
		resp.Transactions = append(resp.Transactions, PaymentResponse{
			ID:           p.ID,
			BusinessID:   p.BusinessID,
			BusinessName: p.BusinessName,
			Amount:       p.Amount,
			Timestamp:    p.Timestamp,
		})
	}
	for _, rc := range balance.Recharges {
		resp.Recharges = append(resp.Recharges, RechargeResponse{
			ID:        rc.ID,
			Amount:    rc.Amount,
			Timestamp: rc.Timestamp,
		})
	}
	return resp
}
