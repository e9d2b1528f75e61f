package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a purchase made with a card at a business.
// Payments are written by the purchase flow and are read-only here.
type Payment struct {
	ID           int64           `json:"id"`
	CardID       int64           `json:"card_id"`
	BusinessID   int64           `json:"business_id"`
	BusinessName string          `json:"business_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Recharge is a credit loaded onto a card by its company.
type Recharge struct {
	ID        int64           `json:"id"`
	CardID    int64           `json:"card_id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// Balance is the net value available on a card together with the records it was computed from.
type Balance struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []*Payment      `json:"transactions"`
	Recharges    []*Recharge     `json:"recharges"`
}

// NewBalance sums recharges and subtracts payments.
// Nil slices are normalized to empty ones so callers always get a list.
func NewBalance(payments []*Payment, recharges []*Recharge) *Balance {
	if payments == nil {
		payments = []*Payment{}
	}
	if recharges == nil {
		recharges = []*Recharge{}
	}

	total := decimal.Zero
	for _, r := range recharges {
		total = total.Add(r.Amount)
	}
	for _, p := range payments {
		total = total.Sub(p.Amount)
	}

	return &Balance{
		Balance:      total,
		Transactions: payments,
		Recharges:    recharges,
	}
}
