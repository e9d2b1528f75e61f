package domain

import (
	"errors"
	"strings"
	"time"
)

// Card-specific validation errors
var (
	// ErrCardEmployeeIDEmpty is returned when a card is not bound to an employee.
	ErrCardEmployeeIDEmpty = errors.New("card employee ID cannot be empty")

	// ErrCardNumberInvalid is returned when a card number is not a valid Luhn number.
	ErrCardNumberInvalid = errors.New("card number is invalid")

	// ErrCardholderNameEmpty is returned when the printed cardholder name is empty.
	ErrCardholderNameEmpty = errors.New("cardholder name cannot be empty")

	// ErrCardSecurityCodeEmpty is returned when the security code hash is missing.
	ErrCardSecurityCodeEmpty = errors.New("card security code cannot be empty")

	// ErrCardExpirationEmpty is returned when the expiration date is not set.
	ErrCardExpirationEmpty = errors.New("card expiration date cannot be empty")
)

// CardType is the benefit category a card can be spent on.
type CardType string

// Known benefit categories.
const (
	CardTypeFood      CardType = "food"
	CardTypeMeal      CardType = "meal"
	CardTypeTransport CardType = "transport"
	CardTypeEducation CardType = "education"
	CardTypeHealth    CardType = "health"
)

// CardTypes lists every valid card type.
var CardTypes = []CardType{
	CardTypeFood,
	CardTypeMeal,
	CardTypeTransport,
	CardTypeEducation,
	CardTypeHealth,
}

// IsValid reports whether t is one of the known benefit categories.
func (t CardType) IsValid() bool {
	for _, known := range CardTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseCardType converts a raw string to a CardType.
func ParseCardType(s string) (CardType, error) {
	t := CardType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidCardType
	}
	return t, nil
}

// Card is a virtual benefits card issued to an employee.
// SecurityCode and Password hold bcrypt hashes, never plaintext.
// A nil Password means the card has not been activated yet.
type Card struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	Number         string    `json:"number"`
	CardholderName string    `json:"cardholder_name"`
	SecurityCode   string    `json:"-"`
	ExpirationDate time.Time `json:"expiration_date"`
	Password       *string   `json:"-"`
	IsVirtual      bool      `json:"is_virtual"`
	IsBlocked      bool      `json:"is_blocked"`
	Type           CardType  `json:"type"`
}

// NewCard builds an unactivated, unblocked virtual card.
// The expiration date is truncated to the first day of its month.
func NewCard(
	employeeID int64,
	number, cardholderName, securityCodeHash string,
	cardType CardType,
	expiresAt time.Time,
) (*Card, error) {
	card := &Card{
		EmployeeID:     employeeID,
		Number:         number,
		CardholderName: cardholderName,
		SecurityCode:   securityCodeHash,
		ExpirationDate: FirstOfMonth(expiresAt),
		IsVirtual:      true,
		IsBlocked:      false,
		Type:           cardType,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.EmployeeID <= 0 {
		return ErrCardEmployeeIDEmpty
	}

	if !LuhnValid(c.Number) {
		return ErrCardNumberInvalid
	}

	if strings.TrimSpace(c.CardholderName) == "" {
		return ErrCardholderNameEmpty
	}

	if c.SecurityCode == "" {
		return ErrCardSecurityCodeEmpty
	}

	if c.ExpirationDate.IsZero() {
		return ErrCardExpirationEmpty
	}

	if !c.Type.IsValid() {
		return ErrInvalidCardType
	}

	return nil
}

// IsActivated reports whether a password has been set on the card.
func (c *Card) IsActivated() bool {
	return c.Password != nil && *c.Password != ""
}

// IsExpired reports whether the card is past its expiration month at now.
// Cards are valid through the last instant of the expiration month.
func (c *Card) IsExpired(now time.Time) bool {
	validUntil := FirstOfMonth(c.ExpirationDate).AddDate(0, 1, 0)
	return !now.UTC().Before(validUntil)
}

// ExpirationLabel renders the expiration date the way it is printed on cards (MM/YY).
func (c *Card) ExpirationLabel() string {
	return c.ExpirationDate.UTC().Format("01/06")
}

// FirstOfMonth truncates t to midnight UTC on the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FormatCardholderName derives the printed card name from an employee's full name.
// The first and last names are kept, middle names of three or more letters are
// reduced to their initial, and shorter connectors ("da", "de", "e") are dropped.
func FormatCardholderName(fullName string) string {
	parts := strings.Fields(strings.ToUpper(fullName))
	if len(parts) <= 2 {
		return strings.Join(parts, " ")
	}

	name := make([]string, 0, len(parts))
	name = append(name, parts[0])
	for _, middle := range parts[1 : len(parts)-1] {
		runes := []rune(middle)
		if len(runes) >= 3 {
			name = append(name, string(runes[0]))
		}
	}
	name = append(name, parts[len(parts)-1])

	return strings.Join(name, " ")
}

// PasswordLength is the number of digits in a card password.
const PasswordLength = 4

// IsValidPassword reports whether password is exactly PasswordLength ASCII digits.
func IsValidPassword(password string) bool {
	if len(password) != PasswordLength {
		return false
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
