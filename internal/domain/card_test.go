package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNumber = "4539578763621486"

func TestNewCard(t *testing.T) {
	t.Parallel()

	expires := time.Date(2031, time.March, 17, 15, 4, 5, 0, time.UTC)

	card, err := NewCard(1, validNumber, "JANE DOE", "$2a$10$hash", CardTypeFood, expires)
	require.NoError(t, err)

	assert.Equal(t, int64(1), card.EmployeeID)
	assert.Equal(t, CardTypeFood, card.Type)
	assert.Equal(t, "JANE DOE", card.CardholderName)
	assert.True(t, card.IsVirtual)
	assert.False(t, card.IsBlocked)
	assert.Nil(t, card.Password)
	assert.False(t, card.IsActivated())
	assert.Equal(t, time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC), card.ExpirationDate)
	assert.Equal(t, "03/31", card.ExpirationLabel())
}

func TestNewCard_Validation(t *testing.T) {
	t.Parallel()

	expires := time.Now().AddDate(5, 0, 0)

	tests := []struct {
		name       string
		employeeID int64
		number     string
		holder     string
		code       string
		cardType   CardType
		expires    time.Time
		wantErr    error
	}{
		{"missing employee", 0, validNumber, "JANE DOE", "hash", CardTypeFood, expires, ErrCardEmployeeIDEmpty},
		{"bad checksum", 1, "4539578763621487", "JANE DOE", "hash", CardTypeFood, expires, ErrCardNumberInvalid},
		{"non digits", 1, "4539-5787-6362-1486", "JANE DOE", "hash", CardTypeFood, expires, ErrCardNumberInvalid},
		{"empty name", 1, validNumber, "  ", "hash", CardTypeFood, expires, ErrCardholderNameEmpty},
		{"empty code", 1, validNumber, "JANE DOE", "", CardTypeFood, expires, ErrCardSecurityCodeEmpty},
		{"unknown type", 1, validNumber, "JANE DOE", "hash", CardType("fuel"), expires, ErrInvalidCardType},
		{"zero expiry", 1, validNumber, "JANE DOE", "hash", CardTypeFood, time.Time{}, ErrCardExpirationEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.employeeID, tt.number, tt.holder, tt.code, tt.cardType, tt.expires)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCardType(t *testing.T) {
	t.Parallel()

	for _, ct := range CardTypes {
		got, err := ParseCardType(string(ct))
		require.NoError(t, err)
		assert.Equal(t, ct, got)
	}

	got, err := ParseCardType(" Transport ")
	require.NoError(t, err)
	assert.Equal(t, CardTypeTransport, got)

	_, err = ParseCardType("fuel")
	assert.ErrorIs(t, err, ErrInvalidCardType)

	_, err = ParseCardType("")
	assert.ErrorIs(t, err, ErrInvalidCardType)
}

func TestCard_IsExpired(t *testing.T) {
	t.Parallel()

	card := &Card{ExpirationDate: time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before expiry", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), false},
		{"first day of expiry month", time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC), false},
		{"last instant of expiry month", time.Date(2030, time.June, 30, 23, 59, 59, 0, time.UTC), false},
		{"first day after expiry month", time.Date(2030, time.July, 1, 0, 0, 0, 0, time.UTC), true},
		{"years later", time.Date(2035, time.January, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.IsExpired(tt.now))
		})
	}
}

func TestCard_IsActivated(t *testing.T) {
	t.Parallel()

	card := &Card{}
	assert.False(t, card.IsActivated())

	empty := ""
	card.Password = &empty
	assert.False(t, card.IsActivated())

	hash := "$2a$10$hash"
	card.Password = &hash
	assert.True(t, card.IsActivated())
}

func TestFormatCardholderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "JANE DOE"},
		{"jane", "JANE"},
		{"  Jane   Doe  ", "JANE DOE"},
		{"Fulano Rubens da Silva", "FULANO R SILVA"},
		{"Maria Eduarda de Souza e Santos", "MARIA E S SANTOS"},
		{"Ana Lúcia Ávila Prado", "ANA L Á PRADO"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCardholderName(tt.in))
		})
	}
}

func TestGenerateCardNumber(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number, err := GenerateCardNumber()
		require.NoError(t, err)
		assert.Len(t, number, 16)
		assert.True(t, LuhnValid(number), "generated number %s must pass Luhn", number)
		assert.Equal(t, "6062", number[:4])
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestLuhnValid(t *testing.T) {
	t.Parallel()

	assert.True(t, LuhnValid(validNumber))
	assert.True(t, LuhnValid("79927398713"))
	assert.False(t, LuhnValid("79927398710"))
	assert.False(t, LuhnValid("7"))
	assert.False(t, LuhnValid(""))
	assert.False(t, LuhnValid("abcd"))
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{"١٢٣٤", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.in))
		})
	}
}
