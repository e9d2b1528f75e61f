package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// cardNumberLength is the length of issued card numbers.
	cardNumberLength = 16

	// cardIssuerPrefix is the issuer identification prefix of issued cards.
	cardIssuerPrefix = "6062"
)

// GenerateCardNumber returns a random 16-digit card number with a valid Luhn check digit.
func GenerateCardNumber() (string, error) {
	var b strings.Builder
	b.WriteString(cardIssuerPrefix)

	ten := big.NewInt(10)
	for b.Len() < cardNumberLength-1 {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate card number digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	partial := b.String()
	return partial + string(rune('0'+luhnCheckDigit(partial))), nil
}

// LuhnValid reports whether number is a non-empty digit string with a valid Luhn checksum.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	last := int(number[len(number)-1] - '0')
	return luhnCheckDigit(number[:len(number)-1]) == last
}

// luhnCheckDigit computes the digit that makes partial+digit Luhn-valid.
func luhnCheckDigit(partial string) int {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
