// Package domain contains the benefit card entities (companies, employees,
// cards, payments and recharges) together with the pure rules that apply to
// them: card type parsing, cardholder name formatting, card number checksums,
// expiration and balance arithmetic. It has no knowledge of storage or HTTP.
package domain
