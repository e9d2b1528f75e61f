// Package store defines the persistence contracts used by the card lifecycle
// service: lookups of companies and employees, card reads and conditional card
// writes, and read-only access to card payments and recharges. Implementations
// live in internal/platform/postgres.
package store
