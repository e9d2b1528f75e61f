// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver.
//
// Stores accept a store.DBTX so they run against a pool or a transaction.
// Database errors are mapped to store sentinels (see MapError); card
// activation and blocking are single conditional UPDATE statements.
//
// The schema lives in the embedded migrations directory and is applied with
// goose (see Migrations).
package postgres
