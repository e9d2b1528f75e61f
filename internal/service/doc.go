// Package service contains the card lifecycle use cases: issuing a card to an
// employee, activating it, computing its balance and blocking or unblocking it.
//
// Each operation is a short validation pipeline followed by at most one write.
// Business rule violations are reported as *Error values carrying a Kind
// (not_found, conflict, forbidden, bad_request) that delivery layers map to
// their own status codes. Unexpected store failures are wrapped in
// *CardServiceError and must be treated as internal errors.
//
// The service depends only on the store interfaces and the auth hasher, never
// on a concrete database.
package service
