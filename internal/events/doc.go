// Package events publishes card lifecycle events (issued, activated, blocked,
// unblocked) to handlers registered in the same process.
//
// Emission is synchronous and happens after the corresponding write has been
// stored. Handler failures are logged and reported to the caller but never
// undo the write.
package events
