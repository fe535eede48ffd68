// Package state provides thread-safe view state for the Stash application.
//
// # Overview
//
// The Store holds everything the list view displays: the pending form text,
// the record list from the last applied refresh, and the two status messages.
// Refreshes triggered by the poller and by user actions complete on their own
// goroutines and all write here; the UI only ever reads copies.
//
//	poller tick ──┐
//	submit ───────┼──> listsync ──> Store (mutex) ──> Snapshot() ──> UI
//	delete ───────┘
//
// # Field Groups
//
// Each Store method replaces one group of fields under the write lock:
//
//   - ApplyRefresh: records, HasRecords, LastError, failure counter, messages
//   - SetInput: Input and InputRev
//   - Succeed / Fail / ClearSuccess: the message pair (and Input on a
//     successful submission)
//
// Succeed and Fail always clear the other message, so after any operation at
// most one of ErrorMessage and SuccessMessage is set. A successful refresh
// clears ErrorMessage but leaves SuccessMessage, so "stored" and "deleted"
// confirmations survive the refresh that follows them.
//
// # Refresh Ordering
//
// List requests may overlap. BeginRefresh hands out increasing sequence
// numbers at issue time and ApplyRefresh drops any outcome older than one
// already applied. Records therefore always reflect the newest issued request
// that has completed, never a slow response that lost the race.
//
// # Input Revisions
//
// The form text lives in two places: the text input widget and the Store.
// InputRev increases on every change so the UI can tell whether a snapshot's
// Input is newer than what it last wrote (for example the clear after a
// successful submission) or a stale copy taken before the latest keystroke.
//
// # Defensive Copying
//
// Snapshot clones the record slice and wraps LastError so callers can hold
// on to a snapshot while the store keeps changing.
package state
