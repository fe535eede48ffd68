// Package ui provides the terminal user interface for Stash.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds a copy of the latest
// state.Snapshot and renders it; it never talks to the Record Service
// directly. Operations go through listsync.Syncer as tea.Cmds, and each one
// finishes with an opDoneMsg carrying a fresh snapshot.
//
// # Layout
//
//   - Header: service address, record count, last update, OFFLINE badge
//   - Command bar: key hints for the focused pane
//   - Form: a single text input with a "Store Data" action
//   - Message line: the success or error message, never both
//   - Grid: one card per record in the order the service returned them
//
// The l key swaps the form and grid for a tail of the diagnostics log.
//
// # Focus
//
// Tab toggles between the form and the grid. While the form is focused every
// printable key is typed into the input, so grid shortcuts only apply when
// the grid has focus. ctrl+c always quits.
//
// # Input Ownership
//
// Every keystroke is written to the store with state.Store.SetInput, which
// returns a revision. A snapshot only replaces the input text when its
// revision is newer, so a repaint from a snapshot taken mid-typing cannot
// undo keystrokes. A successful store clears the input by bumping the
// revision in the store.
//
// # Refresh
//
// A 1s tick re-reads the store so poller refreshes show up without any user
// input. The poller itself lives in package app.
package ui
