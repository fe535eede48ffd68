// Package app provides the orchestration layer for the Stash application.
//
// # Overview
//
// This package wires together configuration, logging, the Record Service
// client, the view state store, the poller and the UI. It is the composition
// root; no record logic lives here.
//
// # Startup Sequence
//
//  1. Load configuration (file, then environment overrides)
//  2. Route the std logger to the diagnostics log file
//  3. Load user preferences (theme, grid columns)
//  4. Build the Record Service client and a fresh state.Store
//  5. Start the poller, which refreshes immediately and then every interval
//  6. Run the TUI and block until the user quits or the context is cancelled
//  7. Stop the poller and close the log file
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()
//	       ├─────> tea.LogToFile()        diagnostics
//	       ├─────> records.NewClient()
//	       ├─────> listsync.New()          Syncer over state.Store
//	       ├─────> StartPoller()           background refresh loop
//	       └─────> ui.Run()                TUI (blocks)
//
//	Poller loop:
//	┌─────────────────────────────────────────┐
//	│  syncer.Refresh()  ─> GET /api/getdata  │
//	│  store.ApplyRefresh()                   │
//	│  wait for tick or cancel                │
//	└─────────────────────────────────────────┘
//
// Submit and delete run from the UI as Bubble Tea commands. Each one ends
// with its own refresh, independent of the poller's schedule.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Malformed configuration file or environment override
//   - Unusable backend URL
//
// Everything else (unreachable service, bad status, undecodable list) is
// logged and turned into a message in the store. Nothing is retried outside
// the regular poll cadence.
//
// # Lifecycle
//
// Exactly one poller exists per run. Its stop function cancels the loop and
// waits for the goroutine to exit, so no refresh outlives the view.
package app
