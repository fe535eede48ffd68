// Package config handles loading Stash configuration.
//
// # Overview
//
// Stash needs one value to do its job, the Record Service base URL, plus two
// optional knobs: the refresh cadence and where diagnostics are written.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/stash/config.toml)
//  3. Environment overrides (STASH_BACKEND_URL, STASH_POLL_SECONDS)
//
// A missing file is not an error. A malformed file is, as is a non-numeric
// STASH_POLL_SECONDS. Blank values in the file fall back to defaults.
//
// The entry point loads a .env file from the working directory before calling
// Load, so the environment overrides can also live there.
//
// # Default Values
//
//   - Config file: ~/.config/stash/config.toml
//   - Backend URL: http://127.0.0.1:5000
//   - Poll interval: 5 seconds
//   - Log file: ~/.local/state/stash/stash.log
//
// # File Format
//
//	backend_url = "http://records.internal:5000"
//	poll_seconds = 5
//	log_file = "~/.local/state/stash/stash.log"
package config
