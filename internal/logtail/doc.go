// Package logtail reads the tail of Stash's diagnostics log.
//
// # Overview
//
// Stash logs every failed Record Service call to a file (the terminal is busy
// with the UI). The log view in the TUI shows the last few hundred lines of
// that file, re-read on every UI tick.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays bounded by the window size rather than the file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//	if err != nil {
//		return err
//	}
//
// A missing file is treated as empty; the log file is only created once the
// first diagnostic is written.
//
// # Severity
//
// Classify gives the UI a coarse level for colouring. The std logger adds no
// level prefix, so the guess is based on wording ("failed", "error", "warn").
package logtail
