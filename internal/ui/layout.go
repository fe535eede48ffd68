package ui

import (
	"time"

	"github.com/five82/stash/internal/prefs"
)

// Grid geometry.
const (
	// MinCardWidth is the narrowest card the fit-to-width layout allows.
	MinCardWidth = 26

	// CardTextLines is how many lines of record text a card shows.
	CardTextLines = 3

	// cardHeight is the rendered card height: text, id line, two borders.
	cardHeight = CardTextLines + 1 + 2

	// MaxColumns caps the column preference cycle at what prefs will load.
	MaxColumns = prefs.MaxColumns
)

// Screen rows used outside the grid: header, command bar, form box (3),
// message line.
const chromeHeight = 1 + 1 + 3 + 1

// Log display limits.
const (
	// LogTailLines is how many diagnostics lines the log view keeps.
	LogTailLines = 400
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI repaints from the store.
	DefaultUIInterval = time.Second
)
