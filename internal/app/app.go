package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stash/internal/config"
	"github.com/five82/stash/internal/listsync"
	"github.com/five82/stash/internal/prefs"
	"github.com/five82/stash/internal/records"
	"github.com/five82/stash/internal/state"
	"github.com/five82/stash/internal/ui"
)

// Options configure the Stash application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stash/prefs.toml
	LogPath    string // empty uses the configured log file
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the Stash TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(opts.LogPath) != "" {
		cfg.LogFile = opts.LogPath
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := records.NewClient(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("init record client: %w", err)
	}

	store := &state.Store{}
	syncer := listsync.New(client, store, nil)

	interval := cfg.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// The poller is bound to the view: started before the first frame,
	// stopped once the program exits.
	stop := StartPoller(ctx, syncer, interval)
	defer stop()

	uiOpts := ui.Options{
		Context:   ctx,
		Syncer:    syncer,
		Config:    &cfg,
		BaseURL:   client.BaseURL(),
		PollEvery: interval,
		ThemeName: userPrefs.Theme,
		Columns:   userPrefs.Columns,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// setupLogging routes the std logger to path so diagnostics do not draw over
// the TUI. When the file cannot be opened, diagnostics are discarded.
func setupLogging(path string) func() {
	path = strings.TrimSpace(path)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(path, "stash")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { _ = f.Close() }
}
