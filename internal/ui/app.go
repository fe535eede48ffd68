package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stash/internal/config"
	"github.com/five82/stash/internal/listsync"
	"github.com/five82/stash/internal/prefs"
	"github.com/five82/stash/internal/records"
	"github.com/five82/stash/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewRecords View = iota
	ViewLogs
)

// focusArea is the records view pane receiving keys.
type focusArea int

const (
	focusForm focusArea = iota
	focusGrid
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Syncer    *listsync.Syncer
	Config    *config.Config
	BaseURL   string
	PollEvery time.Duration
	ThemeName string
	Columns   int
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	syncer    *listsync.Syncer
	config    *config.Config
	baseURL   string
	prefsPath string
	pollEvery time.Duration
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focus       focusArea
	columns     int // zero fits to width
	showHelp    bool

	// Data state
	snapshot state.Snapshot
	inFlight int // submits, deletes and manual refreshes awaiting completion

	// Form state
	input    textinput.Model
	inputRev uint64

	// Grid state
	selected   int
	selectedID records.RecordID

	// Log state
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	columns := opts.Columns
	if columns < 0 || columns > MaxColumns {
		columns = 0
	}

	ti := textinput.New()
	ti.Placeholder = "Enter data to store"
	ti.Prompt = "› "
	ti.Focus()

	m := Model{
		ctx:         ctx,
		syncer:      opts.Syncer,
		config:      opts.Config,
		baseURL:     opts.BaseURL,
		prefsPath:   prefsPath,
		pollEvery:   opts.PollEvery,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewRecords,
		focus:       focusForm,
		columns:     columns,
		input:       ti,
	}
	if m.syncer != nil {
		m.snapshot = m.syncer.Store().Snapshot()
		m.inputRev = m.snapshot.InputRev
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tickCmd(DefaultUIInterval),
	}
	if m.syncer != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.syncer.Store()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(10, m.width-8)
		m.resizeLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case opDoneMsg:
		if m.inFlight > 0 {
			m.inFlight--
		}
		m.applySnapshot(msg.snapshot)
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		cmd := m.toggleFocus()
		return m, cmd
	}

	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleFormKey sends keys to the text input; only enter and esc are
// intercepted so every printable key can be typed.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.syncer == nil {
			return m, nil
		}
		m.inFlight++
		return m, submitCmd(m.ctx, m.syncer, m.input.Value())

	case key.Matches(msg, m.keys.Escape):
		cmd := m.toggleFocus()
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before && m.syncer != nil {
		m.inputRev = m.syncer.SetInput(after)
	}
	return m, cmd
}

// handleGridKey processes keyboard input while the record grid has focus.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleColumns):
		m.columns = (m.columns + 1) % (MaxColumns + 1)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, m.readLogsCmd()

	case key.Matches(msg, m.keys.Escape):
		cmd := m.toggleFocus()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		if m.syncer == nil {
			return m, nil
		}
		m.inFlight++
		return m, refreshCmd(m.ctx, m.syncer)

	case key.Matches(msg, m.keys.Delete):
		rec := m.selectedRecord()
		if rec == nil || m.syncer == nil {
			return m, nil
		}
		m.inFlight++
		return m, deleteCmd(m.ctx, m.syncer, rec.ID)
	}

	m.moveSelection(msg)
	return m, nil
}

// handleLogsKey processes keyboard input for the diagnostics log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ViewLogs), msg.String() == "q":
		m.currentView = ViewRecords
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// toggleFocus switches between the form and the grid.
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusForm {
		m.focus = focusGrid
		m.input.Blur()
		return nil
	}
	m.focus = focusForm
	return m.input.Focus()
}

// applySnapshot installs a store snapshot. The form text is only taken from
// the snapshot when it is newer than the last keystroke written to the store.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.InputRev > m.inputRev {
		m.input.SetValue(snap.Input)
		m.inputRev = snap.InputRev
	}
	m.clampSelection()
}

// handleTick processes the repaint tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.syncer != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.syncer.Store()))
	}
	if m.currentView == ViewLogs {
		cmds = append(cmds, m.readLogsCmd())
	}
	cmds = append(cmds, tickCmd(DefaultUIInterval))
	return m, tea.Batch(cmds...)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Columns: m.columns})
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderForm())
		b.WriteString("\n")
		b.WriteString(m.renderMessage())
		b.WriteString("\n")
		b.WriteString(m.renderGrid())
	}
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// opDoneMsg reports that a user-triggered operation finished.
type opDoneMsg struct {
	snapshot state.Snapshot
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func submitCmd(ctx context.Context, s *listsync.Syncer, text string) tea.Cmd {
	return func() tea.Msg {
		s.Submit(ctx, text)
		return opDoneMsg{snapshot: s.Store().Snapshot()}
	}
}

func deleteCmd(ctx context.Context, s *listsync.Syncer, id records.RecordID) tea.Cmd {
	return func() tea.Msg {
		s.Delete(ctx, id)
		return opDoneMsg{snapshot: s.Store().Snapshot()}
	}
}

func refreshCmd(ctx context.Context, s *listsync.Syncer) tea.Cmd {
	return func() tea.Msg {
		s.Refresh(ctx)
		return opDoneMsg{snapshot: s.Store().Snapshot()}
	}
}

// Run starts the Bubble Tea program. Cancelling the options context ends the
// program without an error.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
