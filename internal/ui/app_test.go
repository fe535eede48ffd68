package ui

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stash/internal/listsync"
	"github.com/five82/stash/internal/prefs"
	"github.com/five82/stash/internal/records"
	"github.com/five82/stash/internal/records/recordstest"
	"github.com/five82/stash/internal/state"
)

func newTestModel(t *testing.T, seed ...recordstest.Item) (Model, *recordstest.Server, *listsync.Syncer) {
	t.Helper()
	srv := recordstest.NewServer(seed...)
	t.Cleanup(srv.Close)

	client, err := records.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	syncer := listsync.New(client, &state.Store{}, log.New(io.Discard, "", 0))

	m := New(Options{
		Syncer:    syncer,
		BaseURL:   client.BaseURL(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	return m, srv, syncer
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// press sends a key without running the command it returns.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	return update(t, m, k)
}

// run sends a key that starts an operation, runs the command and feeds the
// completion back into the model.
func run(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("key %q started no command", k.String())
	}
	done, ok := cmd().(opDoneMsg)
	if !ok {
		t.Fatalf("key %q did not finish with opDoneMsg", k.String())
	}
	return update(t, m, done)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func refresh(t *testing.T, m Model, syncer *listsync.Syncer) Model {
	t.Helper()
	syncer.Refresh(context.Background())
	return update(t, m, fetchSnapshotCmd(syncer.Store())())
}

func TestTypingUpdatesStore(t *testing.T) {
	m, _, syncer := newTestModel(t)

	m = typeText(t, m, "hello")

	if got := m.input.Value(); got != "hello" {
		t.Fatalf("input = %q, want hello", got)
	}
	if got := syncer.Store().Snapshot().Input; got != "hello" {
		t.Fatalf("store input = %q, want hello", got)
	}
}

func TestStaleSnapshotDoesNotRevertInput(t *testing.T) {
	m, _, syncer := newTestModel(t)

	m = typeText(t, m, "ab")
	stale := syncer.Store().Snapshot()
	m = typeText(t, m, "cd")

	m = update(t, m, snapshotMsg(stale))

	if got := m.input.Value(); got != "abcd" {
		t.Fatalf("input = %q, want abcd", got)
	}
}

func TestEnterStoresAndClearsInput(t *testing.T) {
	m, srv, _ := newTestModel(t)

	m = typeText(t, m, "hello")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got != "" {
		t.Fatalf("input = %q, want empty", got)
	}
	if m.snapshot.SuccessMessage != listsync.MsgStored {
		t.Fatalf("success = %q, want %q", m.snapshot.SuccessMessage, listsync.MsgStored)
	}
	if len(m.snapshot.Records) != 1 || m.snapshot.Records[0].Data != "hello" {
		t.Fatalf("records = %+v, want one record with hello", m.snapshot.Records)
	}
	if len(srv.Items()) != 1 {
		t.Fatalf("server items = %d, want 1", len(srv.Items()))
	}
	if m.inFlight != 0 {
		t.Fatalf("inFlight = %d, want 0", m.inFlight)
	}
	if view := m.View(); !strings.Contains(view, listsync.MsgStored) {
		t.Fatalf("view missing success message")
	}
}

func TestEnterOnBlankInputShowsError(t *testing.T) {
	m, srv, _ := newTestModel(t)

	m = typeText(t, m, "   ")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.snapshot.ErrorMessage != listsync.MsgInputEmpty {
		t.Fatalf("error = %q, want %q", m.snapshot.ErrorMessage, listsync.MsgInputEmpty)
	}
	if got := srv.Calls("store"); got != 0 {
		t.Fatalf("store calls = %d, want 0", got)
	}
	if view := m.View(); !strings.Contains(view, listsync.MsgInputEmpty) {
		t.Fatalf("view missing error message")
	}
}

func TestTabTogglesFocus(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusGrid {
		t.Fatalf("focus = %v, want grid", m.focus)
	}
	// Grid shortcuts are not typed into the form.
	m = press(t, m, runes("r"))
	if m.input.Value() != "" {
		t.Fatalf("input = %q, want empty while grid focused", m.input.Value())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusForm {
		t.Fatalf("focus = %v, want form", m.focus)
	}
	m = press(t, m, runes("d"))
	if m.input.Value() != "d" {
		t.Fatalf("input = %q, want d", m.input.Value())
	}
}

func TestQuitKeyOnlyInGrid(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, runes("e"))
	if m.input.Value() != "e" {
		t.Fatalf("input = %q, want e typed into the form", m.input.Value())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(runes("e"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDeleteSelectedRecord(t *testing.T) {
	m, srv, syncer := newTestModel(t,
		recordstest.Item{ID: 1, Data: "first"},
		recordstest.Item{ID: 2, Data: "second"},
	)
	m = refresh(t, m, syncer)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, runes("j"))
	if rec := m.selectedRecord(); rec == nil || rec.ID != "2" {
		t.Fatalf("selected = %+v, want id 2", rec)
	}

	m = run(t, m, runes("d"))

	items := srv.Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("server items = %+v, want only id 1", items)
	}
	if m.snapshot.SuccessMessage != listsync.MsgDeleted {
		t.Fatalf("success = %q, want %q", m.snapshot.SuccessMessage, listsync.MsgDeleted)
	}
	if rec := m.selectedRecord(); rec == nil || rec.ID != "1" {
		t.Fatalf("selected = %+v, want clamp to id 1", rec)
	}
}

func TestDeleteFailureShowsError(t *testing.T) {
	m, srv, syncer := newTestModel(t, recordstest.Item{ID: 1, Data: "first"})
	m = refresh(t, m, syncer)
	srv.FailDelete(true)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = run(t, m, runes("x"))

	if m.snapshot.ErrorMessage != listsync.MsgDeleteFailed {
		t.Fatalf("error = %q, want %q", m.snapshot.ErrorMessage, listsync.MsgDeleteFailed)
	}
	if len(m.snapshot.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(m.snapshot.Records))
	}
}

func TestSelectionFollowsRecordID(t *testing.T) {
	m, _, syncer := newTestModel(t,
		recordstest.Item{ID: 1, Data: "one"},
		recordstest.Item{ID: 2, Data: "two"},
		recordstest.Item{ID: 3, Data: "three"},
	)
	m = refresh(t, m, syncer)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	if m.selectedID != "3" {
		t.Fatalf("selectedID = %q, want 3", m.selectedID)
	}

	// Another client removes the first record.
	syncer.Delete(context.Background(), "1")
	m = update(t, m, fetchSnapshotCmd(syncer.Store())())

	if m.selectedID != "3" || m.selected != 1 {
		t.Fatalf("selection = %d/%q, want 1/3", m.selected, m.selectedID)
	}
}

func TestOfflineBadge(t *testing.T) {
	m, srv, syncer := newTestModel(t, recordstest.Item{ID: 1, Data: "one"})
	m = refresh(t, m, syncer)

	srv.FailList(true)
	m = refresh(t, m, syncer)
	if strings.Contains(m.View(), "OFFLINE") {
		t.Fatalf("badge shown after a single failure")
	}
	m = refresh(t, m, syncer)

	view := m.View()
	if !strings.Contains(view, "OFFLINE") {
		t.Fatalf("view missing OFFLINE badge")
	}
	if !strings.Contains(view, listsync.MsgFetchFailed) {
		t.Fatalf("view missing fetch failure message")
	}
	// The last good list stays on screen.
	if !strings.Contains(view, "one") {
		t.Fatalf("view dropped last known records")
	}
}

func TestCycleColumnsSavesPrefs(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, runes("c"))
	if m.columns != 1 {
		t.Fatalf("columns = %d, want 1", m.columns)
	}
	for i := 0; i < MaxColumns; i++ {
		m = press(t, m, runes("c"))
	}
	if m.columns != 0 {
		t.Fatalf("columns = %d, want wrap to 0", m.columns)
	}
}

func TestWidestColumnChoiceSurvivesReload(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < MaxColumns; i++ {
		m = press(t, m, runes("c"))
	}
	if m.columns != MaxColumns {
		t.Fatalf("columns = %d, want %d", m.columns, MaxColumns)
	}

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Columns != MaxColumns {
		t.Fatalf("saved columns = %d, want %d", saved.Columns, MaxColumns)
	}
}

func TestGridColumns(t *testing.T) {
	cases := []struct {
		width, pref, want int
	}{
		{0, 0, 1},
		{20, 0, 1},
		{100, 0, 3},
		{100, 2, 2},
		{100, 6, 6},
		{30, 6, 1},
	}
	for _, tc := range cases {
		if got := gridColumns(tc.width, tc.pref); got != tc.want {
			t.Fatalf("gridColumns(%d, %d) = %d, want %d", tc.width, tc.pref, got, tc.want)
		}
	}
}

func TestVisibleRows(t *testing.T) {
	cases := []struct {
		selected, total, fit int
		start, end           int
	}{
		{0, 0, 3, 0, 0},
		{0, 2, 3, 0, 2},
		{0, 10, 3, 0, 3},
		{2, 10, 3, 0, 3},
		{5, 10, 3, 3, 6},
		{9, 10, 3, 7, 10},
	}
	for _, tc := range cases {
		start, end := visibleRows(tc.selected, tc.total, tc.fit)
		if start != tc.start || end != tc.end {
			t.Fatalf("visibleRows(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tc.selected, tc.total, tc.fit, start, end, tc.start, tc.end)
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct{ msg, want string }{
		{"dial tcp: connection refused", "OFFLINE"},
		{"lookup nope: no such host", "HOST NOT FOUND"},
		{"context deadline exceeded", "TIMEOUT"},
		{"api GET /api/getdata returned status 503 (x)", "BAD STATUS"},
		{"decode response (request x): unexpected EOF", "BAD RESPONSE"},
		{"something else", "ERROR"},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(errString(tc.msg)); got != tc.want {
			t.Fatalf("classifyConnectionError(%q) = %q, want %q", tc.msg, got, tc.want)
		}
	}
	if got := classifyConnectionError(nil); got != "" {
		t.Fatalf("classifyConnectionError(nil) = %q, want empty", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
