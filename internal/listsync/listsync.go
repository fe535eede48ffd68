// Package listsync keeps the view state in step with the Record Service.
package listsync

import (
	"context"
	"log"
	"strings"

	"github.com/five82/stash/internal/records"
	"github.com/five82/stash/internal/state"
)

// User-facing messages.
const (
	MsgFetchFailed  = "Failed to fetch data. Please try again later."
	MsgInputEmpty   = "Input is empty. Please provide valid data."
	MsgStored       = "Data stored successfully."
	MsgStoreFailed  = "Failed to store data. Please try again later."
	MsgDeleted      = "Data deleted successfully."
	MsgDeleteFailed = "Failed to delete data. Please try again later."
)

// Syncer performs the list view's operations. Every method may be called
// from any goroutine; calls are not serialised against each other.
type Syncer struct {
	service records.Service
	store   *state.Store
	logger  *log.Logger
}

// New returns a Syncer writing to store. A nil logger uses the standard logger.
func New(service records.Service, store *state.Store, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{service: service, store: store, logger: logger}
}

// Store returns the state container the Syncer writes to.
func (s *Syncer) Store() *state.Store {
	return s.store
}

// Refresh re-fetches the full record list. On failure the current records
// are kept and the fetch error message is shown until the next success.
func (s *Syncer) Refresh(ctx context.Context) {
	seq := s.store.BeginRefresh()
	list, err := s.service.List(ctx)
	if err != nil {
		s.logger.Printf("fetch records failed: %v", err)
		s.store.ApplyRefresh(seq, nil, err, MsgFetchFailed)
		return
	}
	s.store.ApplyRefresh(seq, list, nil, "")
}

// SetInput records the current form text.
func (s *Syncer) SetInput(text string) uint64 {
	return s.store.SetInput(text)
}

// Submit stores text as a new record. Blank text is rejected locally. The raw
// text is sent as typed; only the emptiness check trims it.
func (s *Syncer) Submit(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		s.store.Fail(MsgInputEmpty)
		return
	}
	s.store.ClearSuccess()

	if err := s.service.Create(ctx, text); err != nil {
		s.logger.Printf("store record failed: %v", err)
		s.store.Fail(MsgStoreFailed)
		return
	}
	s.store.Succeed(MsgStored, true)
	s.Refresh(ctx)
}

// Delete removes the record with id. There is no local existence check and
// no optimistic removal; the row goes away when a refresh no longer lists it.
func (s *Syncer) Delete(ctx context.Context, id records.RecordID) {
	if err := s.service.Delete(ctx, id); err != nil {
		s.logger.Printf("delete record %s failed: %v", id, err)
		s.store.Fail(MsgDeleteFailed)
		return
	}
	s.store.Succeed(MsgDeleted, false)
	s.Refresh(ctx)
}
