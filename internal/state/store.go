package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/stash/internal/records"
)

// Snapshot represents the latest view state available to the UI.
type Snapshot struct {
	Input               string
	InputRev            uint64 // bumped on every change to Input
	Records             []records.Record
	HasRecords          bool // true once any list request has succeeded
	ErrorMessage        string
	SuccessMessage      string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed list requests
}

// IsOffline returns true when the service has been unreachable for multiple refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. Each method replaces
// one field group under the lock so readers never see a partial update.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	issued   uint64 // last refresh sequence handed out
	applied  uint64 // last refresh sequence whose outcome was applied
}

// BeginRefresh reserves a sequence number for a list request about to be issued.
func (s *Store) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ApplyRefresh records the outcome of the list request with sequence seq.
// Outcomes of requests issued before one that was already applied are
// dropped, so a slow response cannot overwrite a newer list. It reports
// whether the outcome was applied.
func (s *Store) ApplyRefresh(seq uint64, list []records.Record, err error, errMsg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		s.snapshot.ErrorMessage = errMsg
		s.snapshot.SuccessMessage = ""
		return true
	}

	s.snapshot.Records = cloneRecords(list)
	s.snapshot.HasRecords = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.ErrorMessage = ""
	return true
}

// SetInput replaces the pending form text and returns the new revision.
func (s *Store) SetInput(text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Input = text
	s.snapshot.InputRev++
	return s.snapshot.InputRev
}

// ClearSuccess drops the success message, as when a new submission starts.
func (s *Store) ClearSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SuccessMessage = ""
}

// Succeed sets the success message and clears the error message. When
// clearInput is set the form text is emptied in the same update.
func (s *Store) Succeed(msg string, clearInput bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SuccessMessage = msg
	s.snapshot.ErrorMessage = ""
	if clearInput {
		s.snapshot.Input = ""
		s.snapshot.InputRev++
	}
}

// Fail sets the error message and clears the success message.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ErrorMessage = msg
	s.snapshot.SuccessMessage = ""
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(items []records.Record) []records.Record {
	if len(items) == 0 {
		return []records.Record{}
	}
	dup := make([]records.Record, len(items))
	copy(dup, items)
	return dup
}
