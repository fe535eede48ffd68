// Package recordstest provides an in-memory Record Service for tests.
package recordstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
)

// Item is a stored record as served by the fake.
type Item struct {
	ID   int64  `json:"id"`
	Data string `json:"data"`
}

// Server is an httptest-backed Record Service with integer ids assigned in
// insertion order. Individual endpoints can be switched to fail.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	items      []Item
	nextID     int64
	failList   bool
	failStore  bool
	failDelete bool
	calls      map[string]int
	requestIDs []string
}

// NewServer starts a fake service seeded with items. Callers close it with
// t.Cleanup(srv.Close).
func NewServer(seed ...Item) *Server {
	s := &Server{calls: make(map[string]int)}
	for _, item := range seed {
		s.items = append(s.items, item)
		if item.ID >= s.nextID {
			s.nextID = item.ID
		}
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/getdata", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/storedata", s.handleStore).Methods(http.MethodPost)
	r.HandleFunc("/api/deletedata/{id}", s.handleDelete).Methods(http.MethodDelete)
	return r
}

func (s *Server) record(name string, r *http.Request) {
	s.calls[name]++
	s.requestIDs = append(s.requestIDs, r.Header.Get("X-Request-ID"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.record("list", r)
	if s.failList {
		s.mu.Unlock()
		http.Error(w, "list unavailable", http.StatusServiceUnavailable)
		return
	}
	items := make([]Item, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("store", r)
	if s.failStore {
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	var body struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	s.nextID++
	item := Item{ID: s.nextID, Data: body.Data}
	s.items = append(s.items, item)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("delete", r)
	if s.failDelete {
		http.Error(w, "delete unavailable", http.StatusInternalServerError)
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	// Unknown ids succeed, matching services that treat delete as idempotent.
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	w.WriteHeader(http.StatusNoContent)
}

// FailList makes GET /api/getdata return 503 while enabled.
func (s *Server) FailList(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failList = fail
}

// FailStore makes POST /api/storedata return 500 while enabled.
func (s *Server) FailStore(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStore = fail
}

// FailDelete makes DELETE /api/deletedata/{id} return 500 while enabled.
func (s *Server) FailDelete(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDelete = fail
}

// Items returns a copy of the stored records.
func (s *Server) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Calls reports how many requests reached the named endpoint
// ("list", "store" or "delete").
func (s *Server) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// RequestIDs returns the X-Request-ID header of every request in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requestIDs))
	copy(out, s.requestIDs)
	return out
}
