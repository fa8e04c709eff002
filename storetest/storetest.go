// Package storetest serves an in-memory copy of the remote store's HTTP
// surface for tests.
package storetest

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"

	"onlinegame/store"
)

// Request is a PATCH the server accepted, body decoded as a loose map so
// tests can check which fields were present.
type Request struct {
	ID        string
	Body      map[string]interface{}
	SessionID string
}

type Server struct {
	mu       sync.Mutex
	serveMux http.ServeMux
	records  []store.Record
	patches  []Request
	status   int
	patched  chan Request
}

func NewServer(records ...store.Record) *Server {
	s := &Server{
		records: records,
		patched: make(chan Request, 1024),
	}
	s.serveMux.HandleFunc("/online-game", s.onList)
	s.serveMux.HandleFunc("/online-game/", s.onPatch)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

// Fail makes every following request answer with status. Zero restores
// normal service.
func (s *Server) Fail(status int) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *Server) SetRecords(records ...store.Record) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

func (s *Server) Records() []store.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.Record(nil), s.records...)
}

func (s *Server) Patches() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.patches...)
}

// Patched delivers every accepted PATCH in arrival order.
func (s *Server) Patched() <-chan Request {
	return s.patched
}

func (s *Server) failing(w http.ResponseWriter) bool {
	s.mu.Lock()
	status := s.status
	s.mu.Unlock()
	if status == 0 {
		return false
	}
	http.Error(w, http.StatusText(status), status)
	return true
}

func (s *Server) onList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.failing(w) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Records())
}

func (s *Server) onPatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.failing(w) {
		return
	}
	ID := strings.TrimPrefix(r.URL.Path, "/online-game/")
	b, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var body map[string]interface{}
	if err := json.Unmarshal(b, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	var found *store.Record
	for i := range s.records {
		if string(s.records[i].ID) == ID {
			found = &s.records[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	if x, ok := body["x"].(float64); ok {
		found.X = x
	}
	if y, ok := body["y"].(float64); ok {
		found.Y = y
	}
	if using, ok := body["using"].(bool); ok {
		found.Using = using
	}
	record := *found
	req := Request{ID: ID, Body: body, SessionID: r.Header.Get("X-Session-Id")}
	s.patches = append(s.patches, req)
	s.mu.Unlock()

	s.patched <- req
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
