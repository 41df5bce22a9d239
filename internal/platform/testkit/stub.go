package testkit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Stub is an httptest server that dispatches on r.URL.Path and counts hits
// Unknown paths answer 404 with a GitHub style {"message":"Not Found"}
type Stub struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

// NewStub starts a Stub closed automatically at test cleanup
func NewStub(t *testing.T, routes map[string]http.HandlerFunc) *Stub {
	t.Helper()
	s := &Stub{hits: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.mu.Unlock()
		if h, ok := routes[r.URL.Path]; ok {
			h(w, r)
			return
		}
		WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}))
	t.Cleanup(s.Close)
	return s
}

// Hits returns how many requests reached path
func (s *Stub) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// WriteJSON writes v with status and a JSON content type
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MustDecodeJSON decodes r into T or fails the test
func MustDecodeJSON[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	return v
}
