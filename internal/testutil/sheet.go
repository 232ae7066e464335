package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// SheetServer answers location lookups with a canned response and records
// the query of every request it receives.
type SheetServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []url.Values
}

// NewSheetServer starts a server that replies to every request with status
// and body. The server is closed when the test finishes.
func NewSheetServer(t *testing.T, status int, body string) *SheetServer {
	t.Helper()
	s := &SheetServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Query())
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

// ServeNames starts a server returning a well-formed envelope listing names.
func ServeNames(t *testing.T, names ...string) *SheetServer {
	t.Helper()
	return NewSheetServer(t, http.StatusOK, EnvelopeJSON(t, names...))
}

// Requests returns the query values of the requests received so far.
func (s *SheetServer) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	dup := make([]url.Values, len(s.requests))
	copy(dup, s.requests)
	return dup
}

// EnvelopeJSON renders {"result":{"data":[{"Name":...},...]}}.
func EnvelopeJSON(t *testing.T, names ...string) string {
	t.Helper()
	type record struct {
		Name string `json:"Name"`
	}
	records := make([]record, len(names))
	for i, name := range names {
		records[i] = record{Name: name}
	}
	payload := map[string]interface{}{
		"result": map[string]interface{}{"data": records},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode envelope: %v", err)
	}
	return string(data)
}

// UnreachableURL returns the address of a server that has already been
// shut down, so connecting to it fails at the network level.
func UnreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()
	return addr
}
