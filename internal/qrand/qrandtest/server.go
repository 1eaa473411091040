// Package qrandtest provides a canned-response stub of the quantum API for
// tests. It serves literal fixtures only; no randomness is generated
// anywhere in this module.
package qrandtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docdailey/qrand/internal/httpx"
)

// Fixtures holds the canned payloads the stub serves. Zero-value fields
// fall back to the defaults in NewServer.
type Fixtures struct {
	Integers []int
	Key      KeyFixture
	Password string
	UUID     string
	Bytes    string
	Healthy  bool
	Device   map[string]any
}

// KeyFixture mirrors the /crypto/key data shape.
type KeyFixture struct {
	Key       string `json:"key"`
	KeyBase64 string `json:"key_base64"`
	Bits      int    `json:"bits"`
}

type failure struct {
	status int
	msg    string
}

// Server is an httptest.Server speaking the quantum API with canned data.
type Server struct {
	*httptest.Server

	fixtures Fixtures

	mu       sync.Mutex
	fail     map[string]failure
	requests []*url.URL
}

// NewServer starts a stub and registers its shutdown with t.Cleanup.
func NewServer(t *testing.T, fx Fixtures) *Server {
	t.Helper()

	if fx.UUID == "" {
		fx.UUID = "8f14e45f-ceea-467f-a8d9-5d6c8f0c85a1"
	}
	if fx.Bytes == "" {
		fx.Bytes = "c3R1YmJ5dGVz"
	}
	if fx.Password == "" {
		fx.Password = "Xk9#mP2vLq8z"
	}
	if fx.Key.Key == "" {
		fx.Key = KeyFixture{
			Key:       "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
			KeyBase64: "ABEiM0RVZneImaq7zN3u/wARIjNEVWZ3iJmqu8zd7v8=",
			Bits:      256,
		}
	}

	s := &Server{
		fixtures: fx,
		fail:     map[string]failure{},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/random/integers", s.enveloped(func() any { return s.fixtures.Integers }))
		r.Get("/random/bytes", s.enveloped(func() any {
			return map[string]any{"bytes": s.fixtures.Bytes, "format": "base64"}
		}))
		r.Get("/crypto/key", s.enveloped(func() any { return s.fixtures.Key }))
		r.Get("/crypto/password", s.enveloped(func() any {
			return map[string]string{"password": s.fixtures.Password}
		}))
		r.Get("/crypto/uuid", s.enveloped(func() any {
			return map[string]string{"uuid": s.fixtures.UUID}
		}))
		r.Get("/device/info", s.enveloped(func() any {
			return map[string]any{"device": s.fixtures.Device, "buffer_size": 65536, "buffer_available": 4096}
		}))
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// FailStatus makes the given API path answer with a bare HTTP status.
func (s *Server) FailStatus(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = failure{status: status}
}

// FailEnvelope makes the given API path answer 200 with success=false and
// the provided error message.
func (s *Server) FailEnvelope(path string, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = failure{status: http.StatusOK, msg: msg}
}

// Requests returns the URLs of every call received so far, in order.
func (s *Server) Requests() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*url.URL(nil), s.requests...)
}

func (s *Server) record(r *http.Request) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.URL)
	f, ok := s.fail[r.URL.Path]
	return f, ok
}

func (s *Server) enveloped(data func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f, ok := s.record(r); ok {
			if f.msg != "" {
				httpx.WriteError(w, f.status, f.msg)
			} else {
				w.WriteHeader(f.status)
			}
			return
		}
		httpx.WriteSuccess(w, data())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.record(r); ok {
		w.WriteHeader(f.status)
		return
	}
	if !s.fixtures.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"device":           "connected",
		"buffer_available": 4096,
	})
}
