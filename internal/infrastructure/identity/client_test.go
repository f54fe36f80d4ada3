package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
)

func TestClient_Exchange_Success(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Session-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","email":"ana@example.com","name":"Ana","picture":"https://pic","session_token":"ignored"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	ident, err := c.Exchange(context.Background(), "sess-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "sess-42" {
		t.Errorf("expected session header, got %q", gotHeader)
	}
	if ident.Email != "ana@example.com" || ident.Name != "Ana" || ident.Picture != "https://pic" {
		t.Errorf("unexpected identity: %+v", ident)
	}
}

func TestClient_Exchange_Rejected(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusBadRequest} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		c := NewClient(srv.URL, time.Second, zerolog.Nop())
		if _, err := c.Exchange(context.Background(), "bad"); !errors.Is(err, domain.ErrInvalidSession) {
			t.Errorf("status %d: expected ErrInvalidSession, got %v", code, err)
		}
		srv.Close()
	}
}

func TestClient_Exchange_RetriesServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"email":"ana@example.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	ident, err := c.Exchange(context.Background(), "sess")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.Email != "ana@example.com" {
		t.Errorf("unexpected email %q", ident.Email)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestClient_Exchange_PersistentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.Exchange(context.Background(), "sess"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}
