package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
)

func TestGateway_AttachesBearerCredential(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rc := New(srv.URL, credstore.NewMemStore("tok-1"), nil)
	if _, err := rc.R().SetContext(context.Background()).Get("/trips"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got != "Bearer tok-1" {
		t.Fatalf("Authorization header %q, want %q", got, "Bearer tok-1")
	}
}

func TestGateway_NoCredentialSendsUnauthenticated(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rc := New(srv.URL, credstore.NewMemStore(""), nil)
	if _, err := rc.R().SetContext(context.Background()).Get("/trips"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
}

func TestGateway_UnauthorizedTearsDownCredential(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := credstore.NewMemStore("tok-1")
	var torndown atomic.Int32
	rc := New(srv.URL, store, func() { torndown.Add(1) })

	resp, err := rc.R().SetContext(context.Background()).Get("/trips")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status %d", resp.StatusCode())
	}
	if _, ok := store.Load(); ok {
		t.Fatal("credential must be erased on 401")
	}
	if torndown.Load() != 1 {
		t.Fatalf("teardown hook ran %d times, want 1", torndown.Load())
	}
}

func TestGateway_OtherErrorsPassThrough(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := credstore.NewMemStore("tok-1")
	rc := New(srv.URL, store, func() { t.Fatal("teardown must not run for 500") })

	resp, err := rc.R().SetContext(context.Background()).Get("/trips")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status %d", resp.StatusCode())
	}
	if _, ok := store.Load(); !ok {
		t.Fatal("credential must survive non-401 errors")
	}
}
