package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/lianzhou/tizhi/pkg/middleware"
)

func TestTraceAssignsID(t *testing.T) {
	var inContext string
	handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inContext = middleware.TraceID(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	handler.ServeHTTP(rec, req)

	header := rec.Header().Get("X-Trace-Id")
	if header == "" {
		t.Fatal("X-Trace-Id header missing")
	}
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("trace id is not a UUID: %q", header)
	}
	if inContext != header {
		t.Errorf("context trace id %q != header %q", inContext, header)
	}
}

func TestTraceIDsAreUnique(t *testing.T) {
	handler := middleware.Trace()(okHandler())

	seen := make(map[string]struct{})
	for range 10 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		id := rec.Header().Get("X-Trace-Id")
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate trace id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestTraceFallbacksWithoutMeta(t *testing.T) {
	ctx := context.Background()
	if got := middleware.TraceID(ctx); got != "-" {
		t.Errorf("TraceID fallback: got %q, want -", got)
	}
	if got := middleware.APIKeyHash(ctx); got != "-" {
		t.Errorf("APIKeyHash fallback: got %q, want -", got)
	}
}

func TestTraceDefaultKeyHash(t *testing.T) {
	var hash string
	handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash = middleware.APIKeyHash(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if hash != "-" {
		t.Errorf("unauthenticated key hash: got %q, want -", hash)
	}
}
