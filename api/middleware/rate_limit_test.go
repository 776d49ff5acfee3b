package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bencom-ar/storefront-backend/pkg/types"
)

type stubLimiterStore struct {
	counts map[string]int64
	err    error
}

func newStubLimiterStore() *stubLimiterStore {
	return &stubLimiterStore{counts: map[string]int64{}}
}

func (s *stubLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.counts[key]++
	return s.counts[key], nil
}

func (s *stubLimiterStore) RateLimitKey(scope string) string {
	return "bencom:rate_limit:" + scope
}

func limitedHandler(store rateLimiterStore) http.Handler {
	policy := NewRateLimitPolicy("contact", time.Minute, 2)
	return RateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimitAllowsWithinWindow(t *testing.T) {
	t.Parallel()

	handler := limitedHandler(newStubLimiterStore())
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		handler.ServeHTTP(rec, r)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d blocked early with %d", i+1, rec.Code)
		}
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	t.Parallel()

	handler := limitedHandler(newStubLimiterStore())
	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec = httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		handler.ServeHTTP(rec, r)
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if envelope.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Fatalf("unexpected error code %s", envelope.Error.Code)
	}
}

func TestRateLimitSeparatesClients(t *testing.T) {
	t.Parallel()

	handler := limitedHandler(newStubLimiterStore())
	for _, addr := range []string{"203.0.113.7:1", "203.0.113.8:1", "203.0.113.7:2"} {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		r.RemoteAddr = addr
		handler.ServeHTTP(rec, r)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("addr %s unexpectedly blocked with %d", addr, rec.Code)
		}
	}
}

func TestRateLimitHonorsForwardedFor(t *testing.T) {
	t.Parallel()

	store := newStubLimiterStore()
	handler := limitedHandler(store)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	r.RemoteAddr = "10.0.0.1:1"
	r.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
	handler.ServeHTTP(rec, r)

	if _, ok := store.counts["bencom:rate_limit:ip:contact:198.51.100.9"]; !ok {
		t.Fatalf("expected counter keyed by forwarded ip, got %v", store.counts)
	}
}

func TestRateLimitStoreFailure(t *testing.T) {
	t.Parallel()

	store := newStubLimiterStore()
	store.err = errors.New("connection refused")
	handler := limitedHandler(store)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	r.RemoteAddr = "203.0.113.7:1234"
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the counter store fails, got %d", rec.Code)
	}
}

func TestRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	t.Parallel()

	handler := RateLimit(NewRateLimitPolicy("contact", 0, 0), newStubLimiterStore(), nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("disabled policy must not block, got %d", rec.Code)
		}
	}
}
