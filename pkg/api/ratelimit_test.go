package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNilLimiterPassesThrough(t *testing.T) {
	var rl *RateLimiter

	req := httptest.NewRequest("POST", "/check", nil)
	w := httptest.NewRecorder()
	rl.Middleware(okHandler()).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected pass-through, got %d", w.Code)
	}
}

func TestLimiterFailsOpen(t *testing.T) {
	// Nothing listens here; every Redis call errors.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	rl := NewRateLimiter(rdb, 1, time.Minute)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/check", nil)
		w := httptest.NewRecorder()
		rl.Middleware(okHandler()).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected fail-open on Redis error, got %d", w.Code)
		}
	}
}
