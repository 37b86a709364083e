package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketResetsAfterShortWindow(t *testing.T) {
	window := 20 * time.Millisecond
	b := getBucket("bucket-short-window", window)

	require.True(t, b.allow(1, window))
	require.False(t, b.allow(1, window), "second request inside the window must be denied")

	// The first window must expire on the configured schedule, not a
	// fixed one-minute default.
	time.Sleep(window + 10*time.Millisecond)
	assert.True(t, b.allow(1, window), "request after the window must be allowed")
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error": "too many requests"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
