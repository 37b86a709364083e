// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/moyashi0060/kittchen-POS-app/pkg/cache"
	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

// bucket tracks a fixed-window request count for one client IP,
// used when Redis is unavailable.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

var (
	bucketsMu sync.Mutex
	buckets   = map[string]*bucket{}
)

func init() {
	// Evict expired buckets so long-running servers don't grow without bound.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			bucketsMu.Lock()
			for ip, b := range buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(buckets, ip)
				}
			}
			bucketsMu.Unlock()
		}
	}()
}

func getBucket(ip string, window time.Duration) *bucket {
	bucketsMu.Lock()
	defer bucketsMu.Unlock()

	if b, ok := buckets[ip]; ok {
		return b
	}

	b := &bucket{resetAt: time.Now().Add(window)}
	buckets[ip] = b
	return b
}

// allowRedis counts the request in a Redis fixed window shared across
// instances. Returns (allowed, true) on success, (_, false) when Redis
// could not answer and the in-memory fallback should decide.
func allowRedis(r *http.Request, ip string, max int, window time.Duration) (bool, bool) {
	rdb := cache.Client()
	if rdb == nil {
		return false, false
	}

	key := fmt.Sprintf("ratelimit:%s:%d", ip, time.Now().Unix()/int64(window.Seconds()))
	n, err := rdb.Incr(r.Context(), key).Result()
	if err != nil {
		return false, false
	}
	if n == 1 {
		rdb.Expire(r.Context(), key, window)
	}
	return n <= int64(max), true
}

// RateLimit returns a middleware limiting each IP to max requests per
// window. Counting happens in Redis when connected so the limit holds
// across replicas; otherwise an in-process window is used.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			allowed, ok := allowRedis(r, ip, max, window)
			if !ok {
				allowed = getBucket(ip, window).allow(max, window)
			}

			if !allowed {
				response.Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
