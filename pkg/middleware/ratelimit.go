package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimit enforces a per-caller token bucket sized from a per-minute
// quota. Authenticated requests are bucketed by API key hash; anonymous
// requests fall back to the remote host. Passes through when disabled.
func RateLimit(cfg *RateLimitConfig) func(http.Handler) http.Handler {
	limiter := newKeyLimiter(rate.Limit(float64(cfg.PerMinute)/60.0), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.allow(callerKey(r)) {
				RespondAPIError(w, r, RateLimited(fmt.Sprintf("超过每分钟 %d 次的限制", cfg.PerMinute)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if hash := APIKeyHash(r.Context()); hash != "-" {
		return hash
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// keyLimiter is a registry of per-key token buckets.
type keyLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newKeyLimiter(limit rate.Limit, burst int) *keyLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &keyLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *keyLimiter) allow(key string) bool {
	return l.get(key).Allow()
}

func (l *keyLimiter) get(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// re-check after acquiring the write lock
	if limiter, exists := l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = limiter
	return limiter
}
