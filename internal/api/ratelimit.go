package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter throttles per-client request rates with a fixed window.
// Used on the endpoints that write to the database (save, reset), which
// have no business running at tick frequency.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter allows limit requests per client per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		clients: make(map[string]*clientWindow),
	}
}

// Allow records a request for the client and reports whether it fits the
// current window. Expired windows for other clients are pruned on the way.
func (rl *RateLimiter) Allow(client string) (ok bool, retryAfter time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cw := range rl.clients {
		if key != client && now.After(cw.resetAt) {
			delete(rl.clients, key)
		}
	}

	cw := rl.clients[client]
	if cw == nil || now.After(cw.resetAt) {
		rl.clients[client] = &clientWindow{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}
	if cw.count < rl.limit {
		cw.count++
		return true, 0
	}
	return false, time.Until(cw.resetAt)
}

// clientKey identifies the requester. Proxied requests are keyed by the
// first X-Forwarded-For hop, direct ones by the remote IP.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware rejects over-budget requests with 429 and a
// Retry-After hint.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.Allow(clientKey(r))
		if !ok {
			seconds := int(retryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
