package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"Datashare/internal/api/handlers"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// State lives in this process only; running several instances multiplies the
// effective limit.
type RateLimiter struct {
	clients  map[string]*window
	requests int
	interval time.Duration
	mu       sync.Mutex
}

type window struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per interval
func NewRateLimiter(requests int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*window),
		requests: requests,
		interval: interval,
	}

	go rl.evictExpired()

	return rl
}

// Middleware returns the http middleware applying the limit
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			handlers.WriteError(w, http.StatusTooManyRequests, "RateLimited", "Rate limit exceeded, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	win, ok := rl.clients[clientID]
	if !ok || now.After(win.resetAt) {
		rl.clients[clientID] = &window{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}

	if win.count >= rl.requests {
		return false
	}

	win.count++
	return true
}

// evictExpired drops stale windows so the map doesn't grow without bound
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for id, win := range rl.clients {
			if now.After(win.resetAt) {
				delete(rl.clients, id)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP extracts the client address, honoring X-Forwarded-For when a
// proxy sits in front of the server
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
