// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter entries idle longer than this are dropped by the cleanup sweep.
const limiterIdleTTL = 10 * time.Minute

// clientEntry holds one client's limiter and its last access time.
type clientEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// clientLimiter throttles operator POSTs per client address. The control
// surface has no auth, so the remote address is the only client identity
// available.
type clientLimiter struct {
	perSecond rate.Limit
	burst     int

	mu      sync.Mutex
	clients map[string]*clientEntry
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		clients:   make(map[string]*clientEntry),
	}
}

func (cl *clientLimiter) allow(addr string) bool {
	now := time.Now()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.clients[addr]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.perSecond, cl.burst)}
		cl.clients[addr] = entry
	}
	entry.lastAccess = now

	for key, e := range cl.clients {
		if now.Sub(e.lastAccess) > limiterIdleTTL {
			delete(cl.clients, key)
		}
	}

	return entry.limiter.Allow()
}

// Middleware rejects clients that exceed the configured rate with 429.
func (cl *clientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}

		if !cl.allow(addr) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", NewKind("api.ratelimit", ErrRateLimited))
			return
		}

		next.ServeHTTP(w, r)
	})
}
