package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/slotswapper-backend/internal/config"
)

const maxLimiterEntries = 10000

// RateLimiter applies a per-IP token bucket to the routes it wraps.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	idle     time.Duration
	stop     chan struct{}
	once     sync.Once
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup of idle
// clients. Call Stop() on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:    burst,
		idle:     2 * cfg.CleanupInterval,
		stop:     make(chan struct{}),
	}
	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rejects requests over the configured rate
// with 429 and a Retry-After hint.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := rl.get(clientIP(r)).Reserve()
		if !res.OK() {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
			return
		}
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if e, ok := rl.limiters[ip]; ok {
		e.lastAccess = now
		return e.limiter
	}
	if len(rl.limiters) >= maxLimiterEntries {
		rl.evictOldest()
	}
	e := &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst), lastAccess: now}
	rl.limiters[ip] = e
	return e.limiter
}

// evictOldest must be called with mu held.
func (rl *RateLimiter) evictOldest() {
	var (
		oldestIP   string
		oldestTime time.Time
	)
	for ip, e := range rl.limiters {
		if oldestIP == "" || e.lastAccess.Before(oldestTime) {
			oldestIP, oldestTime = ip, e.lastAccess
		}
	}
	delete(rl.limiters, oldestIP)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.idle)
			rl.mu.Lock()
			for ip, e := range rl.limiters {
				if e.lastAccess.Before(cutoff) {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
