package lead

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxLimiters bounds the per-IP map; idle limiters are dropped beyond it.
const maxLimiters = 10000

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute submissions per IP with the given burst.
// perMinute <= 0 disables limiting.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow consumes a token for ip and reports whether the submission may proceed.
func (m *RateLimiter) Allow(ip string) bool {
	if m == nil || m.limit == rate.Inf {
		return true
	}
	return m.getLimiter(ip).Allow()
}

func (m *RateLimiter) getLimiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, ok := m.limiters[ip]; ok {
		return limiter
	}
	if len(m.limiters) >= maxLimiters {
		m.evictIdle()
	}
	limiter := rate.NewLimiter(m.limit, m.burst)
	m.limiters[ip] = limiter
	return limiter
}

// evictIdle drops limiters whose bucket has refilled, i.e. visitors that
// have been quiet long enough to start fresh anyway.
func (m *RateLimiter) evictIdle() {
	for ip, limiter := range m.limiters {
		if limiter.Tokens() >= float64(m.burst) {
			delete(m.limiters, ip)
		}
	}
}

// Len returns the number of tracked IPs.
func (m *RateLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.limiters)
}
