package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = 5 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiters is a token bucket per client address.
type limiters struct {
	mu    sync.Mutex
	byIP  map[string]*ipLimiter
	r     rate.Limit
	b     int
	swept time.Time
	now   func() time.Time
}

func newLimiters(r rate.Limit, b int) *limiters {
	return &limiters{byIP: make(map[string]*ipLimiter), r: r, b: b, now: time.Now}
}

func (l *limiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.swept) > limiterSweep {
		l.sweep(now.Add(-limiterIdle))
		l.swept = now
	}
	il, ok := l.byIP[ip]
	if !ok {
		il = &ipLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.byIP[ip] = il
	}
	il.lastSeen = now
	return il.limiter.AllowN(now, 1)
}

// sweep drops buckets idle since before cutoff. Caller holds mu.
func (l *limiters) sweep(cutoff time.Time) {
	for ip, il := range l.byIP {
		if il.lastSeen.Before(cutoff) {
			delete(l.byIP, ip)
		}
	}
}

// RateLimit provides per-IP token-bucket rate limiting.
// r = requests per second, b = burst size.
func RateLimit(r rate.Limit, b int) gin.HandlerFunc {
	l := newLimiters(r, b)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
