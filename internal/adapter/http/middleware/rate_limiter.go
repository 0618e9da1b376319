package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	DefaultRatePerSecond = 10
	DefaultBurst         = 20

	limiterIdleTTL   = 10 * time.Minute
	limiterSweepTick = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	now     func() time.Time

	lastSweep time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
	}
}

func (r *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := r.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			retry := time.Duration(float64(time.Second) / float64(r.limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":       "TOO_MANY_REQUESTS",
				"message":    "Too many requests",
				"retryAfter": r.now().Add(retry).UTC().Format(time.RFC3339),
			})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) getLimiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cl, ok := r.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = now
	r.evictIdle(now)
	return cl.limiter
}

// evictIdle drops limiters of clients not seen for a while. Caller holds mu.
func (r *RateLimiter) evictIdle(now time.Time) {
	if now.Sub(r.lastSweep) < limiterSweepTick {
		return
	}
	r.lastSweep = now
	for ip, cl := range r.clients {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(r.clients, ip)
		}
	}
}
