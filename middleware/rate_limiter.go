package middleware

import (
	"net/http"
	"sync"
	"time"

	"api/metrics"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a simple per-IP token bucket. A live scoring event has a
// handful of judges on a shared network, so limits are generous; the bucket
// exists to absorb a misbehaving client, not to shape traffic.
type RateLimiter struct {
	clients  map[string]*bucket
	mu       sync.Mutex
	rate     int           // tokens added per interval
	burst    int           // bucket capacity
	interval time.Duration // refill interval
}

type bucket struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(rate int, burst int) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*bucket),
		rate:     rate,
		burst:    burst,
		interval: time.Minute,
	}
}

// Allow consumes a token for ip, refilling the bucket first.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.clients[ip]
	if !exists {
		b = &bucket{tokens: rl.burst, lastUpdated: time.Now()}
		rl.clients[ip] = b
	}

	now := time.Now()
	refill := int(now.Sub(b.lastUpdated)/rl.interval) * rl.rate
	if refill > 0 {
		b.tokens += refill
		if b.tokens > rl.burst {
			b.tokens = rl.burst
		}
		b.lastUpdated = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			metrics.RateLimiterRejections.WithLabelValues(ip).Inc()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
