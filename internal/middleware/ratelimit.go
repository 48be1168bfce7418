package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smartplan/pkg/response"
)

// ipRateLimiter keeps a token bucket per client IP. Buckets expire after
// idling so the table stays bounded.
type ipRateLimiter struct {
	buckets *expirable.LRU[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if perMinute <= 0 {
		perMinute = 120
	}
	if burst <= 0 {
		burst = perMinute / 6
		if burst == 0 {
			burst = 1
		}
	}
	return &ipRateLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](4096, nil, 10*time.Minute),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
	}
}

func (rl *ipRateLimiter) allow(ip string) bool {
	limiter, ok := rl.buckets.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.buckets.Add(ip, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients exceeding the configured request rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
