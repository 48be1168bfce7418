package middleware

import (
	"smartplan/config"
	"smartplan/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares.
type Middleware struct {
	l       log.Logger
	cfg     *config.Config
	limiter *ipRateLimiter
}

// New creates the middleware set.
func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newIPRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	}
}
