package middleware

import (
	"quick-event/pkg/log"
)

// Config carries the middleware knobs.
type Config struct {
	// RateLimitPerMin is the per-client request budget; <= 0 disables the
	// rate limiter.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	clients *clientLimiters
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		clients: newClientLimiters(cfg.RateLimitPerMin),
	}
}
