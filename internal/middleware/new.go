package middleware

import (
	"personal-task-sync/pkg/log"
	"personal-task-sync/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New creates the shared middleware set. jwtManager may be nil for servers
// that do not authenticate; rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if rateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(rateLimitPerMin)
	}
	return mw
}
