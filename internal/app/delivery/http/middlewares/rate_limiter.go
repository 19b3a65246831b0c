package middlewares

import (
	"net"
	"net/http"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"sync"

	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles credential guessing per client IP, one token
// per second with a configurable burst.
func (m *Middlewares) LoginRateLimiter() func(next http.Handler) http.Handler {
	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(1), m.InternalConfig.Mock.LoginBurst)
			limiters[ip] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiterFor(ip).Allow() {
				utils.WriteErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusTooManyRequests,
					constvars.ErrClientTooManyRequests,
					constvars.ErrDevTooManyLoginAttempts,
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
