package middleware

import (
	"net"
	"net/http"
	"strconv"

	"github.com/meowjesty/tasknest/core/response"
	"github.com/meowjesty/tasknest/pkg/ratelimiter"
)

// RateLimit throttles requests per key. Denied requests get a 429 with
// Retry-After; the standard X-RateLimit headers are set either way. A store
// failure fails open so the limiter never takes the service down with it.
func RateLimit(limiter ratelimiter.RateLimiter, keyOf func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), keyOf(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(result.Remaining, 0)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter().Seconds())+1))
				response.JSONError(w, response.ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP keys rate limits by the remote address, without the port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
