package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/tracker"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

const unknownClientKey = "unknown"

func RateLimiter(limitKeyFn func(r *http.Request) string, limiter ratelimiter.Limiter) func(next http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			allow, backoffDuration := limiter.Allow(r.Context(), limitKeyFn(r))

			if !allow {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(backoffDuration)))
				// Request limit per ${config.TimeFrame}
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Config().RequestsPerTimeFrame))
				resutils.WriteError(r.Context(), w, http.StatusTooManyRequests, apperr.ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

func retryAfterSeconds(d time.Duration) int {
	return max(int(math.Ceil(d.Seconds())), 1)
}

// ForwardedForKey identifies the client by the first entry of X-Forwarded-For.
// Requests without the header all share the "unknown" key.
func ForwardedForKey(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	first, _, _ := strings.Cut(xff, ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return unknownClientKey
}

// RemoteAddrKey uses the client ip parsed by RealIp, falling back to
// r.RemoteAddr when it was not an ip.
func RemoteAddrKey(r *http.Request) string {
	if ip, ok := tracker.ReqIPFromContext(r.Context()); ok {
		return ip.String()
	}
	if r.RemoteAddr == "" {
		return unknownClientKey
	}
	return r.RemoteAddr
}
