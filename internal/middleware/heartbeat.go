package middleware

import (
	"net/http"

	"github.com/sahilKumar1122/portfolio-api/internal/utils/mimes"
)

// Heartbeat answers GET/HEAD /ping before routing, rate limiting or CSRF checks
// so uptime monitors never consume a client's budget.
func Heartbeat(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/ping" {
			w.Header().Set("Content-Type", mimes.Text_plain)
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodGet {
				w.Write([]byte("pong"))
			}
			return
		}
		next.ServeHTTP(w, r)
	}
}
