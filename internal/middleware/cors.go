package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors builds the cors handler once and lets it answer preflight requests for
// the portfolio frontend origins.
func Cors(options cors.Options) func(next http.Handler) http.HandlerFunc {
	c := cors.New(options)
	return func(next http.Handler) http.HandlerFunc {
		return c.Handler(next).ServeHTTP
	}
}
