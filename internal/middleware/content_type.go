package middleware

import (
	"net/http"
	"strings"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/mimes"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

// SetHeader is a convenience handler to set a response header key/value
func SetHeader(key, value string) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, value)
			next.ServeHTTP(w, r)
		}
	}
}

// AllowContentType enforces a whitelist of request Content-Types otherwise responds
// with a 415 Unsupported Media Type status.
func AllowContentType(contentTypes ...string) func(http.Handler) http.HandlerFunc {
	allowedContentTypes := make(map[string]struct{}, len(contentTypes))
	for _, ctype := range contentTypes {
		allowedContentTypes[strings.TrimSpace(strings.ToLower(ctype))] = struct{}{}
	}

	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				// Skip check for empty content body
				next.ServeHTTP(w, r)
				return
			}

			s := strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0]))
			if _, ok := allowedContentTypes[s]; ok {
				next.ServeHTTP(w, r)
				return
			}

			resutils.WriteError(r.Context(), w, http.StatusUnsupportedMediaType, apperr.ErrUnsupportedMediaType)
		}
	}
}

var allowJsonOnly = AllowContentType(mimes.App_json)

// ACT_app_json only lets application/json bodies through.
func ACT_app_json(next http.Handler) http.HandlerFunc {
	return allowJsonOnly(next)
}
