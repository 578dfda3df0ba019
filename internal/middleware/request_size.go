package middleware

import (
	"net/http"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

// RequestSize caps the request body at bytes. Requests that announce a larger
// Content-Length are rejected with 413 up front, the rest are cut off by
// http.MaxBytesReader while the handler decodes them.
func RequestSize(bytes int64) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > bytes {
				resutils.WriteError(r.Context(), w, http.StatusRequestEntityTooLarge, apperr.ErrInvalidJsonBody)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, bytes)
			next.ServeHTTP(w, r)
		}
	}
}
