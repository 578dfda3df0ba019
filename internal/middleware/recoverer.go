package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

// Recoverer turns a panic in any handler into a logged 500 JSON error.
// http.ErrAbortHandler is re-panicked so net/http aborts the response silently.
func Recoverer(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err, ok := rvr.(error)
			if !ok {
				err = fmt.Errorf("%v", rvr)
			}
			zerolog.Ctx(r.Context()).Error().
				Err(err).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			resutils.WriteError(r.Context(), w, http.StatusInternalServerError, apperr.ErrUnexpectedErrorOccurred)
		}()
		next.ServeHTTP(w, r)
	}
}
