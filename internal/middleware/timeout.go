package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

// Timeout cancels the request context after d. When the deadline passes
// before the handler wrote anything, the client gets a 504 with a JSON error.
//
// Handlers must watch ctx.Done() (directly or through the outbound calls they
// make, e.g. the mail provider) for the deadline to have any effect.
func Timeout(d time.Duration) func(next http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{ResponseWriter: w}
			next.ServeHTTP(tw, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			zerolog.Ctx(ctx).Warn().
				Err(context.DeadlineExceeded).
				Dur("timeout", d).
				Str("path", r.URL.Path).
				Msg("request timed out")

			if tw.claim() {
				resutils.WriteError(ctx, w, http.StatusGatewayTimeout, apperr.ErrRequestTimedOut)
			}
		}
	}
}

type timeoutWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	written bool
}

// claim reports whether the caller is the first one to write the response.
func (tw *timeoutWriter) claim() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.written {
		return false
	}
	tw.written = true
	return true
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	tw.written = true
	tw.mu.Unlock()
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	tw.written = true
	tw.mu.Unlock()
	return tw.ResponseWriter.Write(b)
}

func (tw *timeoutWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}
