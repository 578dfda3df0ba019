package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// headers worth having in the access log; the contact form body is never logged
var loggedHeaders = []string{
	"Accept-Language",
	"Content-Type",
	"Origin",
	"Referer",
	"User-Agent",
	"X-Forwarded-For",
}

func RequestLoggerWithHeaderFilter(keepHeader func(headerName string) bool) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return hlog.AccessHandler(func(r *http.Request, status int, size int, duration time.Duration) {
			var event *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				event = zerolog.Ctx(r.Context()).Error()
			case status == http.StatusTooManyRequests:
				event = zerolog.Ctx(r.Context()).Warn()
			default:
				event = zerolog.Ctx(r.Context()).Info()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				CallerSkipFrame(99999999) // no file:line for access logs

			headers := zerolog.Dict()
			for k, v := range r.Header {
				if keepHeader(k) {
					headers.Str(k, strings.Join(v, ";"))
				}
			}
			event.Dict("headers", headers)

			event.Msg("req")
		})(next).ServeHTTP
	}
}

func RequestLogger(next http.Handler) http.HandlerFunc {
	return RequestLoggerWithHeaderFilter(func(headerName string) bool {
		return slices.Contains(loggedHeaders, http.CanonicalHeaderKey(headerName))
	})(next)
}
