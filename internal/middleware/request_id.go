package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/tracker"
)

const RequestUUIDHeader = "X-Request-UUID"

// RequestUUIDMiddleware tags the request with a uuid, taken from the
// X-Request-UUID header when the client sent a valid one. The id is echoed back
// so a visitor reporting a failed contact submission can quote it.
func RequestUUIDMiddleware(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := *zerolog.Ctx(ctx)

		id := uuid.New()
		if raw := r.Header.Get(RequestUUIDHeader); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				id = parsed
			} else {
				log.Debug().Err(err).Str("header_value", raw).Msg("ignoring malformed request uuid header")
			}
		}

		ctx = tracker.ContextWithReqUUID(ctx, id)
		ctx = log.With().Str(tracker.ReqIdStrKey, id.String()).Logger().WithContext(ctx)

		w.Header().Set(RequestUUIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
