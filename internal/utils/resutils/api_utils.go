package resutils

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/tracker"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/mimes"
)

type errorRes struct {
	Error  error
	Errors []error
}

func (e errorRes) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3)
	m["error"] = e.Error.Error()

	if appErr := apperr.UnwrapAppErr(e.Error); appErr != nil && appErr.ErrorCode() != "" {
		m["code"] = appErr.ErrorCode()
	}

	errsLen := len(e.Errors)
	if errsLen != 0 {
		errors := make([]string, errsLen)
		for i, e := range e.Errors {
			errors[i] = e.Error()
		}
		m["errors"] = errors
	}

	return json.Marshal(m)
}

func writeJson(ctx context.Context, w http.ResponseWriter, code int, payload any, shouldLog bool) {
	zlog := *zerolog.Ctx(ctx)

	bytes, err := json.Marshal(payload)
	if err != nil {
		zlog.Error().Err(err).Any("payload", payload).Int("code", code).Msg("can not marshal payload in WriteJson")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimes.App_json)
	w.WriteHeader(code)
	w.Write(bytes)

	if shouldLog {
		logRes(ctx, code, payload, zlog)
	}
}

func logRes(ctx context.Context, code int, payload any, zlog zerolog.Logger) {
	logEvent := zlog.Debug().Any("payload", payload).Int("code", code)
	if reqId, ok := tracker.ReqUUIDFromContext(ctx); ok {
		logEvent.Str(tracker.ReqIdStrKey, reqId.String())
	}
	logEvent.CallerSkipFrame(99999999) // so it dose not print the file:line_num in the log. we do not need those
	logEvent.Msg("Res")
}
