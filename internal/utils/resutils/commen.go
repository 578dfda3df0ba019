package resutils

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
)

// WriteError writes {"error": "...", "code": "...", "errors": [...]} with the given status code.
// AppErr values are translated to the request language first.
func WriteError(ctx context.Context, w http.ResponseWriter, code int, errs ...error) {
	if len(errs) == 0 {
		zerolog.Ctx(ctx).Warn().Int("code", code).Msg("WriteError: empty errs array")
		errs = []error{errors.New(http.StatusText(code))}
	}

	for i, e := range errs {
		if appError := apperr.UnwrapAppErr(e); appError != nil {
			errs[i] = appError.Translated(ctx)
		}
	}

	err := errorRes{Error: errs[0], Errors: errs[1:]}

	writeJson(ctx, w, code, err, true)
}

func WriteJson(ctx context.Context, w http.ResponseWriter, code int, payload any) {
	writeJson(ctx, w, code, payload, appenv.IsStagOrLocal())
}
