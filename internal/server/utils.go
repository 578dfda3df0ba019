package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

func writeError(ctx context.Context, w http.ResponseWriter, code int, errs ...error) {
	resutils.WriteError(ctx, w, code, errs...)
}

func writeJson(ctx context.Context, w http.ResponseWriter, code int, payload any) {
	resutils.WriteJson(ctx, w, code, payload)
}

func return404IfNoResultErrOr500(err error) int {
	if errors.Is(err, apperr.ErrNoResult) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// maps the contact errors to their status code, anything unknown is a 500
func contactErrStatusCode(err error) int {
	switch {
	case errors.Is(err, apperr.ErrMissingRequiredFields),
		errors.Is(err, apperr.ErrInvalidEmail),
		errors.Is(err, apperr.ErrInvalidJsonBody):
		return http.StatusBadRequest

	case errors.Is(err, apperr.ErrMailNotConfigured),
		errors.Is(err, apperr.ErrMailConfiguration):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
