package apperr

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sahilKumar1122/portfolio-api/internal/l10n"
)

func IsAppErr(err error) bool {
	return UnwrapAppErr(err) != nil
}

func UnwrapAppErr(err error) *AppErr {
	for {
		appErr, ok := err.(*AppErr)
		if ok {
			return appErr
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
			if err == nil {
				return nil
			}
		case interface{ Unwrap() []error }:
			for _, err := range x.Unwrap() {
				e := UnwrapAppErr(err)
				if e != nil {
					return e
				}
			}
			return nil
		default:
			return nil
		}
	}
}

type AppErr struct {
	err           error
	translationID string
	translatedMsg string
	errorCode     string
}

func (err AppErr) Error() string {
	if err.translatedMsg != "" {
		return err.translatedMsg
	}
	return err.err.Error()
}

func (err AppErr) Unwrap() error { return err.err }

func (err AppErr) ErrorCode() string { return err.errorCode }

func (err AppErr) TranslationID() string { return err.translationID }

// Translated returns a copy of err carrying the message in the request language.
// The shared sentinel values are never mutated.
func (err *AppErr) Translated(ctx context.Context) *AppErr {
	cp := *err
	local, ok := l10n.LocalizerFromContext(ctx)
	if ok && err.translationID != "" {
		cp.translatedMsg = local.GetWithId(err.translationID)
	}
	return &cp
}

func (e AppErr) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 2)

	m["error"] = e.Error()

	if len(e.ErrorCode()) != 0 {
		m["code"] = e.ErrorCode()
	}

	return json.Marshal(m)
}

func NewAppErr(err error) error {
	return &AppErr{
		err: err,
	}
}

func NewAppErrWithErrorCode(err error, errorCode string) error {
	return &AppErr{
		err:       err,
		errorCode: errorCode,
	}
}

func NewAppErrWithTr(err error, translationID string, errorCode string) error {
	return &AppErr{
		err:           err,
		translationID: translationID,
		errorCode:     errorCode,
	}
}

// -------------------------------------------

var (
	ErrNoResult                = NewAppErrWithTr(errors.New("No result found"), l10n.NoResultFoundTrId, "res_1")
	ErrUnexpectedErrorOccurred = NewAppErrWithTr(errors.New("Unexpected error occurred"), l10n.UnexpectedErrorOccurredTrId, "res_2")
	ErrTooManyRequests         = NewAppErrWithTr(errors.New("Too many requests. Please try again later."), l10n.TooManyRequestsTrId, "res_3")
	ErrRequestTimedOut         = NewAppErrWithTr(errors.New("The request took too long. Please try again."), l10n.RequestTimedOutTrId, "res_4")
	ErrForbiddenOrigin         = NewAppErrWithTr(errors.New("Requests from this origin are not allowed"), l10n.ForbiddenOriginTrId, "res_5")

	// request
	ErrInvalidJsonBody      = NewAppErrWithTr(errors.New("Invalid request body"), l10n.InvalidJsonBodyTrId, "req_1")
	ErrUnsupportedMediaType = NewAppErrWithTr(errors.New("Unsupported Content-Type, expected application/json"), l10n.UnsupportedMediaTypeTrId, "req_2")

	// contact
	ErrMissingRequiredFields = NewAppErrWithTr(errors.New("Missing required fields"), l10n.MissingRequiredFieldsTrId, "contact_1")
	ErrInvalidEmail          = NewAppErrWithTr(errors.New("Invalid email address"), l10n.InvalidEmailTrId, "contact_2")
	ErrMailNotConfigured     = NewAppErrWithTr(errors.New("Email service is not configured. Please contact via social links."), l10n.MailNotConfiguredTrId, "contact_3")
	ErrMailConfiguration     = NewAppErrWithTr(errors.New("Email service configuration error"), l10n.MailConfigurationErrorTrId, "contact_4")
	ErrMailDispatchFailed    = NewAppErrWithTr(errors.New("Failed to send email. Please try again."), l10n.MailDispatchFailedTrId, "contact_5")

	// github
	ErrInvalidReposList  = NewAppErrWithTr(errors.New("Invalid repos array"), l10n.InvalidReposListTrId, "github_1")
	ErrGithubFetchFailed = NewAppErrWithTr(errors.New("Failed to fetch GitHub data"), l10n.GithubFetchFailedTrId, "github_2")
)
