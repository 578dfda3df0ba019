package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
)

// CSRFProtection rejects cross-origin browser POSTs (contact form, repo stats)
// unless they come from one of the trusted origins, i.e. the portfolio
// frontend. Non-browser clients that send no Sec-Fetch-Site/Origin pass.
func CSRFProtection(trustedOrigins ...string) func(next http.Handler) http.HandlerFunc {
	csrf := http.NewCrossOriginProtection()
	for _, origin := range trustedOrigins {
		if err := csrf.AddTrustedOrigin(origin); err != nil {
			panic("middleware: invalid trusted origin " + origin + ": " + err.Error())
		}
	}
	csrf.SetDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Warn().Str("origin", r.Header.Get("Origin")).Msg("cross-origin request rejected")
		resutils.WriteError(r.Context(), w, http.StatusForbidden, apperr.ErrForbiddenOrigin)
	}))

	return func(next http.Handler) http.HandlerFunc {
		return csrf.Handler(next).ServeHTTP
	}
}
