package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/l10n"
)

// LocalizerInjector picks the response language from the lang query parameter
// or the Accept-Language header. Clients that send neither get the default
// language.
func LocalizerInjector(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		lang := r.Header.Get("Accept-Language")
		if langQP := r.URL.Query().Get("lang"); langQP != "" {
			lang = langQP
		}

		localizer := l10n.GetLocalizer(lang)
		if localizer == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx = l10n.ContextWithLocalizer(ctx, localizer)
		ctx = zerolog.Ctx(ctx).With().Str("lang", localizer.Lang()).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
