package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/contact"
	"github.com/sahilKumar1122/portfolio-api/internal/l10n"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware"
)

func contactRoute(s *Server) http.HandlerFunc {
	return middleware.MiddlewareChain(
		s.contactHandler,
		// the limit is checked before the body is read
		middleware.RateLimiter(middleware.ForwardedForKey, s.contactLimiter),
		middleware.ACT_app_json,
		middleware.RequestSize(maxJsonBodyBytes),
		middleware.Timeout(20*time.Second),
	)
}

func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var submission contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(ctx, w, http.StatusBadRequest, apperr.ErrInvalidJsonBody)
		return
	}

	if err := s.contactService.Submit(ctx, submission); err != nil {
		writeError(ctx, w, contactErrStatusCode(err), err)
		return
	}

	msg := "Email sent successfully"
	if localizer, ok := l10n.LocalizerFromContext(ctx); ok {
		msg = localizer.GetWithId(l10n.EmailSentSuccessfullyTrId)
	}
	writeJson(ctx, w, http.StatusOK, map[string]any{"success": true, "message": msg})
}
