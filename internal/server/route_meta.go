package server

import (
	"net/http"

	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
)

func (s *Server) metaHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(r.Context(), w, http.StatusOK, map[string]string{
		"version": s.version,
		"env":     appenv.EnvName,
	})
}
