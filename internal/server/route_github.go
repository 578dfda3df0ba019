package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/repostats"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware"
)

// the throttle is shared by every repo stats route so the fan-out to GitHub
// stays bounded however many clients ask at once
func repoStatsRoute(s *Server, h http.HandlerFunc) http.HandlerFunc {
	if s.repoStatsThrottle == nil {
		s.repoStatsThrottle = middleware.ThrottleBacklog(4, 32, 30*time.Second)
	}
	return middleware.MiddlewareChain(
		h,
		middleware.ACT_app_json,
		middleware.RequestSize(maxJsonBodyBytes),
		s.repoStatsThrottle,
	)
}

type repoStatsRes struct {
	Data map[string]repostats.RepoStats `json:"data"`
}

func (s *Server) repoStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		writeError(ctx, w, http.StatusBadRequest, apperr.ErrInvalidReposList)
		return
	}

	var items []any
	if err := json.Unmarshal(body["repos"], &items); err != nil || items == nil {
		writeError(ctx, w, http.StatusBadRequest, apperr.ErrInvalidReposList)
		return
	}

	// entries that are not strings can never be fetched, they are dropped like any other failed item
	repos := make([]string, 0, len(items))
	for _, item := range items {
		if repo, ok := item.(string); ok {
			repos = append(repos, repo)
		}
	}

	s.writeRepoStats(w, r, repos)
}

func (s *Server) projectRepoStatsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeRepoStats(w, r, s.contentRepo.ProjectRepos())
}

func (s *Server) writeRepoStats(w http.ResponseWriter, r *http.Request, repos []string) {
	ctx := r.Context()

	data := s.repoStatsService.FetchAll(ctx, repos)
	if err := ctx.Err(); err != nil {
		writeError(ctx, w, http.StatusInternalServerError, apperr.ErrGithubFetchFailed)
		return
	}

	writeJson(ctx, w, http.StatusOK, repoStatsRes{Data: data})
}
