package server

import (
	"net/http"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/paginate"
)

func contentRoutes(s *Server, mux *http.ServeMux) {
	// the catalogue only changes with a deploy
	cache := middleware.SetHeader("Cache-Control", "public, max-age=300")

	mux.HandleFunc("GET /projects", middleware.MiddlewareChain(s.projectsHandler, cache))
	mux.HandleFunc("GET /skills", middleware.MiddlewareChain(s.skillsHandler, cache))
	mux.HandleFunc("GET /experience", middleware.MiddlewareChain(s.experienceHandler, cache))
	mux.HandleFunc("GET /social", middleware.MiddlewareChain(s.socialHandler, cache))
	mux.HandleFunc("GET /blog", middleware.MiddlewareChain(s.blogIndexHandler, cache))
	mux.HandleFunc("GET /blog/{slug}", middleware.MiddlewareChain(s.blogShowHandler, cache))
}

func (s *Server) projectsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("featured") == "true" {
		writeJson(r.Context(), w, http.StatusOK, map[string]any{"data": s.contentRepo.FeaturedProjects()})
		return
	}
	writeJson(r.Context(), w, http.StatusOK, map[string]any{"data": s.contentRepo.Projects()})
}

func (s *Server) skillsHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(r.Context(), w, http.StatusOK, map[string]any{"data": s.contentRepo.SkillCategories()})
}

func (s *Server) experienceHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(r.Context(), w, http.StatusOK, map[string]any{"data": s.contentRepo.Experience()})
}

func (s *Server) socialHandler(w http.ResponseWriter, r *http.Request) {
	writeJson(r.Context(), w, http.StatusOK, map[string]any{"data": s.contentRepo.SocialLinks()})
}

func (s *Server) blogIndexHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := paginate.NewSlicePaginatedAction(s.contentRepo.BlogPosts()).Exec(r)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, apperr.ErrUnexpectedErrorOccurred)
		return
	}

	writeJson(ctx, w, http.StatusOK, page)
}

func (s *Server) blogShowHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := s.contentRepo.BlogPost(r.PathValue("slug"))
	if err != nil {
		writeError(ctx, w, return404IfNoResultErrOr500(err), err)
		return
	}

	writeJson(ctx, w, http.StatusOK, map[string]any{"data": post})
}
