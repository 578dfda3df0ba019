package server

import (
	"expvar"
	"net/http"
	"net/http/pprof"
	"strings"
)

func devToolsRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, strings.TrimSuffix(r.RequestURI, "/")+"/pprof/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /pprof", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.RequestURI+"/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("GET /pprof/", pprof.Index)
	mux.HandleFunc("GET /pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /pprof/trace", pprof.Trace)
	mux.Handle("GET /vars", expvar.Handler())

	mux.Handle("GET /pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("GET /pprof/threadcreate", pprof.Handler("threadcreate"))
	mux.Handle("GET /pprof/mutex", pprof.Handler("mutex"))
	mux.Handle("GET /pprof/heap", pprof.Handler("heap"))
	mux.Handle("GET /pprof/block", pprof.Handler("block"))
	mux.Handle("GET /pprof/allocs", pprof.Handler("allocs"))

	return mux
}

type trackedKeys interface {
	Len() int
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := http.StatusOK
	health := map[string]any{
		"status":             "ok",
		"rate_limit_backend": s.conf.RateLimitBackend,
	}

	if s.rdb != nil {
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["redis"] = err.Error()
		} else {
			health["redis"] = "ok"
		}
	}

	if l, ok := s.contactLimiter.(trackedKeys); ok {
		health["contact_limiter_keys"] = l.Len()
	}
	if l, ok := s.globalLimiter.(trackedKeys); ok {
		health["global_limiter_keys"] = l.Len()
	}

	writeJson(ctx, w, status, health)
}
