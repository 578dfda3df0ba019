package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware"
)

const maxJsonBodyBytes = 64 << 10

func (s *Server) RegisterRoutes(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiRouter(s)))

	rateLimitGlobal := middleware.RateLimiter(
		// since we are using the RealIp() middleware
		// it should be safe to use r.RemoteAddr as limit key
		middleware.RemoteAddrKey,
		s.globalLimiter,
	)

	return middleware.MiddlewareChain(
		mux.ServeHTTP,
		s.LoggerInjector,
		middleware.Recoverer,
		// required for the rate limiter to function correctly and for logging
		middleware.RealIp(s.conf.TrustedIpHeaders...),
		middleware.RequestUUIDMiddleware,
		middleware.LocalizerInjector,
		middleware.RequestLogger,
		middleware.Cors(cors.Options{
			AllowedOrigins: s.conf.CorsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "Accept-Language", middleware.RequestUUIDHeader},
			ExposedHeaders: []string{"Retry-After", "X-RateLimit-Limit", middleware.RequestUUIDHeader},
			MaxAge:         int((12 * time.Hour).Seconds()),
		}),
		middleware.CSRFProtection(s.conf.CorsAllowedOrigins...),
		middleware.Heartbeat,
		rateLimitGlobal,
	)
}

func apiRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", v1Router(s)))

	// the paths the frontend used before the api was versioned
	mux.Handle("POST /contact", contactRoute(s))
	mux.Handle("POST /github", repoStatsRoute(s, s.repoStatsHandler))

	return mux
}

func v1Router(s *Server) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /contact", contactRoute(s))
	mux.Handle("POST /github", repoStatsRoute(s, s.repoStatsHandler))
	mux.Handle("GET /github", repoStatsRoute(s, s.projectRepoStatsHandler))
	mux.HandleFunc("GET /meta", s.metaHandler)

	contentRoutes(s, mux)

	if appenv.IsStagOrLocal() {
		mux.Handle("/dev-tools/", http.StripPrefix("/dev-tools", middleware.NoCache(devToolsRouter(s))))
	}

	return mux
}
