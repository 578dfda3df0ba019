package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Nidal-Bakir/go-semver"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/contact"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/content"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/repostats"
	"github.com/sahilKumar1122/portfolio-api/internal/l10n"
	"github.com/sahilKumar1122/portfolio-api/internal/logger"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
)

type Server struct {
	conf    Config
	log     zerolog.Logger
	rdb     *redis.Client
	version string

	contactLimiter ratelimiter.Limiter
	globalLimiter  ratelimiter.Limiter

	contactService   contact.Service
	repoStatsService repostats.Service
	contentRepo      content.Repository

	repoStatsThrottle middleware.Middleware
}

// NewServer reads the configuration from the environment, wires every
// dependency and returns the http server ready to ListenAndServe.
// Background workers stop when ctx is done.
func NewServer(ctx context.Context) *http.Server {
	conf := ConfigFromEnv()
	log := logger.NewLogger(appenv.IsLocal(), conf.LogFile)
	l10n.InitL10n(conf.L10nLangs, log)

	server, err := newServer(ctx, conf, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Can not create the server")
		return nil
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", conf.Port),
		Handler:      server.RegisterRoutes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func newServer(ctx context.Context, conf Config, log zerolog.Logger) (*Server, error) {
	ctx = log.WithContext(ctx)

	s := &Server{
		conf:    conf,
		log:     log,
		version: appVersion(conf.AppVersion, log),
	}

	if conf.RateLimitBackend == rateLimitBackendRedis {
		rdb, err := s.NewRedisClient(ctx)
		if err != nil {
			return nil, err
		}
		s.rdb = rdb
	}

	s.contactLimiter = s.NewContactLimiter(ctx)
	s.globalLimiter = s.NewGlobalLimiter(ctx)
	s.contactService = s.NewContactService()
	s.repoStatsService = s.NewRepoStatsService(ctx)

	contentRepo, err := content.NewRepository()
	if err != nil {
		return nil, err
	}
	s.contentRepo = contentRepo

	log.Info().
		Str("env", appenv.EnvName).
		Str("version", s.version).
		Str("rate_limit_backend", conf.RateLimitBackend).
		Str("mail_provider", conf.Mail.Provider).
		Msg("Server dependencies ready")

	return s, nil
}

func appVersion(v string, log zerolog.Logger) string {
	parsed, err := semver.Parse(v)
	if err != nil {
		log.Warn().Err(err).Str("APP_VERSION", v).Msg("APP_VERSION is not a valid semantic version, using 0.0.0")
		return "0.0.0"
	}
	return parsed.String()
}
