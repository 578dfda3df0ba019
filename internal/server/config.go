package server

import (
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/contact"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/repostats"
	"github.com/sahilKumar1122/portfolio-api/internal/gateway"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/redisdb"
)

const (
	rateLimitBackendMemory = "memory"
	rateLimitBackendRedis  = "redis"
)

type Config struct {
	Port       int
	AppVersion string
	LogFile    string
	L10nLangs  []string

	CorsAllowedOrigins []string
	TrustedIpHeaders   []string

	RateLimitBackend   string
	ContactRateLimit   ratelimiter.Config
	ContactVacuumEvery time.Duration
	GlobalRateLimit    ratelimiter.Config
	Redis              redisdb.Config

	Mail        gateway.Config
	ContactMail contact.Config

	Github            repostats.ClientConfig
	GithubConcurrency int
}

func ConfigFromEnv() Config {
	return Config{
		Port:       appenv.GetInt("PORT", 8080),
		AppVersion: appenv.GetString("APP_VERSION", "0.0.0"),
		LogFile:    appenv.GetString("LOG_FILE", "/var/log/portfolio/portfolio.log"),
		L10nLangs:  appenv.GetList("L10N_LANGS", []string{"en", "ar"}),

		CorsAllowedOrigins: appenv.GetList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		TrustedIpHeaders:   appenv.GetList("TRUSTED_IP_HEADERS", []string{"X-Real-IP"}),

		RateLimitBackend: appenv.GetString("RATE_LIMIT_BACKEND", rateLimitBackendMemory),
		ContactRateLimit: ratelimiter.Config{
			RequestsPerTimeFrame: appenv.GetInt("CONTACT_RATE_LIMIT_REQUESTS", 3),
			TimeFrame:            appenv.GetDuration("CONTACT_RATE_LIMIT_WINDOW", 60*time.Second),
			Enabled:              true,
			KeyPrefix:            "contact",
		},
		ContactVacuumEvery: appenv.GetDuration("CONTACT_RATE_LIMIT_VACUUM_EVERY", 0),
		GlobalRateLimit: ratelimiter.Config{
			RequestsPerTimeFrame: appenv.GetInt("GLOBAL_RATE_LIMIT_REQUESTS", 60),
			TimeFrame:            appenv.GetDuration("GLOBAL_RATE_LIMIT_WINDOW", time.Minute),
			Enabled:              appenv.GetInt("GLOBAL_RATE_LIMIT_REQUESTS", 60) > 0,
			KeyPrefix:            "global",
		},
		Redis: redisdb.ConfigFromEnv(),

		Mail: gateway.Config{
			Provider:      appenv.GetString("MAIL_PROVIDER", gateway.ProviderResend),
			ResendAPIKey:  appenv.GetString("RESEND_API_KEY", ""),
			ResendBaseURL: appenv.GetString("RESEND_BASE_URL", ""),
		},
		ContactMail: contact.Config{
			From: appenv.GetString("CONTACT_MAIL_FROM", "Portfolio Contact <onboarding@resend.dev>"),
			To:   []string{appenv.GetString("CONTACT_MAIL_TO", "ksahilbazard@gmail.com")},
		},

		Github: repostats.ClientConfig{
			BaseURL: appenv.GetString("GITHUB_API_URL", "https://api.github.com"),
			Token:   appenv.GetString("GITHUB_TOKEN", ""),
			Timeout: appenv.GetDuration("GITHUB_STATS_TIMEOUT", 10*time.Second),
		},
		GithubConcurrency: appenv.GetInt("GITHUB_STATS_CONCURRENCY", 8),
	}
}
