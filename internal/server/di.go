package server

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/contact"
	"github.com/sahilKumar1122/portfolio-api/internal/feat/repostats"
	"github.com/sahilKumar1122/portfolio-api/internal/gateway"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter/mem_ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter/redis_ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/redisdb"
)

func (s *Server) NewRedisClient(ctx context.Context) (*redis.Client, error) {
	rdb, err := redisdb.NewRedisClient(ctx, s.conf.Redis, s.log)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BACKEND=redis but the redis server is not reachable: %w", err)
	}
	return rdb, nil
}

func (s *Server) NewContactLimiter(ctx context.Context) ratelimiter.Limiter {
	if s.rdb != nil {
		return redis_ratelimiter.NewRedisSlidingWindowLimiter(s.rdb, s.conf.ContactRateLimit)
	}
	return mem_ratelimiter.NewSlidingWindowLimiter(ctx, s.conf.ContactRateLimit, s.conf.ContactVacuumEvery)
}

func (s *Server) NewGlobalLimiter(ctx context.Context) ratelimiter.Limiter {
	conf := s.conf.GlobalRateLimit
	if !conf.Enabled {
		conf.RequestsPerTimeFrame = max(conf.RequestsPerTimeFrame, 1)
	}
	if s.rdb != nil {
		return redis_ratelimiter.NewRedisFixedWindowLimiter(s.rdb, conf)
	}
	return mem_ratelimiter.NewTokenBucketLimiter(ctx, conf)
}

func (s *Server) NewContactService() contact.Service {
	return contact.NewService(gateway.NewEmailProvider(s.conf.Mail), s.conf.ContactMail)
}

func (s *Server) NewRepoStatsService(ctx context.Context) repostats.Service {
	return repostats.NewService(repostats.NewClient(ctx, s.conf.Github), s.conf.GithubConcurrency)
}
