// Package ratelimiter defines the admission-control contract shared by the
// in-memory (mem_ratelimiter) and Redis backed (redis_ratelimiter) limiters.
//
// The in-memory limiters are exact per process only. When the API runs as
// more than one process behind a load balancer every process keeps its own
// table, so a client may be admitted up to N times per process. Use the Redis
// backend to hold the limit across processes.
package ratelimiter

import (
	"context"
	"time"
)

type Limiter interface {
	// Allow reports if the action for key may proceed now. When it may not,
	// the duration is how long the caller should wait before trying again.
	Allow(ctx context.Context, key string) (bool, time.Duration)
	Config() Config
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
	KeyPrefix            string
}

func (c Config) PrefixedKey(key string) string {
	if c.KeyPrefix == "" {
		return key
	}
	return c.KeyPrefix + ":" + key
}
