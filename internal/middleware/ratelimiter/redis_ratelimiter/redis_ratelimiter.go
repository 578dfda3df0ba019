package redis_ratelimiter

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"golang.org/x/crypto/blake2b"
)

type redisRatelimiter struct {
	conf             ratelimiter.Config
	rdb              *redis.Client
	limiterKeyPrefix string
	clock            func() time.Time
	allow            func(ctx context.Context, key string, l *redisRatelimiter) (bool, time.Duration)
}

const (
	slidingWindowKeyPrefix = "rl_sw"
	fixedWindowKeyPrefix   = "rl_fw"
)

type Option func(*redisRatelimiter)

// WithClock replaces time.Now, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(l *redisRatelimiter) { l.clock = clock }
}

func newRedisRatelimiter(rdb *redis.Client, conf ratelimiter.Config, limiterKeyPrefix string, allow func(ctx context.Context, key string, l *redisRatelimiter) (bool, time.Duration), opts ...Option) *redisRatelimiter {
	l := &redisRatelimiter{
		conf:             conf,
		rdb:              rdb,
		limiterKeyPrefix: limiterKeyPrefix,
		clock:            time.Now,
		allow:            allow,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *redisRatelimiter) Config() ratelimiter.Config {
	return l.conf
}

func (l *redisRatelimiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if !l.conf.Enabled {
		return true, 0
	}
	return l.allow(ctx, l.redisKey(key), l)
}

// client keys are ip addresses taken from request headers, so they are hashed
// to keep the redis key bounded and free of attacker controlled bytes
func (l *redisRatelimiter) redisKey(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return l.limiterKeyPrefix + ":" + l.conf.PrefixedKey(hex.EncodeToString(sum[:16]))
}
