package redis_ratelimiter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
)

// Prune, count and append run in one script so two API processes can not
// both observe a free slot and admit together.
//
// KEYS[1] sorted set of admission times in ms
// ARGV[1] now ms, ARGV[2] window ms, ARGV[3] limit, ARGV[4] member
// returns {allowed, wait ms}
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

if redis.call('ZCARD', key) >= limit then
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	local wait = window
	if oldest[2] then
		wait = tonumber(oldest[2]) + window - now
	end
	return {0, wait}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return {1, 0}
`)

func NewRedisSlidingWindowLimiter(rdb *redis.Client, conf ratelimiter.Config, opts ...Option) ratelimiter.Limiter {
	return newRedisRatelimiter(rdb, conf, slidingWindowKeyPrefix, _slidingWindowAllow, opts...)
}

func _slidingWindowAllow(ctx context.Context, key string, l *redisRatelimiter) (bool, time.Duration) {
	perWindow := l.conf.RequestsPerTimeFrame
	window := l.conf.TimeFrame
	log := zerolog.Ctx(ctx).With().Str("key", key).Int("per_window", perWindow).Dur("window", window).Logger()

	now := l.clock().UnixMilli()
	member := uuid.NewString()

	res, err := slidingWindowScript.Run(ctx, l.rdb, []string{key}, now, window.Milliseconds(), perWindow, member).Int64Slice()
	if err != nil || len(res) != 2 {
		log.Err(err).Msg("Can't rate limit, got an error from redis while running the sliding window script. Rejecting the request")
		return false, window
	}

	if res[0] == 1 {
		return true, 0
	}
	return false, time.Duration(res[1]) * time.Millisecond
}
