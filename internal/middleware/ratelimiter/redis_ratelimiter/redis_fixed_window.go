package redis_ratelimiter

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
)

// NewRedisFixedWindowLimiter counts requests per aligned time frame. Cheaper
// than the sliding window and used for the global throttle.
func NewRedisFixedWindowLimiter(rdb *redis.Client, conf ratelimiter.Config, opts ...Option) ratelimiter.Limiter {
	return newRedisRatelimiter(rdb, conf, fixedWindowKeyPrefix, _fixedWindowAllow, opts...)
}

func _fixedWindowAllow(ctx context.Context, key string, l *redisRatelimiter) (bool, time.Duration) {
	perTimeFrame := l.conf.RequestsPerTimeFrame
	timeFrame := l.conf.TimeFrame
	log := zerolog.Ctx(ctx).With().Str("key", key).Int("per_time_frame", perTimeFrame).Dur("time_frame", timeFrame).Logger()

	nowMilli := l.clock().UnixMilli()
	frameMilli := timeFrame.Milliseconds()
	frameIndex := nowMilli / frameMilli
	keyTimeFrame := key + ":" + strconv.FormatInt(frameIndex, 10)

	pip := l.rdb.TxPipeline()
	incr := pip.Incr(ctx, keyTimeFrame)
	pip.PExpire(ctx, keyTimeFrame, timeFrame)
	if _, err := pip.Exec(ctx); err != nil {
		log.Err(err).Msg("Can't rate limit, got an error from redis while exec the TxPipeline. Rejecting the request")
		return false, timeFrame
	}

	if incr.Val() > int64(perTimeFrame) {
		remaining := (frameIndex+1)*frameMilli - nowMilli
		return false, time.Duration(remaining) * time.Millisecond
	}

	return true, 0
}
