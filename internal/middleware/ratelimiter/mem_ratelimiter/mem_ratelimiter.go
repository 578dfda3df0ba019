package mem_ratelimiter

import (
	"context"
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
)

type memRatelimiter struct {
	conf  ratelimiter.Config
	allow func(ctx context.Context, key string) (bool, time.Duration)
	// tracked reports the number of keys currently held, for the health endpoint
	tracked func() int
}

func (l *memRatelimiter) Config() ratelimiter.Config {
	return l.conf
}

func (l *memRatelimiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if l.conf.Enabled {
		return l.allow(ctx, l.conf.PrefixedKey(key))
	}
	return true, 0
}

func (l *memRatelimiter) Len() int {
	return l.tracked()
}
