package mem_ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/utils"
	"golang.org/x/time/rate"
)

// NewTokenBucketLimiter returns a per-key token bucket that refills
// RequestsPerTimeFrame tokens every TimeFrame with a burst of
// RequestsPerTimeFrame. It smooths bursts and is used for the global throttle,
// not for the contact limit which needs the exact window.
func NewTokenBucketLimiter(ctx context.Context, conf ratelimiter.Config, opts ...Option) ratelimiter.Limiter {
	utils.Assert(conf.RequestsPerTimeFrame >= 1, "mem_ratelimiter: token bucket expects RequestsPerTimeFrame >= 1")
	utils.Assert(conf.TimeFrame > 0, "mem_ratelimiter: token bucket expects TimeFrame > 0")

	tb := &tokenBucket{
		conf:    conf,
		clock:   applyOptions(opts).clock,
		clients: map[string]*client{},
	}
	tb.startVacuumProc(ctx)

	return &memRatelimiter{
		conf: conf,
		allow: func(ctx context.Context, key string) (bool, time.Duration) {
			return tb.allow(key)
		},
		tracked: tb.len,
	}
}

type tokenBucket struct {
	conf    ratelimiter.Config
	clock   func() time.Time
	clients map[string]*client
	mu      sync.Mutex
}

type client struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

func (tb *tokenBucket) every() time.Duration {
	return tb.conf.TimeFrame / time.Duration(tb.conf.RequestsPerTimeFrame)
}

func (tb *tokenBucket) allow(key string) (bool, time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.clock()
	c, ok := tb.clients[key]
	if !ok {
		c = &client{
			limiter: rate.NewLimiter(
				rate.Every(tb.every()),
				tb.conf.RequestsPerTimeFrame,
			),
		}
		tb.clients[key] = c
	}
	c.lastUsed = now

	if c.limiter.AllowN(now, 1) {
		return true, 0
	}
	return false, tb.every()
}

func (tb *tokenBucket) len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.clients)
}

// a bucket idle for a whole time frame is full again, dropping it loses nothing
func (tb *tokenBucket) vacuum() {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.clock()
	for k, v := range tb.clients {
		if now.Sub(v.lastUsed) >= tb.conf.TimeFrame {
			delete(tb.clients, k)
		}
	}
}

func (tb *tokenBucket) startVacuumProc(ctx context.Context) {
	ticker := time.NewTicker(max(tb.conf.TimeFrame, time.Second))
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tb.vacuum()
			}
		}
	}()
}
