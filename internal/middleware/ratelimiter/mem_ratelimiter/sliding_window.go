package mem_ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/utils"
)

// SlidingWindow is an exact sliding-window log limiter. For every key it keeps
// the admission timestamps (unix milliseconds) that are still inside the
// trailing window, so at most RequestsPerTimeFrame admissions are recorded for
// a key within any TimeFrame long interval.
//
// A single mutex guards the whole check-and-append, so concurrent calls for the
// same key are serialized. The table lives in process memory only.
type SlidingWindow struct {
	conf    ratelimiter.Config
	clock   func() time.Time
	mu      sync.Mutex
	clients map[string][]int64
}

type options struct {
	clock func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

func applyOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewSlidingWindow(conf ratelimiter.Config, opts ...Option) *SlidingWindow {
	utils.Assert(conf.RequestsPerTimeFrame >= 1, "mem_ratelimiter: sliding window expects RequestsPerTimeFrame >= 1")
	utils.Assert(conf.TimeFrame >= time.Millisecond, "mem_ratelimiter: sliding window expects TimeFrame >= 1ms")

	return &SlidingWindow{
		conf:    conf,
		clock:   applyOptions(opts).clock,
		clients: map[string][]int64{},
	}
}

// NewSlidingWindowLimiter builds a SlidingWindow and, when vacuumEvery > 0,
// starts a goroutine that drops fully stale keys until ctx is done.
func NewSlidingWindowLimiter(ctx context.Context, conf ratelimiter.Config, vacuumEvery time.Duration, opts ...Option) *SlidingWindow {
	sw := NewSlidingWindow(conf, opts...)
	if vacuumEvery > 0 {
		sw.StartVacuumProc(ctx, vacuumEvery)
	}
	return sw
}

func (sw *SlidingWindow) Config() ratelimiter.Config {
	return sw.conf
}

func (sw *SlidingWindow) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if !sw.conf.Enabled {
		return true, 0
	}

	allowed, wait := sw.admit(sw.conf.PrefixedKey(key), sw.clock())
	if !allowed {
		zerolog.Ctx(ctx).Debug().
			Str("limiter_type", "mem_sliding_window").
			Str("key", key).
			Dur("wait", wait).
			Msg("sliding window limit reached")
	}
	return allowed, wait
}

// Admit decides whether a new action for key may proceed at now.
// Timestamps older than the window are pruned first, and the pruning is kept
// even when the action is denied.
func (sw *SlidingWindow) Admit(key string, now time.Time) bool {
	allowed, _ := sw.admit(key, now)
	return allowed
}

func (sw *SlidingWindow) admit(key string, now time.Time) (bool, time.Duration) {
	nowMilli := now.UnixMilli()
	window := sw.conf.TimeFrame.Milliseconds()

	sw.mu.Lock()
	defer sw.mu.Unlock()

	timestamps := sw.clients[key]

	recent := timestamps[:0]
	for _, t := range timestamps {
		if nowMilli-t < window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= sw.conf.RequestsPerTimeFrame {
		sw.clients[key] = recent
		// the oldest admission leaves the window first and frees one slot
		wait := time.Duration(recent[0]+window-nowMilli) * time.Millisecond
		return false, wait
	}

	sw.clients[key] = append(recent, nowMilli)
	return true, 0
}

// Len returns the number of tracked client keys.
func (sw *SlidingWindow) Len() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return len(sw.clients)
}

// Entries returns the number of stored timestamps for key.
func (sw *SlidingWindow) Entries(key string) int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return len(sw.clients[key])
}

// Vacuum deletes the keys whose timestamps are all outside the window at now
// and returns how many were removed.
func (sw *SlidingWindow) Vacuum(now time.Time) int {
	nowMilli := now.UnixMilli()
	window := sw.conf.TimeFrame.Milliseconds()

	sw.mu.Lock()
	defer sw.mu.Unlock()

	removed := 0
	for k, timestamps := range sw.clients {
		// timestamps are appended in call order, the last one is the newest
		if len(timestamps) == 0 || nowMilli-timestamps[len(timestamps)-1] >= window {
			delete(sw.clients, k)
			removed++
		}
	}
	return removed
}

func (sw *SlidingWindow) StartVacuumProc(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := sw.Vacuum(sw.clock()); removed != 0 {
					zerolog.Ctx(ctx).Debug().Int("removed", removed).Str("limiter_type", "mem_sliding_window").Msg("vacuumed stale rate limit keys")
				}
			}
		}
	}()
}
