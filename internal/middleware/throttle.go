package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/utils"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/resutils"
	"golang.org/x/sync/semaphore"
)

const defaultBacklogTimeout = 60 * time.Second

type ThrottleOpts struct {
	// Limit is the number of requests served at the same time.
	Limit int
	// BacklogLimit is the number of extra requests allowed to wait for a slot.
	BacklogLimit   int
	BacklogTimeout time.Duration
	// RetryAfter, when set, is sent as the Retry-After header on rejection.
	RetryAfter time.Duration
}

// Throttle caps the number of in-flight requests behind it across all
// clients. It is not a per-client limiter: it protects the outbound fan-out
// (GitHub API calls) from being multiplied by a burst of page loads.
func Throttle(limit int) func(http.Handler) http.HandlerFunc {
	return ThrottleWithOpts(ThrottleOpts{Limit: limit, BacklogTimeout: defaultBacklogTimeout})
}

// ThrottleBacklog is Throttle with a bounded queue of waiting requests.
func ThrottleBacklog(limit, backlogLimit int, backlogTimeout time.Duration) func(http.Handler) http.HandlerFunc {
	return ThrottleWithOpts(ThrottleOpts{
		Limit:          limit,
		BacklogLimit:   backlogLimit,
		BacklogTimeout: backlogTimeout,
		RetryAfter:     backlogTimeout,
	})
}

func ThrottleWithOpts(opts ThrottleOpts) func(http.Handler) http.HandlerFunc {
	utils.Assert(opts.Limit >= 1, "middleware: Throttle expects limit >= 1")
	utils.Assert(opts.BacklogLimit >= 0, "middleware: Throttle expects backlogLimit >= 0")

	sem := semaphore.NewWeighted(int64(opts.Limit))
	capacity := int64(opts.Limit + opts.BacklogLimit)
	var pending atomic.Int64

	reject := func(w http.ResponseWriter, r *http.Request, reason string) {
		zerolog.Ctx(r.Context()).Warn().Str("reason", reason).Int("limit", opts.Limit).Msg("throttled request")
		if opts.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(opts.RetryAfter)))
		}
		resutils.WriteError(r.Context(), w, http.StatusTooManyRequests, apperr.ErrTooManyRequests)
	}

	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if pending.Add(1) > capacity {
				pending.Add(-1)
				reject(w, r, "capacity exceeded")
				return
			}
			defer pending.Add(-1)

			if !sem.TryAcquire(1) {
				if opts.BacklogLimit == 0 {
					reject(w, r, "capacity exceeded")
					return
				}

				waitCtx, cancel := context.WithTimeout(r.Context(), opts.BacklogTimeout)
				err := sem.Acquire(waitCtx, 1)
				cancel()
				if err != nil {
					if r.Context().Err() != nil {
						// the client went away while queued
						return
					}
					reject(w, r, "backlog timeout")
					return
				}
			}
			defer sem.Release(1)

			next.ServeHTTP(w, r)
		}
	}
}
