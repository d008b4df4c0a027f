// Package ratelimit enforces the 1Password write caps with two independent
// token windows, one hourly and one daily. A submission needs a token from
// both before it may proceed.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxWait bounds how long a single acquisition may block. Waiting
// longer than an hour and change means the hourly window itself cannot admit
// the request and the run is stalled for good.
const DefaultMaxWait = 65 * time.Minute

// ErrMaxWaitExceeded is returned when a token would not become available
// within the maximum wait.
var ErrMaxWaitExceeded = errors.New("rate limit wait exceeded the maximum")

// DualWindow grants tokens from an hourly and a daily window at once.
// It is used by a single upload loop; acquisitions never run concurrently.
type DualWindow struct {
	hourly  *rate.Limiter
	daily   *rate.Limiter
	maxWait time.Duration
}

// New returns a limiter admitting hourlyCap operations per hour and dailyCap
// operations per day. Both caps must be positive.
func New(hourlyCap, dailyCap int) *DualWindow {
	return newWithPeriods(hourlyCap, time.Hour, dailyCap, 24*time.Hour, DefaultMaxWait)
}

func newWithPeriods(hourlyCap int, hourlyPeriod time.Duration, dailyCap int, dailyPeriod time.Duration, maxWait time.Duration) *DualWindow {
	return &DualWindow{
		hourly:  rate.NewLimiter(rate.Every(hourlyPeriod/time.Duration(hourlyCap)), hourlyCap),
		daily:   rate.NewLimiter(rate.Every(dailyPeriod/time.Duration(dailyCap)), dailyCap),
		maxWait: maxWait,
	}
}

// Acquire blocks until both windows admit one operation, the maximum wait is
// exceeded, or ctx is cancelled. Exceeding the maximum wait is fatal to the
// run, not a retryable condition.
func (w *DualWindow) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, w.maxWait)
	defer cancel()

	if err := w.hourly.Wait(waitCtx); err != nil {
		return w.acquireErr(ctx, err)
	}
	if err := w.daily.Wait(waitCtx); err != nil {
		return w.acquireErr(ctx, err)
	}

	return nil
}

func (w *DualWindow) acquireErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w (%s): %v", ErrMaxWaitExceeded, w.maxWait, err)
}
