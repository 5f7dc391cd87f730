package ratelimit

import (
	"context"
	"time"
)

// Limiter enforces a minimum interval between outbound generation calls.
// It is a single-slot limiter: one waiter at a time, which matches the
// one-in-flight-request-per-session model. State lives for the lifetime of
// the owning session.
type Limiter struct {
	interval time.Duration
	last     time.Time // completion instant of the previous Acquire

	// Injectable clock for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter that spaces Acquire completions by at least
// interval. A zero or negative interval disables waiting.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Acquire blocks until at least the configured interval has elapsed since
// the previous Acquire completed, then records the new baseline. The first
// call returns immediately. Waiting is interrupted by ctx cancellation, in
// which case the baseline is not advanced.
func (l *Limiter) Acquire(ctx context.Context) error {
	if !l.last.IsZero() {
		if remaining := l.interval - l.now().Sub(l.last); remaining > 0 {
			if err := l.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	l.last = l.now()
	return nil
}

// Ready reports whether an Acquire would return without waiting, and the
// remaining wait otherwise. Used by the diagnostics panel.
func (l *Limiter) Ready() (bool, time.Duration) {
	if l.last.IsZero() {
		return true, 0
	}
	remaining := l.interval - l.now().Sub(l.last)
	if remaining <= 0 {
		return true, 0
	}
	return false, remaining
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
