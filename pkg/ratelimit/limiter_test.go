package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock drives the limiter deterministically: sleeping advances the
// clock by exactly the requested duration.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeLimiter(interval time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	l := New(interval)
	l.now = func() time.Time { return clock.now }
	l.sleep = func(ctx context.Context, d time.Duration) error {
		clock.slept = append(clock.slept, d)
		clock.now = clock.now.Add(d)
		return nil
	}
	return l, clock
}

func TestFirstAcquireIsImmediate(t *testing.T) {
	l, clock := newFakeLimiter(2 * time.Second)

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(clock.slept) != 0 {
		t.Errorf("first acquire slept %v, want no sleep", clock.slept)
	}
}

func TestConsecutiveAcquiresAreSpaced(t *testing.T) {
	l, clock := newFakeLimiter(2 * time.Second)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	first := clock.now

	// Half a second of work between calls; the limiter owes 1.5s more.
	clock.now = clock.now.Add(500 * time.Millisecond)
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if got := clock.now.Sub(first); got < 2*time.Second {
		t.Errorf("acquire completions %v apart, want >= 2s", got)
	}
	if len(clock.slept) != 1 || clock.slept[0] != 1500*time.Millisecond {
		t.Errorf("slept %v, want exactly [1.5s]", clock.slept)
	}
}

func TestNoWaitAfterIntervalElapsed(t *testing.T) {
	l, clock := newFakeLimiter(2 * time.Second)
	ctx := context.Background()

	_ = l.Acquire(ctx)
	clock.now = clock.now.Add(3 * time.Second)
	_ = l.Acquire(ctx)

	if len(clock.slept) != 0 {
		t.Errorf("slept %v after interval already elapsed", clock.slept)
	}
}

func TestReady(t *testing.T) {
	l, clock := newFakeLimiter(2 * time.Second)

	ready, wait := l.Ready()
	if !ready || wait != 0 {
		t.Errorf("fresh limiter: ready=%v wait=%v, want ready", ready, wait)
	}

	_ = l.Acquire(context.Background())
	ready, wait = l.Ready()
	if ready || wait != 2*time.Second {
		t.Errorf("just acquired: ready=%v wait=%v, want 2s wait", ready, wait)
	}

	clock.now = clock.now.Add(2 * time.Second)
	ready, _ = l.Ready()
	if !ready {
		t.Error("interval elapsed but limiter not ready")
	}
}

func TestAcquireHonorsContextCancellation(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	l := New(2 * time.Second)
	l.now = func() time.Time { return clock.now }
	l.sleep = sleepCtx // real sleep so cancellation matters

	ctx := context.Background()
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	baseline := l.last

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := l.Acquire(cancelled)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Acquire on cancelled ctx = %v, want context.Canceled", err)
	}
	if !l.last.Equal(baseline) {
		t.Error("cancelled acquire must not advance the baseline")
	}
}
