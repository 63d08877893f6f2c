// Package ratelimiter throttles outbound calls to a fixed number per interval.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter blocks until another call is allowed.
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter allows at most limit calls per interval. It is safe for
// concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // calls allowed per interval
	interval  time.Duration // window length
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter creates a RateLimiter. A non-positive limit disables throttling.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
		sleep:     sleepCtx,
	}
}

// Wait reserves a slot and, once the current window is exhausted, sleeps
// until the window holding that slot opens. It returns ctx.Err() if ctx ends
// first. The lock is released before sleeping so queued callers still honour
// their own ctx.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limit <= 0 {
		return nil
	}
	rl.mu.Lock()
	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	// 満杯なら次の window に予約する
	if rl.count >= rl.limit {
		rl.lastReset = rl.lastReset.Add(rl.interval)
		rl.count = 0
	}
	rl.count++
	window := rl.lastReset
	wait := window.Sub(now)
	rl.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	slog.Info("rate limit hit, waiting", "limit", rl.limit, "wait", wait)
	if err := rl.sleep(ctx, wait); err != nil {
		rl.release(window)
		return err
	}
	return nil
}

// release gives back a slot reserved in window when its caller gave up.
func (rl *RateLimiter) release(window time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.lastReset.Equal(window) && rl.count > 0 {
		rl.count--
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
