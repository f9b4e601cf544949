package view

import (
	"context"
	"time"
)

// Clock is the time source used for the minimum display rule.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time                         { return time.Now() }
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// DelayUntilElapsed blocks until floor has passed since start, or returns
// ctx.Err() if ctx ends first. It returns immediately when floor has
// already elapsed.
func DelayUntilElapsed(ctx context.Context, clock Clock, start time.Time, floor time.Duration) error {
	remaining := floor - clock.Now().Sub(start)
	if remaining <= 0 {
		return nil
	}
	select {
	case <-clock.After(remaining):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
