// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetcher

import (
	"context"
	"time"
)

// Clock supplies the time source and the blocking wait used between
// dispatches. Tests substitute a fake to avoid real sleeps.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// systemClock reads time.Now, whose values carry Go's monotonic clock
// reading, so Sub between two of them is immune to wall-clock adjustments.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
