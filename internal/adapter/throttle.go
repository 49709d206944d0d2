package adapter

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// throttle spaces out outgoing requests so a burst of pushes cannot burn
// through the store's hourly quota. A non-positive limit disables it.
type throttle struct {
	limiter *rate.Limiter
}

func newThrottle(perSecond float64) *throttle {
	if perSecond <= 0 {
		return &throttle{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &throttle{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

func (t *throttle) wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
