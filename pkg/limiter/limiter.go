// Package limiter throttles calls to the chat and inference backends.
package limiter

import (
	"context"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

// New returns a limiter allowing limit calls per second with an equal burst.
// A nil or non-positive limit disables limiting.
func New(limit *int) *rate.Limiter {
	if limit == nil || *limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}

	return l.Wait(ctx)
}
