package lookup

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// ThrottledInvoker waits on a rate limiter before every lookup.
type ThrottledInvoker struct {
	inner   Caller
	limiter *rate.Limiter
}

var _ Caller = (*ThrottledInvoker)(nil)

// Throttled wraps inner so that lookups are issued at most at the limiter's
// rate. A nil limiter returns inner unchanged.
func Throttled(inner Caller, limiter *rate.Limiter) Caller {
	if limiter == nil {
		return inner
	}

	return &ThrottledInvoker{inner: inner, limiter: limiter}
}

// NewLimiter builds a limiter for rps lookups per second, or nil when rps <= 0.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}

	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Invoke implements Caller.
func (t *ThrottledInvoker) Invoke(ctx context.Context, reference string, arg any) (Value, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return Value{}, fmt.Errorf("%w: %s: waiting for rate limiter: %w", ErrInvocation, reference, err)
	}

	return t.inner.Invoke(ctx, reference, arg)
}
