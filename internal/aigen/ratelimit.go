package aigen

import (
	"context"

	"golang.org/x/time/rate"
)

// rateLimited throttles calls to an inner client so pipeline workers
// cannot overrun the upstream service's quota.
type rateLimited struct {
	inner   Client
	limiter *rate.Limiter
}

// NewRateLimited wraps client so GeneratePairs calls are admitted at
// rps requests per second with the given burst. Non-positive values
// disable throttling.
func NewRateLimited(client Client, rps float64, burst int) Client {
	if rps <= 0 || burst <= 0 {
		return client
	}
	return &rateLimited{
		inner:   client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *rateLimited) Model() string { return r.inner.Model() }

func (r *rateLimited) GeneratePairs(ctx context.Context, text string, n int) ([]Pair, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.GeneratePairs(ctx, text, n)
}
