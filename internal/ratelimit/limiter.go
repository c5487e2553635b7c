// Copyright (c) 2026 TMDB-Service. All rights reserved.

/*
Package ratelimit enforces the two joint limits every outbound upstream
request must respect: R permits per second and C concurrent in-flight
requests.

It uses a single process-wide [golang.org/x/time/rate.Limiter], paired with
a [golang.org/x/sync/semaphore.Weighted] for the concurrency cap.
*/
package ratelimit

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Gate jointly enforces a token-bucket rate and an in-flight concurrency cap.
type Gate struct {
	tokens *rate.Limiter
	slots  *semaphore.Weighted
}

// New builds a Gate admitting permitsPerSecond tokens/sec (burst =
// permitsPerSecond) and at most maxInFlight concurrent holders.
func New(permitsPerSecond int, maxInFlight int) *Gate {
	return &Gate{
		tokens: rate.NewLimiter(rate.Limit(permitsPerSecond), permitsPerSecond),
		slots:  semaphore.NewWeighted(int64(maxInFlight)),
	}
}

// Acquire blocks until both a token and a concurrency slot are available, or
// ctx is done. Callers MUST call Release when the request completes.
func (g *Gate) Acquire(ctx context.Context) error {
	if err := g.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	if err := g.tokens.Wait(ctx); err != nil {
		g.slots.Release(1)
		return err
	}
	return nil
}

// Release frees the concurrency slot acquired by a successful Acquire. The
// token bucket itself has no release; its tokens simply drain over time.
func (g *Gate) Release() {
	g.slots.Release(1)
}
