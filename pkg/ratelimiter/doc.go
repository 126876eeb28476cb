// Package ratelimiter implements token bucket rate limiting keyed by an
// arbitrary string, typically a client IP.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each allowed request consumes tokens; a request that would
// take the bucket below zero is refused and consumes nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: 2 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	res, err := limiter.Allow(ctx, ip)
//	if err == nil && !res.Allowed() {
//		// retry after res.RetryAfter()
//	}
//
// MemoryStore keeps buckets in process memory. Run its cleanup loop next to
// the HTTP server so idle buckets do not accumulate:
//
//	g.Go(store.Run(ctx))
package ratelimiter
