// Package ratelimiter provides token bucket rate limiting with pluggable
// storage backends.
//
// A Bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request consumes tokens; when the bucket runs dry the
// request is denied until the next refill. Bursts up to Capacity are allowed
// while the average rate stays bounded.
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     5,
//		RefillInterval: time.Minute,
//	})
//
//	result, err := limiter.Allow(ctx, "login:"+ip)
//	if !result.Allowed() {
//		// deny, result.RetryAfter() says when to come back
//	}
//
// RedisStore shares the same bucket state across replicas; MemoryStore keeps
// it per-process.
package ratelimiter
