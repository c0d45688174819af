// Package redis provides Redis client initialization and health checking.
//
// It wraps the go-redis client with URL validation, exponential backoff
// retry, and a ping-based connectivity check before the client is handed to
// the caller. Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// All configuration is handled through the Config struct with environment
// variable mapping; see Config for the knobs and their defaults.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("redis:", err)
//	}
//	defer client.Close()
//
// Healthcheck returns a probe function suitable for readiness endpoints.
package redis
