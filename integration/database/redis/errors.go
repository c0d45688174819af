package redis

import "errors"

// Sentinel errors returned by Connect and Healthcheck. Wrapped causes are
// attached with errors.Join, so errors.Is works on both sides.
var (
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
