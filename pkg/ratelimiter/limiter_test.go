package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowjesty/tasknest/pkg/ratelimiter"
)

func newLimiter(t *testing.T, cfg ratelimiter.Config) *ratelimiter.Bucket {
	t.Helper()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	limiter, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return limiter
}

func TestNewBucketValidation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))

	_, err := ratelimiter.NewBucket(nil, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	_, err = ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	_, err = ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	_, err = ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1})
	require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestAllowExhaustsBucket(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, ratelimiter.Config{Capacity: 3, RefillRate: 3, RefillInterval: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, result.Allowed(), "request %d should pass", i)
		assert.Equal(t, 3, result.Limit)
	}

	result, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, result.Allowed())
	assert.Greater(t, result.RetryAfter(), time.Duration(0))
}

func TestAllowKeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, first.Allowed())

	denied, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, denied.Allowed())

	other, err := limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, other.Allowed())
}

func TestRefillRestoresTokens(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 50 * time.Millisecond})
	ctx := context.Background()

	result, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.True(t, result.Allowed())

	result, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.False(t, result.Allowed())

	time.Sleep(60 * time.Millisecond)

	result, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, result.Allowed())
}

func TestAllowNRejectsInvalidCount(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})

	_, err := limiter.AllowN(context.Background(), "client", 0)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	_, err = limiter.AllowN(context.Background(), "client", -1)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestResetLiftsLimit(t *testing.T) {
	t.Parallel()

	limiter := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)

	denied, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.False(t, denied.Allowed())

	require.NoError(t, limiter.Reset(ctx, "client"))

	result, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, result.Allowed())
}
