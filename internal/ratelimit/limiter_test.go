package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/bralash/rants-api/internal/errors"
)

type failingStore struct{}

func (failingStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func newTestLimiter(at time.Time) (*Limiter, *MemoryStore, *time.Time) {
	clock := at
	store := NewMemoryStore()
	store.now = func() time.Time { return clock }
	limiter := NewLimiter(store)
	limiter.now = func() time.Time { return clock }
	return limiter, store, &clock
}

func TestLimiter_BlocksAboveQuota(t *testing.T) {
	limiter, _, _ := newTestLimiter(time.Unix(1000, 0))
	quota := PerMinute(5)

	for i := 0; i < 5; i++ {
		assert.NoError(t, limiter.Check(context.Background(), "login", "203.0.113.9", quota))
	}

	err := limiter.Check(context.Background(), "login", "203.0.113.9", quota)
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestLimiter_ResetsAfterWindow(t *testing.T) {
	limiter, _, clock := newTestLimiter(time.Unix(1000, 0))
	quota := PerMinute(5)

	for i := 0; i < 6; i++ {
		_ = limiter.Check(context.Background(), "login", "203.0.113.9", quota)
	}
	assert.ErrorIs(t, limiter.Check(context.Background(), "login", "203.0.113.9", quota), apperrors.ErrRateLimited)

	*clock = clock.Add(time.Minute)
	assert.NoError(t, limiter.Check(context.Background(), "login", "203.0.113.9", quota))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _, _ := newTestLimiter(time.Unix(1000, 0))
	quota := Quota{Requests: 1, Window: time.Minute}

	assert.NoError(t, limiter.Check(context.Background(), "public", "203.0.113.9", quota))
	assert.ErrorIs(t, limiter.Check(context.Background(), "public", "203.0.113.9", quota), apperrors.ErrRateLimited)

	// a different caller and a different bucket both have fresh counters
	assert.NoError(t, limiter.Check(context.Background(), "public", "198.51.100.4", quota))
	assert.NoError(t, limiter.Check(context.Background(), "login", "203.0.113.9", quota))
}

func TestLimiter_FailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{})
	quota := PerMinute(1)

	for i := 0; i < 10; i++ {
		assert.NoError(t, limiter.Check(context.Background(), "api", "user:1", quota))
	}
}

func TestMemoryStore_ExpiresCounters(t *testing.T) {
	clock := time.Unix(1000, 0)
	store := NewMemoryStore()
	store.now = func() time.Time { return clock }

	count, err := store.Incr(context.Background(), "k", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(context.Background(), "k", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	clock = clock.Add(2 * time.Minute)
	count, err = store.Incr(context.Background(), "k", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
