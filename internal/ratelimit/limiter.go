package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bralash/rants-api/internal/cache"
	apperrors "github.com/bralash/rants-api/internal/errors"
)

// Quota is the number of requests allowed per window for one bucket.
type Quota struct {
	Requests int
	Window   time.Duration
}

// PerMinute builds a quota with the standard 60 second window.
func PerMinute(requests int) Quota {
	return Quota{Requests: requests, Window: time.Minute}
}

// CounterStore increments a windowed counter and returns the new count.
// Implementations must expire counters after the window passes.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Limiter enforces fixed-window quotas keyed by bucket and caller identity.
type Limiter struct {
	store CounterStore
	now   func() time.Time
}

// NewLimiter creates a limiter over the given counter store.
func NewLimiter(store CounterStore) *Limiter {
	return &Limiter{store: store, now: time.Now}
}

// Check counts one request against the bucket's quota for the given key and
// returns ErrRateLimited once the quota is exhausted within the current
// window. A counter-store failure fails open: availability over strictness.
func (l *Limiter) Check(ctx context.Context, bucket, key string, quota Quota) error {
	window := int64(quota.Window.Seconds())
	if window <= 0 {
		window = 60
	}
	// The window number in the key makes resets implicit: a new window is a
	// fresh counter, and the old one expires on its own.
	counterKey := fmt.Sprintf("ratelimit:%s:%s:%d", bucket, key, l.now().Unix()/window)

	count, err := l.store.Incr(ctx, counterKey, quota.Window)
	if err != nil {
		return nil
	}
	if count > int64(quota.Requests) {
		return apperrors.ErrRateLimited
	}
	return nil
}

// RedisStore backs counters with Redis INCR+EXPIRE through the cache client.
type RedisStore struct {
	cache *cache.Client
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(cache *cache.Client) *RedisStore {
	return &RedisStore{cache: cache}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return s.cache.Incr(ctx, key, window)
}

// MemoryStore is an in-process counter store. It serves single-instance
// deployments without Redis and the test suite.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

// NewMemoryStore creates an in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry), now: time.Now}
}

func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.expires) {
		entry = &memoryEntry{expires: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	// Drop stale counters opportunistically to bound memory.
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}

	return entry.count, nil
}
