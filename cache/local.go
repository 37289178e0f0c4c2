package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/dronaai/drona-go-sdk/core"
)

// Local implements Cache in-process with ristretto. It is the fallback
// when no Redis is configured: same TTL semantics, no cross-process
// sharing.
type Local struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

var _ Cache = (*Local)(nil)

// NewLocal creates an in-process cache. A zero ttl uses DefaultTTL.
func NewLocal(ttl time.Duration) (*Local, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000, // ~10x expected max entries
		MaxCost:     1_000,  // question sets, cost 1 each
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &Local{cache: c, ttl: ttl}, nil
}

// Get returns the cached question set, or ok=false on a miss.
func (l *Local) Get(_ context.Context, key Key) ([]core.Question, bool) {
	v, ok := l.cache.Get(key.Digest())
	if !ok {
		return nil, false
	}
	questions, ok := v.([]core.Question)
	return questions, ok
}

// Set stores a question set under the cache TTL. Ristretto admits
// writes asynchronously; Wait makes the entry visible to an immediate
// follow-up Get.
func (l *Local) Set(_ context.Context, key Key, questions []core.Question) error {
	l.cache.SetWithTTL(key.Digest(), questions, 1, l.ttl)
	l.cache.Wait()
	return nil
}

// Close releases the cache.
func (l *Local) Close() error {
	l.cache.Close()
	return nil
}
