// Package cache stores generated question sets under a TTL so repeat
// setups skip the generation round-trip. Cache failures are never
// fatal: a miss just regenerates.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dronaai/drona-go-sdk/core"
)

// DefaultTTL is how long a cached question set stays valid.
const DefaultTTL = 6 * time.Hour

// Key identifies one generated question set. Two setups with the same
// topics (order-insensitive), difficulty, role and count share an entry.
type Key struct {
	Topics     []string
	Difficulty core.Difficulty
	Role       string
	Count      int
}

// Digest returns the deterministic cache key string.
func (k Key) Digest() string {
	topics := append([]string(nil), k.Topics...)
	sort.Strings(topics)
	raw := fmt.Sprintf("%s:%s:%s:%d", strings.Join(topics, ","), k.Difficulty, k.Role, k.Count)
	sum := md5.Sum([]byte(raw))
	return "drona:questions:" + hex.EncodeToString(sum[:])
}

// Cache is the question-set cache interface.
// Implementations: Redis (shared, cross-process), Local (in-process).
type Cache interface {
	// Get returns the cached question set, or ok=false on a miss or
	// any backend trouble.
	Get(ctx context.Context, key Key) (questions []core.Question, ok bool)

	// Set stores a question set under the cache TTL.
	Set(ctx context.Context, key Key, questions []core.Question) error

	// Close releases backend resources.
	Close() error
}
