package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dronaai/drona-go-sdk/core"
)

// Redis implements Cache on a shared Redis instance so question sets
// survive process restarts and are shared across replicas.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*Redis)(nil)

// NewRedis connects to the Redis at url (redis:// form). A zero ttl
// uses DefaultTTL.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// Get returns the cached question set, or ok=false on miss or error.
func (r *Redis) Get(ctx context.Context, key Key) ([]core.Question, bool) {
	data, err := r.client.Get(ctx, key.Digest()).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] Redis get failed: %v", err)
		}
		return nil, false
	}

	var questions []core.Question
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		log.Printf("[CACHE] Corrupt cached entry %s: %v", key.Digest(), err)
		return nil, false
	}
	return questions, true
}

// Set stores a question set under the cache TTL.
func (r *Redis) Set(ctx context.Context, key Key, questions []core.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	if err := r.client.Set(ctx, key.Digest(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping tests the Redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
