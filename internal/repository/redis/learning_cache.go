package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smartShop/domain"

	"github.com/redis/go-redis/v9"
)

const (
	learningKey = "learning:aggregates"
	learningTTL = 24 * time.Hour
)

// LearningCache keeps the serialized suggestion aggregates so a suggestion
// request does not replay the full sale history. A miss is not an error; the
// caller replays and writes back.
type LearningCache struct {
	client *redis.Client
}

func NewLearningCache(client *redis.Client) *LearningCache {
	return &LearningCache{
		client: client,
	}
}

func (c *LearningCache) Get(ctx context.Context) (*domain.LearningData, bool, error) {
	val, err := c.client.Get(ctx, learningKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get learning data from Redis: %w", err)
	}

	var ld domain.LearningData
	if err := json.Unmarshal([]byte(val), &ld); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal learning data: %w", err)
	}

	return &ld, true, nil
}

func (c *LearningCache) Set(ctx context.Context, ld *domain.LearningData) error {
	jsonData, err := json.Marshal(ld)
	if err != nil {
		return fmt.Errorf("failed to marshal learning data: %w", err)
	}

	if err := c.client.Set(ctx, learningKey, jsonData, learningTTL).Err(); err != nil {
		return fmt.Errorf("failed to store learning data in Redis: %w", err)
	}

	return nil
}

// Invalidate drops the cached aggregates, forcing a replay on next read.
func (c *LearningCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, learningKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate learning data: %w", err)
	}
	return nil
}
