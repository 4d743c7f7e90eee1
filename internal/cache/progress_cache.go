// Package cache keeps progress snapshots in Redis
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

const progressKeyPrefix = "progress"

type progressCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProgressCache creates a new Redis backed progress cache
// Snapshots expire after "ttl", a non-positive ttl disables expiry
func NewProgressCache(redis *redis.Client, ttl time.Duration, logger *zap.Logger) *progressCache {
	return &progressCache{
		redis:  redis,
		ttl:    ttl,
		logger: logger,
	}
}

// ProgressKey returns the Redis key of a learner's snapshot for one language
func ProgressKey(learnerID int, language models.Language) string {
	return fmt.Sprintf("%s:%d:%s", progressKeyPrefix, learnerID, language)
}

// Get returns the cached snapshot, or nil without error on a cache miss
func (c *progressCache) Get(ctx context.Context, learnerID int, language models.Language) (*models.ProgressSnapshot, error) {
	data, err := c.redis.Get(ctx, ProgressKey(learnerID, language)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read progress cache: %w", err)
	}

	var snapshot models.ProgressSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupted entry is treated as a miss and overwritten by the next Set
		c.logger.Warn("failed to decode cached progress", zap.Error(err), zap.Int("learner_id", learnerID))
		return nil, nil
	}

	return &snapshot, nil
}

// Set stores the snapshot under the learner and language of the snapshot
func (c *progressCache) Set(ctx context.Context, learnerID int, snapshot models.ProgressSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.redis.Set(ctx, ProgressKey(learnerID, snapshot.Language), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write progress cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot so the next read reloads it
func (c *progressCache) Invalidate(ctx context.Context, learnerID int, language models.Language) error {
	if err := c.redis.Del(ctx, ProgressKey(learnerID, language)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate progress cache: %w", err)
	}
	return nil
}
