package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"socialhub/services/translate/internal/entity"

	"github.com/redis/go-redis/v9"
)

const translationTTL = time.Hour

type RedisTranslationCache struct {
	client *redis.Client
}

func NewRedisTranslationCache(client *redis.Client) *RedisTranslationCache {
	return &RedisTranslationCache{client: client}
}

func key(postID, language string, version int64) string {
	return fmt.Sprintf("translate:post:%s:%s:%d", postID, language, version)
}

// Get returns nil without error on a miss.
func (c *RedisTranslationCache) Get(ctx context.Context, postID, language string, version int64) (*entity.PostTranslation, error) {
	raw, err := c.client.Get(ctx, key(postID, language, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached translation: %w", err)
	}

	var t entity.PostTranslation
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode cached translation: %w", err)
	}
	return &t, nil
}

func (c *RedisTranslationCache) Set(ctx context.Context, version int64, t *entity.PostTranslation) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode translation: %w", err)
	}
	if err := c.client.Set(ctx, key(t.PostID, t.Language, version), raw, translationTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache translation: %w", err)
	}
	return nil
}
