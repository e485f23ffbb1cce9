package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"socialhub/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	maxEntries = 100
	inboxTTL   = 30 * 24 * time.Hour
)

// RedisInbox keeps the newest notifications per user in a capped Redis list.
type RedisInbox struct {
	client *redis.Client
}

func NewRedisInbox(client *redis.Client) *RedisInbox {
	return &RedisInbox{client: client}
}

func key(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (i *RedisInbox) Push(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	k := key(n.UserID)
	pipe := i.client.TxPipeline()
	pipe.LPush(ctx, k, payload)
	pipe.LTrim(ctx, k, 0, maxEntries-1)
	pipe.Expire(ctx, k, inboxTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (i *RedisInbox) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	k := key(userID)
	raw, err := i.client.LRange(ctx, k, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err == nil {
			notifications = append(notifications, n)
		}
	}

	total, err := i.client.LLen(ctx, k).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return notifications, total, nil
}

func (i *RedisInbox) Clear(ctx context.Context, userID string) error {
	if err := i.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
