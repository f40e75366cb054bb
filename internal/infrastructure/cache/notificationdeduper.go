package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// notificationKeyPrefix is the prefix for delivered-notification markers
	notificationKeyPrefix = "notification_sent:"
	defaultDedupeTTL      = 24 * time.Hour
)

// NotificationDeduper remembers delivered dedupe keys in Redis so replicas
// share one view. Entries expire after the TTL.
type NotificationDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNotificationDeduper(client *redis.Client, ttl time.Duration) *NotificationDeduper {
	if ttl <= 0 {
		ttl = defaultDedupeTTL
	}
	return &NotificationDeduper{client: client, ttl: ttl}
}

// buildKey builds the Redis key for a dedupe key
// Format: notification_sent:{event_id}:{recipient_id}
func (d *NotificationDeduper) buildKey(key string) string {
	return notificationKeyPrefix + key
}

func (d *NotificationDeduper) Seen(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	exists, err := d.client.Exists(ctx, d.buildKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dedupe key: %w", err)
	}
	return exists > 0, nil
}

func (d *NotificationDeduper) MarkSeen(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := d.client.Set(ctx, d.buildKey(key), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark dedupe key: %w", err)
	}
	return nil
}

// TryAcquire atomically claims key with SetNX. It returns false when another
// worker already claimed it within the TTL.
func (d *NotificationDeduper) TryAcquire(ctx context.Context, key string) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(key), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire dedupe key: %w", err)
	}
	return acquired, nil
}
