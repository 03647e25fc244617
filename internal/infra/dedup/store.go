package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "webhook:delivery:"

	// DefaultTTL время хранения отметки о доставке
	DefaultTTL = 24 * time.Hour
)

// RedisStore отмечает доставки вебхуков через SET NX с TTL
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore создает хранилище отметок
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// MarkDelivered возвращает true, если transmissionID встречается впервые за TTL
func (s *RedisStore) MarkDelivered(ctx context.Context, transmissionID string) (bool, error) {
	first, err := s.client.SetNX(ctx, keyPrefix+transmissionID, time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return first, nil
}

// NopStore используется при выключенной дедупликации: каждая доставка считается первой
type NopStore struct{}

// MarkDelivered всегда возвращает true
func (NopStore) MarkDelivered(context.Context, string) (bool, error) {
	return true, nil
}
