package cartstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

// RedisStore keeps each slot as a JSON value under cart:slot:<name>.
type RedisStore struct {
	client *redis.Client
	slot   string
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, slot string, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, slot: slot, ttl: ttl, logger: logger}
}

func (s *RedisStore) key() string {
	return "cart:slot:" + s.slot
}

func (s *RedisStore) Load(ctx context.Context) []models.LineItem {
	data, err := s.client.Get(ctx, s.key()).Result()
	if err == redis.Nil {
		return []models.LineItem{}
	}
	if err != nil {
		s.logger.Warn("cart slot unreadable, starting empty",
			zap.String("slot", s.slot), zap.Error(err))
		return []models.LineItem{}
	}

	var items []models.LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		s.logger.Warn("cart slot malformed, starting empty",
			zap.String("slot", s.slot), zap.Error(err))
		return []models.LineItem{}
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items
}

func (s *RedisStore) Save(ctx context.Context, items []models.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(), data, s.ttl).Err()
}
