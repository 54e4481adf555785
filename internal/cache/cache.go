package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache fino sobre redis para leituras baratas de recalcular (o
// template semanal, por exemplo). Sem REDIS_URL configurado vira no-op
// e nenhuma resposta passa a depender dele.
type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

func New(redisURL string, log *zap.Logger) *Cache {
	if redisURL == "" {
		return &Cache{log: log}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, cache disabled", zap.Error(err))
		return &Cache{log: log}
	}

	return &Cache{client: redis.NewClient(opts), log: log}
}

func (c *Cache) Enabled() bool {
	return c.client != nil
}

// GetJSON tenta preencher dest; qualquer falha conta como cache miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Debug("cache delete failed", zap.Error(err))
	}
}
