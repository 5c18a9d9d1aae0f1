package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/resto-app/backend/internal/ports"
)

// Проверка, что KVCache удовлетворяет интерфейсу ports.KVCache.
var _ ports.KVCache = (*KVCache)(nil)

// KVCache — реализация кэша на Redis.
// Клиент создаётся снаружи и передаётся явно (без глобального singleton).
type KVCache struct {
	client *redis.Client
}

// NewKVCache — конструктор KVCache.
func NewKVCache(client *redis.Client) *KVCache {
	return &KVCache{client: client}
}

// NewClient — клиент Redis с ping для fail-fast при недоступном бэкенде.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Get — значение по ключу; ports.ErrCacheMiss при отсутствии.
func (c *KVCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SetWithTTL — запись значения с TTL; ttl <= 0 означает запись без истечения.
func (c *KVCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete — удаление ключа; отсутствие ключа не ошибка (DEL вернёт 0).
func (c *KVCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
