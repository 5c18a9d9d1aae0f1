package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss — ключ отсутствует в кэше (или запись истекла).
var ErrCacheMiss = errors.New("cache miss")

// KVCache — интерфейс key-value кэша (Redis и in-memory реализации).
// Ошибки бэкенда возвращаются как есть; решение о деградации принимает вызывающий слой.
type KVCache interface {
	// Get — вернуть значение по ключу; ErrCacheMiss при промахе.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetWithTTL — сохранить значение с временем жизни.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete — безусловно удалить ключ; отсутствие ключа не ошибка.
	Delete(ctx context.Context, key string) error
}
