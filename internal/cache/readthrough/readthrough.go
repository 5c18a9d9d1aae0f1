// Пакет readthrough — обёртка cache-aside над ports.KVCache.
// Кэш — всегда оптимизация: любая ошибка бэкенда (чтение, запись, удаление)
// поглощается локально и деградирует до прямого обращения к источнику.
package readthrough

import (
	"context"
	"errors"
	"time"

	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/pkg/metrics"
)

// FetchFn — авторитетное чтение из источника данных.
type FetchFn func(ctx context.Context) ([]byte, error)

// Source — читающий слой с семантикой get-or-fetch.
type Source struct {
	cache ports.KVCache
	log   ports.Logger
}

// NewSource — DI-конструктор.
func NewSource(cache ports.KVCache, log ports.Logger) *Source {
	return &Source{cache: cache, log: log}
}

// GetOrFetch — вернуть значение по ключу: из кэша при попадании, иначе из
// fetch с записью результата под ttl. Второй результат — признак того, что
// значение пришло из кэша (для логов и метрик).
//
// Защиты от одновременных промахов (single-flight) нет намеренно: параллельные
// запросы по холодному ключу выполняют fetch независимо и перезаписывают
// друг друга — это допустимая неэффективность, не ошибка корректности.
func (s *Source) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFn) ([]byte, bool, error) {
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.CacheOps.WithLabelValues("hit").Inc()
		return cached, true, nil
	case errors.Is(err, ports.ErrCacheMiss):
		metrics.CacheOps.WithLabelValues("miss").Inc()
	default:
		// Ошибка бэкенда на чтении не фатальна: идём в источник.
		metrics.CacheOps.WithLabelValues("error").Inc()
		s.log.Warnf(ctx, "cache.Get failed key=%s err=%v", key, err)
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	if setErr := s.cache.SetWithTTL(ctx, key, value, ttl); setErr != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		s.log.Warnf(ctx, "cache.SetWithTTL failed key=%s err=%v", key, setErr)
	}
	return value, false, nil
}

// Invalidate — безусловно удалить запись. Ошибка удаления логируется и не
// пробрасывается: запись с TTL всё равно истечёт сама.
func (s *Source) Invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		s.log.Warnf(ctx, "cache.Delete failed key=%s err=%v", key, err)
	}
}
