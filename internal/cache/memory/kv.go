package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/pkg/metrics"
)

// Проверка, что KVCache удовлетворяет интерфейсу ports.KVCache.
var _ ports.KVCache = (*KVCache)(nil)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time // нулевое время — без истечения
}

// KVCache — in-memory key-value кэш: LRU по ёмкости + TTL на запись.
// Используется в тестах и в конфигурации без Redis.
type KVCache struct {
	capacity int

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewKVCache — конструктор; capacity <= 0 трактуется как 1.
func NewKVCache(capacity int) *KVCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &KVCache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — значение по ключу; ports.ErrCacheMiss при промахе или истечении.
func (c *KVCache) Get(_ context.Context, key string) ([]byte, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, ports.ErrCacheMiss
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, ports.ErrCacheMiss
	}
	c.ll.MoveToFront(elem)

	return cloneBytes(ent.value), nil
}

// SetWithTTL — сохранить/обновить значение; ttl <= 0 — запись без истечения.
func (c *KVCache) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = cloneBytes(value)
		ent.expiresAt = expiryFrom(now, ttl)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		value:     cloneBytes(value),
		expiresAt: expiryFrom(now, ttl),
	})
	c.index[key] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Delete — удалить ключ; отсутствие ключа не ошибка.
func (c *KVCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return nil
}
