//go:build integration

package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cacheredis "github.com/resto-app/backend/internal/cache/redis"
	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/internal/testutil"
)

// Базовый цикл Get/SetWithTTL/Delete против реального Redis
func TestRedisKV_BasicCycle_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	rd, stopRD, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopRD(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := cacheredis.NewClient(ctx, rd.Addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	kv := cacheredis.NewKVCache(client)

	// Промах до записи
	_, err = kv.Get(ctx, "menu:item:item-1")
	require.ErrorIs(t, err, ports.ErrCacheMiss)

	// Запись и чтение
	require.NoError(t, kv.SetWithTTL(ctx, "menu:item:item-1", []byte(`{"id":"item-1"}`), time.Minute))
	got, err := kv.Get(ctx, "menu:item:item-1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"item-1"}`), got)

	// Удаление: ключ пропадает, повторный Delete — не ошибка
	require.NoError(t, kv.Delete(ctx, "menu:item:item-1"))
	_, err = kv.Get(ctx, "menu:item:item-1")
	require.ErrorIs(t, err, ports.ErrCacheMiss)
	require.NoError(t, kv.Delete(ctx, "menu:item:item-1"))
}

// TTL: запись истекает сама, без инвалидации
func TestRedisKV_TTLExpiry_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	rd, stopRD, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopRD(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := cacheredis.NewClient(ctx, rd.Addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	kv := cacheredis.NewKVCache(client)

	require.NoError(t, kv.SetWithTTL(ctx, "menuItems", []byte(`[]`), time.Second))

	got, err := kv.Get(ctx, "menuItems")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	require.Eventually(t, func() bool {
		_, err := kv.Get(ctx, "menuItems")
		return errors.Is(err, ports.ErrCacheMiss)
	}, 5*time.Second, 200*time.Millisecond)
}
