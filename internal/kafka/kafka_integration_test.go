//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	ikafka "github.com/resto-app/backend/internal/kafka"
	"github.com/resto-app/backend/internal/testutil"
	"github.com/resto-app/backend/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) Publish пишет событие в топик: читаем его обратно и проверяем ключ/payload
func TestKafka_PublishAndReadBack_TC(t *testing.T) {
	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст на сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		WriteTimeout: 10 * time.Second,
	}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	payload, _ := json.Marshal(map[string]any{
		"order_id": "ord-42",
		"total":    65.91,
	})
	require.NoError(t, producer.Publish(ctx, "ord-42", payload))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "ord-42", string(msg.Key))

	var evt struct {
		OrderID string  `json:"order_id"`
		Total   float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	require.Equal(t, "ord-42", evt.OrderID)
	require.Equal(t, 65.91, evt.Total)
}

// 2) События с одним ключом доставляются по порядку (Hash-балансер → одна партиция)
func TestKafka_SameKey_Ordered_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-ordered-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers: kf.Brokers,
		Topic:   topic,
	}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, producer.Publish(ctx, "ord-7", []byte(fmt.Sprintf("event-%d", i))))
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	for i := 0; i < n; i++ {
		msg, err := r.ReadMessage(ctx)
		require.NoError(t, err)
		require.Equal(t, "ord-7", string(msg.Key))
		require.Equal(t, fmt.Sprintf("event-%d", i), string(msg.Value))
	}
}

// 3) Close закрывает writer; повторный Publish после Close возвращает ошибку
func TestKafka_PublishAfterClose_Fails_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic, _ := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-closed-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers: kf.Brokers,
		Topic:   topic,
	}, logg)

	require.NoError(t, producer.Publish(ctx, "ord-1", []byte("ok")))
	require.NoError(t, producer.Close())
	require.Error(t, producer.Publish(ctx, "ord-1", []byte("after close")))
}
