package kafka

import (
	"context"
	"sync"

	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над приёмником (kafka.Writer),
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — обёртка над kafka.Writer для публикации доменных событий.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
	closeErr  error
}

// NewProducer — конструктор. Ключ сообщения задаёт партицию (Hash-балансер),
// поэтому события одного заказа упорядочены.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{
		writer: cfg.kafkaWriter(),
		topic:  cfg.Topic,
		log:    log,
	}
}

// Publish — опубликовать событие; ошибка возвращается вызывающему,
// решение о деградации остаётся за ним.
func (p *Producer) Publish(ctx context.Context, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		p.log.Warnf(ctx, "kafka publish failed topic=%s key=%s err=%v", p.topic, key, err)
		return err
	}
	metrics.EventsPublished.WithLabelValues(p.topic).Inc()
	return nil
}

// Close — закрыть writer; повторные вызовы безопасны.
func (p *Producer) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.writer.Close()
	})
	return p.closeErr
}
