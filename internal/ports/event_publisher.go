package ports

import "context"

// EventPublisher — публикация доменных событий (order.created и т.п.).
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}
