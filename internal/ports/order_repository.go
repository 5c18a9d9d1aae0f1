package ports

import (
	"context"

	"github.com/resto-app/backend/internal/domain"
)

// OrderRepository — хранилище оформленных заказов.
type OrderRepository interface {
	// Save — транзакционно сохраняет заказ вместе со строками и итогами.
	Save(ctx context.Context, order *domain.Order) error
}
