package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
	"github.com/resto-app/backend/pkg/metrics"
)

// OrderService — оформление заказов: авторитетный перерасчёт, сохранение,
// публикация события order.created.
type OrderService struct {
	menu      ports.MenuRepository // авторитетный каталог (мимо кэша)
	orders    ports.OrderRepository
	publisher ports.EventPublisher // может быть nil — события выключены
	log       ports.Logger

	taxRate     float64
	deliveryFee float64
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	menu ports.MenuRepository,
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	log ports.Logger,
	taxRate, deliveryFee float64,
) *OrderService {
	return &OrderService{
		menu:        menu,
		orders:      orders,
		publisher:   publisher,
		log:         log,
		taxRate:     taxRate,
		deliveryFee: deliveryFee,
	}
}

// PlaceOrder — оформить заказ. Итоги пересчитываются строго на сервере;
// присланный клиентом total — только справочная информация.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	priced, summary, err := PriceOrder(ctx, req.Lines, s.menu.GetByID, s.taxRate, s.deliveryFee, req.Tip)
	if err != nil {
		if errors.Is(err, ErrInvalidOrder) {
			metrics.OrdersRejected.WithLabelValues("validation").Inc()
			s.log.Warnf(ctx, "order rejected err=%v", err)
		} else {
			metrics.OrdersRejected.WithLabelValues("internal").Inc()
			s.log.Errorf(ctx, "order pricing failed err=%v", err)
		}
		return nil, err
	}

	order := &domain.Order{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Lines:        priced,
		Summary:      summary,
		Status:       "created",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		metrics.OrdersRejected.WithLabelValues("internal").Inc()
		s.log.Errorf(ctx, "order save failed id=%s err=%v", order.ID, err)
		return nil, fmt.Errorf("save order: %w", err)
	}
	metrics.OrdersPlaced.Inc()
	s.log.Infof(ctx, "order placed id=%s lines=%d total=%.2f", order.ID, len(order.Lines), order.Summary.Total)

	s.publishCreated(ctx, order)
	return order, nil
}

// publishCreated — событие для кухни/доставки; ошибка публикации не влияет
// на уже сохранённый заказ.
func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"order_id":   order.ID,
		"total":      order.Summary.Total,
		"created_at": order.CreatedAt,
	})
	if err != nil {
		s.log.Warnf(ctx, "order event marshal failed id=%s err=%v", order.ID, err)
		return
	}
	if err := s.publisher.Publish(ctx, order.ID, payload); err != nil {
		s.log.Warnf(ctx, "order event publish failed id=%s err=%v", order.ID, err)
	}
}
