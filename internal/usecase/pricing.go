package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/resto-app/backend/internal/cart"
	"github.com/resto-app/backend/internal/domain"
)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации заказа.
var ErrInvalidOrder = errors.New("order validation failed")

// MenuItemLookup — чтение позиции из авторитетного хранилища;
// (nil, nil), если позиции нет.
type MenuItemLookup func(ctx context.Context, id string) (*domain.MenuItem, error)

// PriceOrder — авторитетный перерасчёт заказа по текущему каталогу.
// Присланные клиентом цены игнорируются полностью. В отличие от быстрого
// расчёта корзины здесь любой неизвестный id (позиция, размер, топпинг) —
// жёсткая ошибка валидации: это устаревшая или подделанная корзина.
// Функция не мутирует каталог и на одинаковом входе даёт одинаковый итог.
func PriceOrder(
	ctx context.Context,
	lines []domain.OrderLine,
	lookup MenuItemLookup,
	taxRate, deliveryFee, tip float64,
) ([]domain.OrderLine, domain.OrderSummary, error) {
	if len(lines) == 0 {
		return nil, domain.OrderSummary{}, fmt.Errorf("%w: order has no lines", ErrInvalidOrder)
	}
	if tip < 0 {
		tip = 0
	}

	priced := make([]domain.OrderLine, 0, len(lines))
	var subtotal float64

	for i, line := range lines {
		if line.Quantity < 1 {
			return nil, domain.OrderSummary{}, fmt.Errorf("%w: lines[%d].quantity must be positive", ErrInvalidOrder, i)
		}

		item, err := lookup(ctx, line.ItemID)
		if err != nil {
			return nil, domain.OrderSummary{}, fmt.Errorf("lookup menu item %s: %w", line.ItemID, err)
		}
		if item == nil {
			return nil, domain.OrderSummary{}, fmt.Errorf("%w: menu item %s not found", ErrInvalidOrder, line.ItemID)
		}

		perItem := item.BasePrice
		if line.SizeID != "" {
			size, ok := item.Customizations.Size(line.SizeID)
			if !ok {
				return nil, domain.OrderSummary{}, fmt.Errorf("%w: unknown size %q for item %s", ErrInvalidOrder, line.SizeID, item.ID)
			}
			perItem += size.PriceAdjustment
		}
		for _, toppingID := range line.ToppingIDs {
			topping, ok := item.Customizations.Topping(toppingID)
			if !ok {
				return nil, domain.OrderSummary{}, fmt.Errorf("%w: unknown topping %q for item %s", ErrInvalidOrder, toppingID, item.ID)
			}
			perItem += topping.Price
		}

		perItem = cart.Round2(perItem)
		total := cart.Round2(perItem * float64(line.Quantity))
		subtotal += total

		line.Name = item.Name
		line.PricePerItem = perItem
		line.TotalPrice = total
		priced = append(priced, line)
	}

	tax := subtotal * taxRate
	fee := 0.0
	if subtotal > 0 {
		fee = deliveryFee
	}

	summary := domain.OrderSummary{
		Subtotal:    cart.Round2(subtotal),
		Tax:         cart.Round2(tax),
		DeliveryFee: cart.Round2(fee),
		Tip:         cart.Round2(tip),
		Total:       cart.Round2(subtotal + tax + fee + tip),
	}
	return priced, summary, nil
}
