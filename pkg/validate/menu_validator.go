package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
)

// Проверка, что MenuValidator удовлетворяет интерфейсу MenuValidator.
var _ ports.MenuValidator = (*MenuValidator)(nil)

// ErrInvalidMenuItem — базовая (sentinel error) ошибка валидации позиции меню.
var ErrInvalidMenuItem = errors.New("menu item validation failed")

// MenuValidator — структура для валидации позиции меню.
// Возвращает ErrInvalidMenuItem (с обёрнутой причиной) при любой проблеме.
type MenuValidator struct{}

// NewMenuValidator — конструктор MenuValidator.
func NewMenuValidator() *MenuValidator { return &MenuValidator{} }

// Validate — проверяет корректность полей позиции меню.
func (v *MenuValidator) Validate(_ context.Context, item *domain.MenuItem) error {
	if err := v.validateCore(item); err != nil {
		return err
	}
	return v.validateCustomizations(&item.Customizations)
}

// validateCore — валидация основных полей позиции.
func (v *MenuValidator) validateCore(item *domain.MenuItem) error {
	if item == nil {
		return fmt.Errorf("%w: позиция не может быть nil", ErrInvalidMenuItem)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidMenuItem)
	}
	if item.BasePrice < 0 {
		return fmt.Errorf("%w: base_price должен быть неотрицательным", ErrInvalidMenuItem)
	}
	if item.Rating < 0 || item.Rating > 5 {
		return fmt.Errorf("%w: rating должен быть в диапазоне [0, 5]", ErrInvalidMenuItem)
	}
	if item.Availability != "" && !knownAvailability(item.Availability) {
		return fmt.Errorf("%w: availability %q неизвестен", ErrInvalidMenuItem, item.Availability)
	}
	return nil
}

// validateCustomizations — id размеров и топпингов обязательны и уникальны,
// цены топпингов неотрицательны.
func (v *MenuValidator) validateCustomizations(c *domain.CustomizationOptions) error {
	seenSizes := make(map[string]struct{}, len(c.Sizes))
	for i, size := range c.Sizes {
		if size.ID == "" {
			return fmt.Errorf("%w: sizes[%d].id обязателен", ErrInvalidMenuItem, i)
		}
		if _, dup := seenSizes[size.ID]; dup {
			return fmt.Errorf("%w: sizes[%d].id %q повторяется", ErrInvalidMenuItem, i, size.ID)
		}
		seenSizes[size.ID] = struct{}{}
	}

	seenToppings := make(map[string]struct{}, len(c.Toppings))
	for i, topping := range c.Toppings {
		if topping.ID == "" {
			return fmt.Errorf("%w: toppings[%d].id обязателен", ErrInvalidMenuItem, i)
		}
		if _, dup := seenToppings[topping.ID]; dup {
			return fmt.Errorf("%w: toppings[%d].id %q повторяется", ErrInvalidMenuItem, i, topping.ID)
		}
		if topping.Price < 0 {
			return fmt.Errorf("%w: toppings[%d].price должен быть неотрицательным", ErrInvalidMenuItem, i)
		}
		seenToppings[topping.ID] = struct{}{}
	}
	return nil
}

func knownAvailability(a domain.Availability) bool {
	for _, known := range domain.KnownAvailabilities {
		if a == known {
			return true
		}
	}
	return false
}
