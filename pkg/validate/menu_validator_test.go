package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/pkg/validate"
)

func validItem() *domain.MenuItem {
	return &domain.MenuItem{
		ID:           "item-1",
		Name:         "Margherita",
		BasePrice:    14.99,
		Cuisine:      "italian",
		Availability: domain.AvailabilityAvailable,
		Rating:       4.5,
		Customizations: domain.CustomizationOptions{
			Sizes: []domain.SizeOption{
				{ID: "small", Name: "Small", PriceAdjustment: -3.00},
				{ID: "large", Name: "Large", PriceAdjustment: 4.00},
			},
			Toppings: []domain.ToppingOption{
				{ID: "extra-cheese", Name: "Extra Cheese", Price: 2.00},
			},
		},
	}
}

func TestMenuValidator_Validate(t *testing.T) {
	v := validate.NewMenuValidator()
	ctx := context.Background()

	t.Run("valid item", func(t *testing.T) {
		if err := v.Validate(ctx, validItem()); err != nil {
			t.Fatalf("expected valid item, got: %v", err)
		}
	})

	type testCase struct {
		name     string
		makeItem func() *domain.MenuItem
		msg      string
	}

	cases := []testCase{
		{
			name:     "nil item",
			makeItem: func() *domain.MenuItem { return nil },
			msg:      "позиция не может быть nil",
		},
		{
			name: "empty name",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Name = ""
				return i
			},
			msg: "name обязателен",
		},
		{
			name: "negative base_price",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.BasePrice = -0.01
				return i
			},
			msg: "base_price должен быть неотрицательным",
		},
		{
			name: "rating above 5",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Rating = 5.1
				return i
			},
			msg: "rating должен быть в диапазоне",
		},
		{
			name: "negative rating",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Rating = -1
				return i
			},
			msg: "rating должен быть в диапазоне",
		},
		{
			name: "unknown availability",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Availability = "Maybe Later"
				return i
			},
			msg: "availability",
		},
		{
			name: "size without id",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Customizations.Sizes[0].ID = ""
				return i
			},
			msg: "sizes[0].id обязателен",
		},
		{
			name: "duplicate size id",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Customizations.Sizes[1].ID = i.Customizations.Sizes[0].ID
				return i
			},
			msg: "повторяется",
		},
		{
			name: "topping without id",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Customizations.Toppings[0].ID = ""
				return i
			},
			msg: "toppings[0].id обязателен",
		},
		{
			name: "negative topping price",
			makeItem: func() *domain.MenuItem {
				i := validItem()
				i.Customizations.Toppings[0].Price = -1
				return i
			},
			msg: "toppings[0].price должен быть неотрицательным",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeItem())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidMenuItem) {
				t.Fatalf("error must wrap ErrInvalidMenuItem, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q must contain %q", err.Error(), tc.msg)
			}
		})
	}
}

// Пустой availability допустим: поле может быть не задано при создании.
func TestMenuValidator_EmptyAvailabilityAllowed(t *testing.T) {
	v := validate.NewMenuValidator()

	i := validItem()
	i.Availability = ""
	if err := v.Validate(context.Background(), i); err != nil {
		t.Fatalf("empty availability must be allowed, got: %v", err)
	}
}

// Отрицательная поправка размера (меньшая порция дешевле) — валидна.
func TestMenuValidator_NegativeSizeAdjustmentAllowed(t *testing.T) {
	v := validate.NewMenuValidator()

	i := validItem()
	i.Customizations.Sizes[0].PriceAdjustment = -5
	if err := v.Validate(context.Background(), i); err != nil {
		t.Fatalf("negative size adjustment must be allowed, got: %v", err)
	}
}
