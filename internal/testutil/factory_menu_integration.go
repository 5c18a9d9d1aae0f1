//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/resto-app/backend/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной позиции меню
func MakeMenuItem(opts ...func(*domain.MenuItem)) domain.MenuItem {
	id := "item-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	m := domain.MenuItem{
		ID:             id,
		Name:           "Margherita " + UniqSuffix(),
		Description:    "Tomato, mozzarella, basil",
		BasePrice:      14.99,
		Cuisine:        "italian",
		Availability:   domain.AvailabilityAvailable,
		Rating:         4.5,
		IsCustomizable: true,
		Customizations: domain.CustomizationOptions{
			Sizes: []domain.SizeOption{
				{ID: "small", Name: "Small", PriceAdjustment: -3.00},
				{ID: "medium", Name: "Medium", PriceAdjustment: 0},
				{ID: "large", Name: "Large", PriceAdjustment: 4.00},
			},
			Toppings: []domain.ToppingOption{
				{ID: "extra-cheese", Name: "Extra Cheese", Price: 2.00},
				{ID: "mushrooms", Name: "Mushrooms", Price: 1.50},
			},
		},
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&m)
	}
	return m
}

// Доп. опции — переопределение полей в тестах

func WithID(id string) func(*domain.MenuItem) {
	return func(m *domain.MenuItem) { m.ID = id }
}

func WithCuisine(cuisine string) func(*domain.MenuItem) {
	return func(m *domain.MenuItem) { m.Cuisine = cuisine }
}

func WithBasePrice(price float64) func(*domain.MenuItem) {
	return func(m *domain.MenuItem) { m.BasePrice = price }
}

func WithAvailability(a domain.Availability) func(*domain.MenuItem) {
	return func(m *domain.MenuItem) { m.Availability = a }
}

func WithRating(r float64) func(*domain.MenuItem) {
	return func(m *domain.MenuItem) { m.Rating = r }
}

func WithoutCustomizations() func(*domain.MenuItem) {
	return func(m *domain.MenuItem) {
		m.IsCustomizable = false
		m.Customizations = domain.CustomizationOptions{}
	}
}
