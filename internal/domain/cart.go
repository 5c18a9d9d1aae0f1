package domain

import "time"

// CartLine — строка корзины. CartID — локальный идентификатор строки,
// не совпадающий с id позиции каталога.
type CartLine struct {
	CartID       string   `json:"cart_id"`
	ItemID       string   `json:"item_id"`
	Name         string   `json:"name"`
	SizeID       string   `json:"size_id,omitempty"`
	ToppingIDs   []string `json:"topping_ids,omitempty"`
	Quantity     int      `json:"quantity"`
	Instructions string   `json:"special_instructions,omitempty"`
	PricePerItem float64  `json:"price_per_item"`
	TotalPrice   float64  `json:"total_price"`
}

// CartState — сериализуемое состояние корзины.
// Инвариант: TotalPrice каждой строки всегда равен PricePerItem * Quantity.
type CartState struct {
	Lines       []CartLine `json:"cart"`
	Expires     time.Time  `json:"expires"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// Expired — истёк ли срок хранения состояния на момент now.
func (s CartState) Expired(now time.Time) bool {
	return !s.Expires.IsZero() && now.After(s.Expires)
}

// CartSummary — агрегаты корзины; денежные поля округлены до 2 знаков.
type CartSummary struct {
	ItemCount   int     `json:"item_count"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tip         float64 `json:"tip"`
	Total       float64 `json:"total"`
}
