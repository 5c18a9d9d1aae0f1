package domain

import "time"

// OrderLine — строка заказа. Денежные поля заполняются сервером при
// авторитетном перерасчёте; присланные клиентом значения игнорируются.
type OrderLine struct {
	ItemID       string   `json:"item_id"`
	Name         string   `json:"name"`
	SizeID       string   `json:"size_id,omitempty"`
	ToppingIDs   []string `json:"topping_ids,omitempty"`
	Quantity     int      `json:"quantity"`
	Instructions string   `json:"special_instructions,omitempty"`
	PricePerItem float64  `json:"price_per_item"`
	TotalPrice   float64  `json:"total_price"`
}

// OrderSummary — итоги заказа: total = subtotal + tax + delivery_fee + tip.
type OrderSummary struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tip         float64 `json:"tip"`
	Total       float64 `json:"total"`
}

// Order — сохранённый заказ.
type Order struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customer_name"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	Lines        []OrderLine  `json:"lines"`
	Summary      OrderSummary `json:"summary"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OrderRequest — заявка на оформление заказа (вход POST /orders).
type OrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Lines        []OrderLine `json:"lines"`
	Tip          float64     `json:"tip"`
}
