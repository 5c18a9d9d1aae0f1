package domain

import "time"

// Availability — статус доступности позиции меню.
type Availability string

const (
	AvailabilityAvailable Availability = "Available Now"
	AvailabilityLimited   Availability = "Limited Quantity"
	AvailabilityPreOrder  Availability = "Pre-Order"
	AvailabilitySoldOut   Availability = "Sold Out"
)

// KnownAvailabilities — допустимые значения статуса доступности.
var KnownAvailabilities = []Availability{
	AvailabilityAvailable,
	AvailabilityLimited,
	AvailabilityPreOrder,
	AvailabilitySoldOut,
}

// SizeOption — вариант размера с поправкой к базовой цене (может быть отрицательной).
type SizeOption struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

// ToppingOption — топпинг с неотрицательной ценой.
type ToppingOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CustomizationOptions — наборы размеров и топпингов позиции (порядок сохраняется).
type CustomizationOptions struct {
	Sizes    []SizeOption    `json:"sizes"`
	Toppings []ToppingOption `json:"toppings"`
}

// Size — найти размер по id; (option, true) при совпадении.
func (c CustomizationOptions) Size(id string) (SizeOption, bool) {
	for _, s := range c.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

// Topping — найти топпинг по id; (option, true) при совпадении.
func (c CustomizationOptions) Topping(id string) (ToppingOption, bool) {
	for _, t := range c.Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return ToppingOption{}, false
}

// MenuItem — позиция меню (каноническая запись каталога).
type MenuItem struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	BasePrice      float64              `json:"base_price"`
	Cuisine        string               `json:"cuisine"`
	Availability   Availability         `json:"availability"`
	Rating         float64              `json:"rating"`
	IsCustomizable bool                 `json:"is_customizable"`
	Customizations CustomizationOptions `json:"customization_options"`
	CreatedAt      time.Time            `json:"created_at"`
}

// MenuSort — политика сортировки списка меню.
type MenuSort string

const (
	SortNewest    MenuSort = "newest" // по умолчанию
	SortPriceAsc  MenuSort = "price_asc"
	SortPriceDesc MenuSort = "price_desc"
	SortRating    MenuSort = "rating"
)

// MenuQuery — параметры выборки каталога (фильтры + сортировка + пагинация).
type MenuQuery struct {
	Cuisines     []string
	Availability []string
	PriceMin     *float64
	PriceMax     *float64
	Search       string
	Sort         MenuSort
	Page         int
	PageSize     int
}

// Pagination — метаданные страницы.
type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// MenuPage — страница каталога с общим количеством записей.
type MenuPage struct {
	Items      []MenuItem `json:"items"`
	Total      int        `json:"total"`
	Pagination Pagination `json:"pagination"`
}
