// Пакет cart — машина состояний корзины и быстрый расчёт цен строк.
//
// Быстрый расчёт (ComputeLinePrice) терпим к неизвестным id размеров и
// топпингов: нераспознанный id просто не даёт вклада в цену. Авторитетный
// перерасчёт при оформлении заказа живёт в usecase и, напротив, отклоняет
// заказ при любом неизвестном id.
package cart

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/resto-app/backend/internal/domain"
)

// Engine — корзина одной сессии. Все мутации синхронные; инвариант
// TotalPrice == PricePerItem * Quantity восстанавливается после каждой из них.
type Engine struct {
	state     domain.CartState
	retention time.Duration

	now   func() time.Time
	newID func() string
}

// NewEngine — пустая корзина с окном хранения retention.
func NewEngine(retention time.Duration) *Engine {
	return &Engine{
		retention: retention,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Restore — восстановить состояние из снапшота. Истёкший снапшот
// отбрасывается: корзина остаётся пустой, это не ошибка.
func (e *Engine) Restore(state domain.CartState) {
	if state.Expired(e.now()) {
		e.state = domain.CartState{}
		return
	}
	e.state = state
}

// ComputeLinePrice — цена строки: базовая цена + поправка размера +
// сумма цен топпингов; нераспознанные id пропускаются без ошибки.
func ComputeLinePrice(item domain.MenuItem, sizeID string, toppingIDs []string, quantity int) (pricePerItem, totalPrice float64) {
	pricePerItem = item.BasePrice
	if size, ok := item.Customizations.Size(sizeID); ok {
		pricePerItem += size.PriceAdjustment
	}
	for _, id := range toppingIDs {
		if topping, ok := item.Customizations.Topping(id); ok {
			pricePerItem += topping.Price
		}
	}
	pricePerItem = Round2(pricePerItem)
	totalPrice = Round2(pricePerItem * float64(quantity))
	return
}

// AddLine — добавить строку с новым cart_id; quantity < 1 трактуется как 1.
func (e *Engine) AddLine(item domain.MenuItem, sizeID string, toppingIDs []string, quantity int, instructions string) domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	perItem, total := ComputeLinePrice(item, sizeID, toppingIDs, quantity)

	line := domain.CartLine{
		CartID:       e.newID(),
		ItemID:       item.ID,
		Name:         item.Name,
		SizeID:       sizeID,
		ToppingIDs:   append([]string(nil), toppingIDs...),
		Quantity:     quantity,
		Instructions: instructions,
		PricePerItem: perItem,
		TotalPrice:   total,
	}
	e.state.Lines = append(e.state.Lines, line)
	return line
}

// RemoveLine — удалить строку; false, если строки нет (no-op).
func (e *Engine) RemoveLine(cartID string) bool {
	for i, line := range e.state.Lines {
		if line.CartID == cartID {
			e.state.Lines = append(e.state.Lines[:i], e.state.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity — изменить количество; newQuantity < 1 — no-op.
// PricePerItem не пересчитывается: смена количества не трогает кастомизацию.
func (e *Engine) UpdateQuantity(cartID string, newQuantity int) bool {
	if newQuantity < 1 {
		return false
	}
	for i := range e.state.Lines {
		if e.state.Lines[i].CartID == cartID {
			e.state.Lines[i].Quantity = newQuantity
			e.state.Lines[i].TotalPrice = Round2(e.state.Lines[i].PricePerItem * float64(newQuantity))
			return true
		}
	}
	return false
}

// Clear — опустошить корзину.
func (e *Engine) Clear() {
	e.state.Lines = nil
}

// Lines — копия строк корзины (в порядке добавления).
func (e *Engine) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), e.state.Lines...)
}

// Snapshot — сериализуемое состояние с обновлёнными метками времени.
func (e *Engine) Snapshot() domain.CartState {
	now := e.now()
	return domain.CartState{
		Lines:       append([]domain.CartLine(nil), e.state.Lines...),
		Expires:     now.Add(e.retention),
		LastUpdated: now,
	}
}

// Summarize — агрегаты корзины. Суммы накапливаются в полной точности,
// округляются только итоговые поля — чтобы не копить ошибку округления.
func (e *Engine) Summarize(taxRate, deliveryFee, tip float64) domain.CartSummary {
	var itemCount int
	var subtotal float64
	for _, line := range e.state.Lines {
		itemCount += line.Quantity
		subtotal += line.TotalPrice
	}

	tax := subtotal * taxRate
	fee := 0.0
	if subtotal > 0 {
		fee = deliveryFee
	}

	return domain.CartSummary{
		ItemCount:   itemCount,
		Subtotal:    Round2(subtotal),
		Tax:         Round2(tax),
		DeliveryFee: Round2(fee),
		Tip:         Round2(tip),
		Total:       Round2(subtotal + tax + fee + tip),
	}
}

// Round2 — округление денежного значения до 2 знаков.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
