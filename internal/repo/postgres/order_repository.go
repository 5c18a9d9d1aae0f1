package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционно сохраняет заказ: шапка + итоги одной записью,
// строки — через COPY.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	if len(order.Lines) == 0 {
		return errors.New("order lines are required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (
			id, customer_name, phone, address,
			subtotal, tax, delivery_fee, tip, total, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		order.ID, order.CustomerName, order.Phone, order.Address,
		order.Summary.Subtotal, order.Summary.Tax, order.Summary.DeliveryFee,
		order.Summary.Tip, order.Summary.Total, order.Status, order.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err = copyLines(ctx, transaction, order.ID, order.Lines); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// copyLines — вставка строк заказа через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyLines(ctx context.Context, tx pgx.Tx, orderID string, lines []domain.OrderLine) error {
	rows := make([][]any, 0, len(lines))
	for i, line := range lines {
		rows = append(rows, []any{orderID, i, line.ItemID, line.Name, line.SizeID, line.ToppingIDs,
			line.Quantity, line.Instructions, line.PricePerItem, line.TotalPrice})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_lines"},
		[]string{
			"order_id", "line_no", "item_id", "name", "size_id", "topping_ids",
			"quantity", "instructions", "price_per_item", "total_price",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy order lines: %w", err)
	}
	return nil
}
