package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
)

// Проверка, что MenuRepository удовлетворяет интерфейсу MenuRepository.
var _ ports.MenuRepository = (*MenuRepository)(nil)

// MenuRepository — реализация репозитория меню на Postgres (pgxpool).
// Наборы кастомизаций хранятся одним JSONB-полем: порядок размеров и
// топпингов важен и сохраняется как в документе.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository - конструктор MenuRepository.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository { return &MenuRepository{pool: pool} }

const menuColumns = `
	id, name, description, base_price, cuisine, availability,
	rating, is_customizable, customization_options, created_at`

// buildFilter — собирает WHERE-условия и аргументы по заданным фильтрам.
func buildFilter(q domain.MenuQuery) (string, []any) {
	var conds []string
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(q.Cuisines) > 0 {
		conds = append(conds, fmt.Sprintf("cuisine = ANY(%s::text[])", next(q.Cuisines)))
	}
	if len(q.Availability) > 0 {
		conds = append(conds, fmt.Sprintf("availability = ANY(%s::text[])", next(q.Availability)))
	}
	if q.PriceMin != nil {
		conds = append(conds, fmt.Sprintf("base_price >= %s", next(*q.PriceMin)))
	}
	if q.PriceMax != nil {
		conds = append(conds, fmt.Sprintf("base_price <= %s", next(*q.PriceMax)))
	}
	if q.Search != "" {
		p := next("%" + q.Search + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s)", p, p))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy — сортировка из белого списка; вторичный ключ id для стабильности.
func orderBy(sort domain.MenuSort) string {
	switch sort {
	case domain.SortPriceAsc:
		return " ORDER BY base_price ASC, id ASC"
	case domain.SortPriceDesc:
		return " ORDER BY base_price DESC, id ASC"
	case domain.SortRating:
		return " ORDER BY rating DESC, id ASC"
	default:
		return " ORDER BY created_at DESC, id DESC"
	}
}

// List — страница каталога + общее число записей под теми же фильтрами.
func (r *MenuRepository) List(ctx context.Context, q domain.MenuQuery) ([]domain.MenuItem, int, error) {
	where, args := buildFilter(q)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count menu items: %w", err)
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	listArgs := append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM menu_items%s%s LIMIT $%d OFFSET $%d",
		menuColumns, where, orderBy(q.Sort), len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0, limit)
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("menu rows: %w", err)
	}
	return items, total, nil
}

// GetByID — позиция по id. Если не нашли, возвращает (nil, nil).
func (r *MenuRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+menuColumns+" FROM menu_items WHERE id = $1", id)

	var item domain.MenuItem
	err := scanMenuItem(row, &item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert — вставка новой позиции.
func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) error {
	if item == nil || item.ID == "" {
		return errors.New("menu item is empty or id is required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_items (
			id, name, description, base_price, cuisine, availability,
			rating, is_customizable, customization_options, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		item.ID, item.Name, item.Description, item.BasePrice, item.Cuisine, item.Availability,
		item.Rating, item.IsCustomizable, item.Customizations, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// Update — полная замена позиции; (false, nil), если записи нет.
func (r *MenuRepository) Update(ctx context.Context, item *domain.MenuItem) (bool, error) {
	if item == nil || item.ID == "" {
		return false, errors.New("menu item is empty or id is required")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET
			name = $2,
			description = $3,
			base_price = $4,
			cuisine = $5,
			availability = $6,
			rating = $7,
			is_customizable = $8,
			customization_options = $9
		WHERE id = $1
	`,
		item.ID, item.Name, item.Description, item.BasePrice, item.Cuisine, item.Availability,
		item.Rating, item.IsCustomizable, item.Customizations,
	)
	if err != nil {
		return false, fmt.Errorf("update menu item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete — удаление позиции; (false, nil), если записи нет.
func (r *MenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete menu item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanMenuItem — общий сканер строки каталога (JSONB → CustomizationOptions).
func scanMenuItem(row pgx.Row, item *domain.MenuItem) error {
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.BasePrice, &item.Cuisine, &item.Availability,
		&item.Rating, &item.IsCustomizable, &item.Customizations, &item.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan menu item: %w", err)
	}
	return nil
}
