package ports

import (
	"context"

	"github.com/resto-app/backend/internal/domain"
)

// MenuRepository — авторитетное хранилище позиций меню.
type MenuRepository interface {
	// List — выборка по фильтрам с сортировкой и пагинацией; возвращает страницу и общее число записей.
	List(ctx context.Context, q domain.MenuQuery) ([]domain.MenuItem, int, error)

	// GetByID — позиция по id; (nil, nil), если записи нет.
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)

	// Insert — вставка новой позиции (id и created_at уже заполнены).
	Insert(ctx context.Context, item *domain.MenuItem) error

	// Update — полная замена позиции; (false, nil), если записи нет.
	Update(ctx context.Context, item *domain.MenuItem) (bool, error)

	// Delete — удаление; (false, nil), если записи нет.
	Delete(ctx context.Context, id string) (bool, error)
}
