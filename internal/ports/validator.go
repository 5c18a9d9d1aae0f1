package ports

import (
	"context"

	"github.com/resto-app/backend/internal/domain"
)

// MenuValidator — валидация позиции меню перед записью в каталог.
type MenuValidator interface {
	Validate(ctx context.Context, item *domain.MenuItem) error
}
