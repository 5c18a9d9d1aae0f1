package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resto-app/backend/internal/cache/keys"
	"github.com/resto-app/backend/internal/cache/readthrough"
	"github.com/resto-app/backend/internal/domain"
	"github.com/resto-app/backend/internal/ports"
)

// ErrNotFound — запрошенной позиции нет в авторитетном хранилище.
// Промах кэша с последующим not found терминален: негативный результат не кэшируется.
var ErrNotFound = errors.New("menu item not found")

// listNamespace — пространство имён ключей кэша списочных выборок.
const listNamespace = "menuItems"

// CatalogService — прикладная логика каталога меню (без знаний о транспорте).
// Чтение идёт через read-through кэш; мутации пишут в хранилище и синхронно
// инвалидируют точечный ключ позиции.
//
// Списочные ключи при мутациях намеренно НЕ инвалидируются: списки могут
// отдавать устаревшие данные до истечения их TTL. Это унаследованное
// документированное поведение, а не дефект.
type CatalogService struct {
	repo      ports.MenuRepository // прямой доступ к хранилищу
	cache     *readthrough.Source  // читающий слой поверх KV-кэша
	log       ports.Logger         // прямой доступ к логгеру
	validator ports.MenuValidator  // прямой доступ к валидатору

	listTTL time.Duration
	itemTTL time.Duration
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	repo ports.MenuRepository,
	cache *readthrough.Source,
	log ports.Logger,
	validator ports.MenuValidator,
	listTTL, itemTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		listTTL:   listTTL,
		itemTTL:   itemTTL,
	}
}

// cacheParams — параметры выборки как отображение имя→значение.
// Пустые фильтры не попадают в ключ, поэтому «фильтр не задан» и
// «фильтр задан пустым» дают один и тот же ключ.
func cacheParams(q domain.MenuQuery) map[string]string {
	params := map[string]string{
		"page":      strconv.Itoa(q.Page),
		"page_size": strconv.Itoa(q.PageSize),
		"sort":      string(q.Sort),
	}
	if len(q.Cuisines) > 0 {
		params["cuisine"] = strings.Join(q.Cuisines, ",")
	}
	if len(q.Availability) > 0 {
		params["availability"] = strings.Join(q.Availability, ",")
	}
	if q.PriceMin != nil {
		params["price_min"] = strconv.FormatFloat(*q.PriceMin, 'f', -1, 64)
	}
	if q.PriceMax != nil {
		params["price_max"] = strconv.FormatFloat(*q.PriceMax, 'f', -1, 64)
	}
	if q.Search != "" {
		params["q"] = q.Search
	}
	return params
}

// ListItems — страница каталога по фильтрам/сортировке/пагинации,
// через кэш с TTL списка.
func (s *CatalogService) ListItems(ctx context.Context, q domain.MenuQuery) (domain.MenuPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}

	key := keys.Query(listNamespace, cacheParams(q))

	raw, fromCache, err := s.cache.GetOrFetch(ctx, key, s.listTTL, func(ctx context.Context) ([]byte, error) {
		items, total, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		page := buildPage(items, total, q.Page, q.PageSize)
		return json.Marshal(page)
	})
	if err != nil {
		s.log.Errorf(ctx, "menu list failed key=%s err=%v", key, err)
		return domain.MenuPage{}, err
	}
	s.log.Infof(ctx, "menu list key=%s cached=%t", key, fromCache)

	var page domain.MenuPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return domain.MenuPage{}, fmt.Errorf("decode cached menu page: %w", err)
	}
	return page, nil
}

// GetItem — точечное чтение через ключ menu:item:<id>.
func (s *CatalogService) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	key := keys.Item(id)

	raw, fromCache, err := s.cache.GetOrFetch(ctx, key, s.itemTTL, func(ctx context.Context) ([]byte, error) {
		item, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ErrNotFound
		}
		return json.Marshal(item)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Errorf(ctx, "menu get failed id=%s err=%v", id, err)
		}
		return nil, err
	}
	s.log.Infof(ctx, "menu get id=%s cached=%t", id, fromCache)

	var item domain.MenuItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode cached menu item: %w", err)
	}
	return &item, nil
}

// CreateItem — валидация и вставка новой позиции; id и created_at назначает сервер.
func (s *CatalogService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now().UTC()

	if err := s.validator.Validate(ctx, item); err != nil {
		s.log.Warnf(ctx, "menu item validation failed name=%q err=%v", item.Name, err)
		return err
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		s.log.Errorf(ctx, "menu insert failed name=%q err=%v", item.Name, err)
		return err
	}
	s.log.Infof(ctx, "menu item created id=%s", item.ID)
	return nil
}

// UpdateItem — полная замена позиции. Точечный ключ инвалидируется строго
// ПОСЛЕ фиксации записи — иначе конкурентный читатель мог бы успеть
// переложить в кэш данные до изменения.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, item domain.MenuItem) error {
	item.ID = id

	if err := s.validator.Validate(ctx, &item); err != nil {
		s.log.Warnf(ctx, "menu item validation failed id=%s err=%v", id, err)
		return err
	}

	ok, err := s.repo.Update(ctx, &item)
	if err != nil {
		s.log.Errorf(ctx, "menu update failed id=%s err=%v", id, err)
		return err
	}
	if !ok {
		return ErrNotFound
	}

	s.cache.Invalidate(ctx, keys.Item(id))
	s.log.Infof(ctx, "menu item updated id=%s", id)
	return nil
}

// DeleteItem — удаление позиции с инвалидацией точечного ключа после записи.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "menu delete failed id=%s err=%v", id, err)
		return err
	}
	if !ok {
		return ErrNotFound
	}

	s.cache.Invalidate(ctx, keys.Item(id))
	s.log.Infof(ctx, "menu item deleted id=%s", id)
	return nil
}

// buildPage — метаданные пагинации: total_pages = ceil(total/pageSize).
func buildPage(items []domain.MenuItem, total, page, pageSize int) domain.MenuPage {
	totalPages := (total + pageSize - 1) / pageSize
	if items == nil {
		items = []domain.MenuItem{}
	}
	return domain.MenuPage{
		Items: items,
		Total: total,
		Pagination: domain.Pagination{
			Page:       page,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}
}
