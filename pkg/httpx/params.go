package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/resto-app/backend/internal/domain"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePageSize - читает page/page_size из query с дефолтами и границами.
func ParsePageSize(c *gin.Context, defaultSize, maxSize int) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	pageSize = defaultSize
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize))); err == nil {
		pageSize = ClampInt(v, 1, maxSize)
	}
	return
}

// csvValues — многозначный параметр: повторяющиеся ключи и/или значения через запятую.
func csvValues(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// ParseMenuQuery — собирает параметры выборки каталога из query-строки.
// Некорректные числовые значения игнорируются (фильтр не применяется).
func ParseMenuQuery(c *gin.Context, defaultPageSize, maxPageSize int) domain.MenuQuery {
	q := domain.MenuQuery{
		Cuisines:     csvValues(c, "cuisine"),
		Availability: csvValues(c, "availability"),
		Search:       strings.TrimSpace(c.Query("q")),
	}

	if raw := c.Query("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			q.PriceMin = &v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			q.PriceMax = &v
		}
	}

	switch domain.MenuSort(c.Query("sort")) {
	case domain.SortPriceAsc:
		q.Sort = domain.SortPriceAsc
	case domain.SortPriceDesc:
		q.Sort = domain.SortPriceDesc
	case domain.SortRating:
		q.Sort = domain.SortRating
	default:
		q.Sort = domain.SortNewest
	}

	q.Page, q.PageSize = ParsePageSize(c, defaultPageSize, maxPageSize)
	return q
}
