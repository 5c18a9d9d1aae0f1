// Пакет keys — детерминированная генерация ключей кэша.
// Ключ не должен зависеть от порядка, в котором пришли параметры запроса,
// поэтому имена параметров сортируются перед сериализацией.
package keys

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// itemPrefix — фиксированное пространство имён точечных ключей позиций меню.
const itemPrefix = "menu:item:"

// Query — ключ для выборки списка: prefix + отсортированные пары k=v.
// Одинаковый набор параметров даёт одинаковый ключ независимо от порядка.
// Имена и значения экранируются: `q` и фильтры — произвольный пользовательский
// текст, и без экранирования значение с ':' или '=' склеивало бы разные
// логические запросы в один ключ.
func Query(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names)+1)
	parts = append(parts, prefix)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s",
			url.QueryEscape(name), url.QueryEscape(params[name])))
	}
	return strings.Join(parts, ":")
}

// Item — точечный ключ позиции меню; не зависит от параметров запроса.
func Item(id string) string {
	return itemPrefix + id
}
