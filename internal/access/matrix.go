package access

import (
	"stroydoc/internal/models"
	"stroydoc/internal/schema"
)

type Op int

const (
	OpView Op = iota
	OpEdit
)

// Category — один из девяти разделов документации. Всё, чем разделы
// отличаются друг от друга (таблица, поля, роли), лежит здесь;
// обработчики и репозиторий общие.
type Category struct {
	Slug     string // сегмент пути списка: /estimates
	Singular string // сегмент пути мутаций: /estimate/add, /estimate/delete/:id
	Title    string
	Table    string
	PK       string
	Search   [2]string // две колонки подстрочного поиска (ILIKE)
	Fields   []schema.Field

	viewRoles map[models.UserRole]struct{}
	editRoles map[models.UserRole]struct{}
}

// Allowed — O(1) проверка «можно ли роли выполнять операцию в разделе».
// Никаких побочных эффектов: отказ обрабатывает вызывающая сторона.
func (c *Category) Allowed(role models.UserRole, op Op) bool {
	switch op {
	case OpEdit:
		_, ok := c.editRoles[role]
		return ok
	default:
		_, ok := c.viewRoles[role]
		return ok
	}
}

// Columns — колонки вставки/выгрузки в порядке схемы.
func (c *Category) Columns() []string {
	cols := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

func roleSet(roles ...models.UserRole) map[models.UserRole]struct{} {
	set := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// BySlug ищет раздел по сегменту пути списка.
func BySlug(slug string) (*Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return nil, false
}

// ViewableBy — разделы, доступные роли на просмотр (для дашборда).
func ViewableBy(role models.UserRole) []*Category {
	var out []*Category
	for _, c := range Categories {
		if c.Allowed(role, OpView) {
			out = append(out, c)
		}
	}
	return out
}
