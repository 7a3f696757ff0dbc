package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"stroydoc/internal/access"
	"stroydoc/internal/schema"
)

// Records — один репозиторий на все девять таблиц разделов.
// Имена таблиц и колонок приходят только из статического реестра
// (internal/access), пользовательский ввод попадает исключительно
// в параметры запроса.
type Records struct {
	db *gorm.DB
}

func NewRecords(db *gorm.DB) *Records {
	return &Records{db: db}
}

// Search возвращает все строки таблицы, а при непустом q — строки,
// где одна из двух поисковых колонок содержит подстроку (ILIKE).
// Порядок строк не гарантируется.
func (r *Records) Search(ctx context.Context, cat *access.Category, q string) ([]map[string]any, error) {
	var rows []map[string]any
	tx := r.db.WithContext(ctx)

	if q == "" {
		if err := tx.Raw("SELECT * FROM " + cat.Table).Scan(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}

	pattern := "%" + q + "%"
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s ILIKE ? OR %s ILIKE ?",
		cat.Table, cat.Search[0], cat.Search[1],
	)
	if err := tx.Raw(query, pattern, pattern).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert выполняет одну параметризованную вставку и возвращает ID строки.
// Каждая мутация — отдельная однооператорная транзакция.
func (r *Records) Insert(ctx context.Context, cat *access.Category, rec schema.Record) (int64, error) {
	cols := cat.Columns()
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = rec[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		cat.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		cat.PK,
	)

	var id int64
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// Delete удаляет строку по первичному ключу. Отсутствие строки — не ошибка:
// удаление идемпотентно.
func (r *Records) Delete(ctx context.Context, cat *access.Category, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", cat.Table, cat.PK)
	return r.db.WithContext(ctx).Exec(query, id).Error
}

// EstimateExists — проверка ссылки estimate_id перед вставкой
// материалов и механизмов (schema.ReferenceChecker).
func (r *Records) EstimateExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(1) FROM psd.estimate_documentation WHERE estimate_id = ?", id).
		Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
