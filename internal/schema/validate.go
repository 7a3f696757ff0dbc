package schema

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ReferenceChecker отвечает, существует ли смета с данным ID.
// В проде это репозиторий, в тестах — заглушка.
type ReferenceChecker interface {
	EstimateExists(ctx context.Context, id int64) (bool, error)
}

// Record — проверенная запись: колонка → типизированное значение,
// готовое к вставке. Необязательные незаполненные поля кладутся как nil (NULL).
type Record map[string]any

// Validate прогоняет поля формы через проверки в фиксированном порядке:
// обязательность → длина → разбор чисел → неотрицательность → ссылка на смету.
// Первая нарушенная проверка определяет результат, дальше не идём.
func Validate(ctx context.Context, fields []Field, form url.Values, ref ReferenceChecker) (Record, error) {
	get := func(name string) string {
		return strings.TrimSpace(form.Get(name))
	}

	// обязательность
	for _, f := range fields {
		if f.Required && get(f.Name) == "" {
			return nil, &ValidationError{
				Kind:    MissingField,
				Field:   f.Name,
				Message: fmt.Sprintf("Поле «%s» обязательно для заполнения.", f.Name),
			}
		}
	}

	// длина текстовых полей (в рунах — в формах кириллица)
	for _, f := range fields {
		if f.Kind != Text || f.MaxLen == 0 {
			continue
		}
		if v := get(f.Name); v != "" && len([]rune(v)) > f.MaxLen {
			return nil, &ValidationError{
				Kind:    FieldTooLong,
				Field:   f.Name,
				Message: fmt.Sprintf("%s — слишком длинное значение (максимум %d).", f.Label, f.MaxLen),
			}
		}
	}

	rec := Record{}
	for _, f := range fields {
		if f.Kind == Text {
			if v := get(f.Name); v != "" {
				rec[f.Column] = v
			} else {
				rec[f.Column] = nil
			}
		}
	}

	// разбор чисел
	for _, f := range fields {
		v := get(f.Name)
		switch f.Kind {
		case Decimal:
			if v == "" {
				rec[f.Column] = nil
				continue
			}
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, &ValidationError{
					Kind:    InvalidNumber,
					Field:   f.Name,
					Message: fmt.Sprintf("Некорректное значение «%s».", f.Name),
				}
			}
			rec[f.Column] = d
		case Int:
			if v == "" {
				rec[f.Column] = nil
				continue
			}
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, &ValidationError{
					Kind:    InvalidNumber,
					Field:   f.Name,
					Message: fmt.Sprintf("Поле «%s» должно быть целым числом.", f.Name),
				}
			}
			rec[f.Column] = n
		}
	}

	// неотрицательность
	for _, f := range fields {
		switch f.Kind {
		case Decimal:
			if d, ok := rec[f.Column].(decimal.Decimal); ok && d.IsNegative() {
				return nil, &ValidationError{
					Kind:    NegativeValue,
					Field:   f.Name,
					Message: fmt.Sprintf("%s не может быть отрицательным.", f.Label),
				}
			}
		case Int:
			if n, ok := rec[f.Column].(int64); ok && n < 0 {
				return nil, &ValidationError{
					Kind:    NegativeValue,
					Field:   f.Name,
					Message: fmt.Sprintf("%s не может быть отрицательным.", f.Label),
				}
			}
		}
	}

	// ссылка на смету
	for _, f := range fields {
		if f.Kind != Reference {
			continue
		}
		id, err := strconv.ParseInt(get(f.Name), 10, 64)
		if err != nil {
			return nil, &ValidationError{
				Kind:    InvalidReference,
				Field:   f.Name,
				Message: "Estimate ID должен быть целым числом.",
			}
		}
		if id <= 0 {
			return nil, &ValidationError{
				Kind:    InvalidReference,
				Field:   f.Name,
				Message: "Estimate ID должен быть положительным.",
			}
		}
		exists, err := ref.EstimateExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &ValidationError{
				Kind:    InvalidReference,
				Field:   f.Name,
				Message: fmt.Sprintf("Сметы с ID=%d не существует.", id),
			}
		}
		rec[f.Column] = id
	}

	return rec, nil
}
