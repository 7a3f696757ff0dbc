package schema

type Kind int

const (
	// Текстовое поле с ограничением длины (MaxLen, 0 — без ограничения).
	Text Kind = iota
	// Денежная сумма или количество: произвольная точность (NUMERIC).
	Decimal
	// Целое: опыт, количество штук и т.п.
	Int
	// Ссылка на смету (estimate_id): целое, положительное, смета должна существовать.
	Reference
)

// Field описывает одно поле формы и колонку, в которую оно пишется.
// Валидация девяти разделов отличается только этими данными,
// сам алгоритм проверки один (см. Validate).
type Field struct {
	Name     string // имя поля формы
	Column   string // колонка таблицы
	Label    string // подпись для сообщений и выгрузок
	Kind     Kind
	Required bool
	MaxLen   int
}
