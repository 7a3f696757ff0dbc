package schema

type ErrorKind int

const (
	MissingField ErrorKind = iota
	FieldTooLong
	InvalidNumber
	NegativeValue
	InvalidReference
)

// ValidationError — первая нарушенная проверка формы.
// Message показывается пользователю как есть (flash со статусом error).
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
