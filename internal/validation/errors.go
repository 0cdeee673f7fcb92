package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField возвращается при валидации неизвестного поля
var ErrUnknownField = errors.New("validation: unknown field")

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// Errors ошибки валидации формы: поле -> сообщение
type Errors map[Field]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.sortedFields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation: " + strings.Join(parts, "; ")
}

// ToMap конвертирует ошибки в map со строковыми ключами (для JSON)
func (e Errors) ToMap() map[string]string {
	out := make(map[string]string, len(e))
	for field, msg := range e {
		out[string(field)] = msg
	}
	return out
}
