package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Field поле формы клиента
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
	FieldNotes Field = "notes"
)

// Fields все поля формы в порядке отображения
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldNotes}

// Сообщения об ошибках, показываются рядом с полем
const (
	MsgNameRequired  = "Name is required"
	MsgNameTooShort  = "Name must be at least 2 characters"
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgPhoneRequired = "Phone number is required"
	MsgPhoneInvalid  = "Please enter a valid phone number"
)

const (
	tagEmail = "booking_email"
	tagPhone = "booking_phone"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// \s в Go - только ASCII пробелы, неразрывный пробел (U+00A0) не допускается
	phonePattern = regexp.MustCompile(fmt.Sprintf(`^[\d\s()+-]{%d,%d}$`, domain.MinPhoneLength, domain.MaxPhoneLength))

	nameMinTag = fmt.Sprintf("min=%d", domain.MinNameLength)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := registerCustomValidations(validate); err != nil {
		panic(fmt.Sprintf("validation: failed to register custom validations: %v", err))
	}
}

func registerCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("%s: %w", tagEmail, err)
	}

	if err := v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("%s: %w", tagPhone, err)
	}

	return nil
}

// ParseField парсит имя поля формы
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Validate проверяет одно значение поля
// Возвращает *FieldError или nil; для неизвестного поля - ErrUnknownField
func Validate(field Field, value string) error {
	switch field {
	case FieldName:
		trimmed := strings.TrimSpace(value)
		if validate.Var(trimmed, "required") != nil {
			return &FieldError{Field: field, Message: MsgNameRequired}
		}
		if validate.Var(trimmed, nameMinTag) != nil {
			return &FieldError{Field: field, Message: MsgNameTooShort}
		}
	case FieldEmail:
		if validate.Var(strings.TrimSpace(value), "required") != nil {
			return &FieldError{Field: field, Message: MsgEmailRequired}
		}
		if validate.Var(value, tagEmail) != nil {
			return &FieldError{Field: field, Message: MsgEmailInvalid}
		}
	case FieldPhone:
		if validate.Var(strings.TrimSpace(value), "required") != nil {
			return &FieldError{Field: field, Message: MsgPhoneRequired}
		}
		if validate.Var(value, tagPhone) != nil {
			return &FieldError{Field: field, Message: MsgPhoneInvalid}
		}
	case FieldNotes:
		// пожелания не валидируются
	default:
		return ErrUnknownField
	}
	return nil
}

// CustomerInput данные формы клиента в том виде, как их ввёл пользователь
type CustomerInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// ValidateCustomer прогоняет все правила и собирает ошибки по полям
// Возвращает nil, если форма валидна
func ValidateCustomer(input CustomerInput) Errors {
	values := map[Field]string{
		FieldName:  input.Name,
		FieldEmail: input.Email,
		FieldPhone: input.Phone,
		FieldNotes: input.Notes,
	}

	var errs Errors
	for _, field := range Fields {
		err := Validate(field, values[field])
		if err == nil {
			continue
		}
		if errs == nil {
			errs = make(Errors)
		}
		errs[field] = messageOf(err)
	}

	return errs
}

func messageOf(err error) string {
	if fe, ok := err.(*FieldError); ok {
		return fe.Message
	}
	return err.Error()
}

// sortedFields возвращает поля с ошибками в стабильном порядке
func (e Errors) sortedFields() []Field {
	fields := make([]Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}
