package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankValidator rejects strings made only of whitespace. `required` alone lets "   " through.
type NotBlankValidator struct{}

func NewNotBlankValidator() IValidator {
	return &NotBlankValidator{}
}

func (v *NotBlankValidator) Register() (validator.Func, string) {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		switch field.Kind() {
		case reflect.String:
			return strings.TrimSpace(field.String()) != ""
		default:
			return true
		}
	}, "notblank"
}
