// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"ludoteca/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request structs.
type RequestValidator struct {
	validate *playground.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors turns a validation failure into a map of field path to failed rule.
// It returns nil when err does not come from the validator.
func FieldErrors(err error) map[string]string {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		// Namespace starts with the struct name, which callers never see.
		_, path, found := strings.Cut(fieldErr.Namespace(), ".")
		if !found {
			path = fieldErr.Field()
		}

		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[path] = rule
	}

	return fields
}
