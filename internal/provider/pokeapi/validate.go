package pokeapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/albapepper/pokedex-data/internal/provider"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report upstream JSON names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload checks the required fields of a decoded upstream payload.
func validatePayload(resource string, payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s payload: %w", resource, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, formatFieldError(fe))
	}
	return &provider.InvalidPayloadError{Resource: resource, Fields: fields}
}

func formatFieldError(fe validator.FieldError) string {
	// Namespace is "<struct>.<path>"; drop the Go type name.
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
