// Package validate owns the shared go-playground validator and converts its
// failures into typed validation errors.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == strings.TrimSpace(value)
		})

		validateInst = v
	})

	return validateInst
}

// Instance returns the shared validator.
func Instance() *validator.Validate {
	return validatorInstance()
}

// Struct validates s and reports the first failure as a *errors.ValidationError
// whose Field is the lower-cased path below the top-level type, e.g.
// "accent" or "accent.r".
func Struct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		return themeerrors.NewValidationError(field, message(ve), err)
	}

	return themeerrors.NewValidationError("", err.Error(), err)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "lte", "min", "max":
		return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
