package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"lms-hub/internal/domain"
)

// Validator wraps the go-playground validator with the LMS rules.
type Validator struct {
	validator *validator.Validate
}

// New creates a validator with custom rules and JSON field names.
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: validate}
}

// Validate validates a struct and returns a *ValidationError on failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationError(verrs)
	}
	return fmt.Errorf("validate: %w", err)
}

// ValidateVar validates a single variable against tag.
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError maps JSON field names to user-facing messages.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface. Fields are sorted for stable output.
func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors.
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	out := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", field)
		case "email":
			out[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s", field, err.Param())
		case "lms_role":
			out[field] = fmt.Sprintf("%s must be one of employee, hr, admin", field)
		case "view_key":
			out[field] = fmt.Sprintf("%s must be a lowercase view key", field)
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: out}
}

func registerCustomValidators(validate *validator.Validate) {
	// lms_role: one of the dashboard roles
	_ = validate.RegisterValidation("lms_role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})

	// view_key: lowercase letters and hyphens; unknown keys are still routed
	_ = validate.RegisterValidation("view_key", func(fl validator.FieldLevel) bool {
		key := fl.Field().String()
		if key == "" || len(key) > 64 {
			return false
		}
		for _, r := range key {
			if (r < 'a' || r > 'z') && r != '-' {
				return false
			}
		}
		return true
	})
}
