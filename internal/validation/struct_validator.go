package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// Custom tags
const (
	TagNotBlank = "notblank"
)

var (
	structValidator *validator.Validate
	initOnce        sync.Once
)

// get returns the shared validator, registering custom tags on first use
func get() *validator.Validate {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so messages match the payload.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation(TagNotBlank, validateNotBlank)
		structValidator = v
	})
	return structValidator
}

// InvalidError reports the fields of a struct that failed validation.
// It matches domain.ErrInvalidInput with errors.Is.
type InvalidError struct {
	Fields map[string]string
}

func (e *InvalidError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return domain.ErrMsgInvalidInput + ": " + strings.Join(parts, "; ")
}

func (e *InvalidError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Struct validates s by its `validate` tags. Failures are *InvalidError.
func Struct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &InvalidError{Fields: fields}
}

// FieldErrors maps each failing field (by namespace) to a user-facing message.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[fieldPath(e)] = message(e)
	}
	return errs
}

// fieldPath drops the root struct name: "Recipe.costs[0].amount" -> "costs[0].amount"
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", TagNotBlank:
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	default:
		return "Invalid value"
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
