// Package validator collects field-level validation failures into a map keyed
// by field name. Ad-hoc rules go through Check; tag-based rules on request
// structs go through Struct, which is backed by go-playground/validator.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	structValidator *playground.Validate
	structOnce      sync.Once
)

func structs() *playground.Validate {
	structOnce.Do(func() {
		structValidator = playground.New(playground.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})
	})
	return structValidator
}

// Validator holds a map of validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new Validator instance with an empty errors map.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the errors map doesn't contain any entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error message to the map, keeping the first message for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error message to the map only if a validation check is not 'ok'.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Struct validates the `validate` tags of s and records each failing field
// under its JSON name.
func (v *Validator) Struct(s any) {
	err := structs().Struct(s)
	if err == nil {
		return
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), message(fe))
	}
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s bytes long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not be more than %s bytes long", fe.Param())
		}
		return fmt.Sprintf("must not be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

// NotBlank reports whether value contains anything other than whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Between reports whether n lies within [min, max].
func Between[T int | int8 | int64](n, min, max T) bool {
	return n >= min && n <= max
}
