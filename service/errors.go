package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation   = errors.New("failed validation")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateReview    = errors.New("duplicate review")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFailedChallenge    = errors.New("failed challenge")
	ErrUsernameTaken      = errors.New("username taken")
)

// ValidationError carries the field messages of a failed validation. It
// matches ErrFailedValidation under errors.Is.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q %s", k, e.Errors[k]))
	}
	return ErrFailedValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrFailedValidation
}

// failedValidation wraps a validation error map in a ValidationError.
func failedValidation(errorMap map[string]string) error {
	return &ValidationError{Errors: errorMap}
}
