package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError lists the fields that broke a product invariant.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(field, tag string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: fieldMessage(field, tag)}}
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, e := range fieldErrs {
		ve.Fields[e.Field()] = fieldMessage(e.Field(), e.Tag())
	}
	return ve
}

// varValidationError names the field a validate.Var failure belongs to.
func varValidationError(field string, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return newValidationError(field, fieldErrs[0].Tag())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func fieldMessage(field, tag string) string {
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, tag)
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
