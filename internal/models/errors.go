package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrArticleNotFound = errors.New("article not found")
	ErrEmptyExport     = errors.New("no articles to export")
)

// ValidationError reports a form field that is missing or does not parse.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
