package services

import (
	"errors"
	"strings"

	"piercing-service/internal/repository"
	"piercing-service/utils"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = repository.ErrNotFound
)

// ValidationErrors collects every field problem of a request so the caller
// can fix them all at once.
type ValidationErrors []utils.ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fieldErr := range v {
		parts = append(parts, fieldErr.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, utils.ValidationError{Field: field, Message: message})
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
