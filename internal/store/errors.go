package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced challenge does not exist.
var ErrNotFound = errors.New("challenge not found")

// ValidationError signale un champ requis manquant ou invalide.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
