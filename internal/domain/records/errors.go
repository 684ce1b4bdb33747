package records

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: la query funcionó pero no hubo coincidencias. No es una falla del store.
	ErrNotFound = errors.New("record not found")
)

// ValidationError: campo requerido ausente o con tipo/rango inválido.
// Se devuelve antes de cualquier llamada al store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StoreError envuelve fallas de conectividad o de query reportadas por el store.
type StoreError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation / IsStore son atajos para el mapeo a status codes en handlers.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStore(err error) bool {
	var s *StoreError
	return errors.As(err, &s)
}
