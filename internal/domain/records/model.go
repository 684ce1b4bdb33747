package records

import (
	"context"
	"time"
)

// Kind identifica el tipo de registro (cat, dog).
type Kind string

// Fields es la entrada cruda de un registro: nombre de campo -> valor.
// Los valores pueden venir como string (form HTML) o como número (JSON / YAML).
type Fields map[string]any

// Model describe un tipo de registro: construcción validada, identidad y
// mutación de contadores. Cada tipo (cats, dogs) implementa su propio Model.
type Model[T any] interface {
	Kind() Kind

	// Build construye un registro nuevo (con ID asignado) o devuelve *ValidationError.
	Build(fields Fields) (T, error)
	// Default es la instancia semilla del LastTouched.
	Default() T

	Identity(rec T) string

	// Stamp actualiza updatedAt (y createdAt si está vacío).
	Stamp(rec T, at time.Time) T
	// Increment devuelve una copia con el contador `field` incrementado en 1.
	Increment(rec T, field string) (T, error)
}

// Store es el límite con la base documental: una colección por tipo.
type Store[T any] interface {
	Find(ctx context.Context, filter Filter) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (T, bool, error)
	// Save inserta o actualiza por identidad.
	Save(ctx context.Context, id string, rec T) error
}
