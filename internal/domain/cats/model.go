package cats

import (
	"time"

	"pet-records/internal/domain/records"

	"github.com/google/uuid"
)

const (
	Kind       records.Kind = "cat"
	Collection              = "cats"

	// FieldBedsOwned es el contador que incrementa updateLast.
	FieldBedsOwned = "bedsOwned"
)

// Cat es el documento persistido en la colección "cats".
type Cat struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	BedsOwned int       `json:"bedsOwned" yaml:"bedsOwned"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Model implementa records.Model[Cat].
type Model struct{}

var _ records.Model[Cat] = Model{}

func (Model) Kind() records.Kind { return Kind }

// Build: name requerido, bedsOwned entero >= 0 (default 0).
func (Model) Build(f records.Fields) (Cat, error) {
	name, err := f.RequiredString("name")
	if err != nil {
		return Cat{}, err
	}
	beds, err := f.NonNegativeInt(FieldBedsOwned, false, 0)
	if err != nil {
		return Cat{}, err
	}
	return Cat{
		ID:        uuid.NewString(),
		Name:      name,
		BedsOwned: beds,
	}, nil
}

// Default es el gato "unknown" con el que arranca el proceso (no persistido).
func (Model) Default() Cat {
	return Cat{
		ID:        uuid.NewString(),
		Name:      "unknown",
		BedsOwned: 0,
	}
}

func (Model) Identity(c Cat) string { return c.ID }

func (Model) Stamp(c Cat, at time.Time) Cat {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = at
	}
	c.UpdatedAt = at
	return c
}

func (Model) Increment(c Cat, field string) (Cat, error) {
	switch field {
	case FieldBedsOwned:
		n, err := records.NextCount(field, c.BedsOwned)
		if err != nil {
			return c, err
		}
		c.BedsOwned = n
		return c, nil
	default:
		return c, &records.ValidationError{Field: field, Reason: "is not a counter field"}
	}
}

// Service es el servicio de registros para gatos.
type Service = records.Service[Cat]

func NewService(store records.Store[Cat]) *Service {
	return records.NewService[Cat](Model{}, store, nil)
}
