package dogs

import (
	"time"

	"pet-records/internal/domain/records"

	"github.com/google/uuid"
)

const (
	Kind       records.Kind = "dog"
	Collection              = "dogs"

	FieldAge = "age"
)

// Dog es el documento persistido en la colección "dogs".
type Dog struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Breed     string    `json:"breed" yaml:"breed"`
	Age       int       `json:"age" yaml:"age"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type Model struct{}

var _ records.Model[Dog] = Model{}

func (Model) Kind() records.Kind { return Kind }

// Build: name, breed y age son requeridos; age entero >= 0.
func (Model) Build(f records.Fields) (Dog, error) {
	name, err := f.RequiredString("name")
	if err != nil {
		return Dog{}, err
	}
	breed, err := f.RequiredString("breed")
	if err != nil {
		return Dog{}, err
	}
	age, err := f.NonNegativeInt(FieldAge, true, 0)
	if err != nil {
		return Dog{}, err
	}
	return Dog{
		ID:    uuid.NewString(),
		Name:  name,
		Breed: breed,
		Age:   age,
	}, nil
}

func (Model) Default() Dog {
	return Dog{
		ID:    uuid.NewString(),
		Name:  "Spot",
		Breed: "Unknown",
		Age:   90,
	}
}

func (Model) Identity(d Dog) string { return d.ID }

func (Model) Stamp(d Dog, at time.Time) Dog {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = at
	}
	d.UpdatedAt = at
	return d
}

func (Model) Increment(d Dog, field string) (Dog, error) {
	if field != FieldAge {
		return d, &records.ValidationError{Field: field, Reason: "is not a counter field"}
	}
	n, err := records.NextCount(field, d.Age)
	if err != nil {
		return d, err
	}
	d.Age = n
	return d, nil
}

type Service = records.Service[Dog]

func NewService(store records.Store[Dog]) *Service {
	return records.NewService[Dog](Model{}, store, nil)
}
