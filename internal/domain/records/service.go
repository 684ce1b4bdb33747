package records

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Service implementa el patrón read-modify-write sobre un tipo de registro:
// buscar por nombre, mutar, persistir y mantener el LastTouched del tipo.
type Service[T any] struct {
	model Model[T]
	store Store[T]
	last  *LastTouched[T]
	now   func() time.Time

	// mu serializa las escrituras del tipo (create, increment, update-last)
	// para que un read-modify-write no se intercale con otro.
	mu sync.Mutex
}

// NewService arma el servicio. Si last es nil se siembra con model.Default().
func NewService[T any](model Model[T], store Store[T], last *LastTouched[T]) *Service[T] {
	if last == nil {
		last = NewLastTouched(model.Default())
	}
	return &Service[T]{
		model: model,
		store: store,
		last:  last,
		now:   time.Now,
	}
}

func (s *Service[T]) Kind() Kind { return s.model.Kind() }

// Create valida, persiste y recién entonces reemplaza el LastTouched.
func (s *Service[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var zero T

	rec, err := s.model.Build(fields)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec = s.model.Stamp(rec, s.now())
	if err := s.save(ctx, rec); err != nil {
		return zero, err
	}

	s.last.Replace(rec)
	return rec, nil
}

// GetByName devuelve ErrNotFound si no hay coincidencias (no es una falla del store).
func (s *Service[T]) GetByName(ctx context.Context, name string) (T, error) {
	var zero T

	name = strings.TrimSpace(name)
	if name == "" {
		return zero, &ValidationError{Field: "name", Reason: "is required"}
	}

	rec, ok, err := s.store.FindOne(ctx, ByName(name))
	if err != nil {
		return zero, &StoreError{Op: "find", Kind: s.model.Kind(), Err: err}
	}
	if !ok {
		return zero, ErrNotFound
	}
	return rec, nil
}

// FindAll lista todos los registros del tipo en orden de inserción.
func (s *Service[T]) FindAll(ctx context.Context) ([]T, error) {
	out, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return nil, &StoreError{Op: "find", Kind: s.model.Kind(), Err: err}
	}
	return out, nil
}

// Last devuelve el último registro creado/actualizado (o la semilla).
func (s *Service[T]) Last() T {
	return s.last.Get()
}

// IncrementAndSave busca por nombre, incrementa `field`, persiste y devuelve el
// valor post-incremento una vez que el save terminó. Si el nombre no existe
// devuelve ErrNotFound sin escribir nada.
func (s *Service[T]) IncrementAndSave(ctx context.Context, name, field string) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.GetByName(ctx, name)
	if err != nil {
		return zero, err
	}

	next, err := s.model.Increment(rec, field)
	if err != nil {
		return zero, err
	}
	next = s.model.Stamp(next, s.now())

	if err := s.save(ctx, next); err != nil {
		return zero, err
	}

	// Si era el mismo registro que el LastTouched, lo refrescamos para que un
	// update-last posterior no pise este incremento.
	id := s.model.Identity(next)
	s.last.ReplaceIf(func(cur T) bool { return s.model.Identity(cur) == id }, next)

	return next, nil
}

// UpdateLast incrementa `field` del LastTouched en memoria y lo persiste.
// No vuelve a leer del store antes de mutar.
func (s *Service[T]) UpdateLast(ctx context.Context, field string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last.Update(func(cur T) (T, error) {
		next, err := s.model.Increment(cur, field)
		if err != nil {
			return cur, err
		}
		next = s.model.Stamp(next, s.now())

		if err := s.save(ctx, next); err != nil {
			return cur, err
		}
		return next, nil
	})
}

func (s *Service[T]) save(ctx context.Context, rec T) error {
	if err := s.store.Save(ctx, s.model.Identity(rec), rec); err != nil {
		return &StoreError{Op: "save", Kind: s.model.Kind(), Err: err}
	}
	return nil
}
